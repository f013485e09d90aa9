package ptrie

import "fmt"

func ExampleTrie() {
	v1 := Put(New(), "cat", 1)
	v2 := Put(v1, "car", 2)
	v3 := v2.Remove("cat")
	for i, t := range []Trie{v1, v2, v3} {
		cat, ok := Get[int](t, "cat")
		if ok {
			fmt.Printf("v%d cat=%d\n", i+1, *cat)
		} else {
			fmt.Printf("v%d cat absent\n", i+1)
		}
	}
	// Output:
	// v1 cat=1
	// v2 cat=1
	// v3 cat absent
}

func ExampleStore() {
	s := NewStore()
	fmt.Println(StorePut(s, "cat", 1))
	fmt.Println(StorePut(s, "car", 2))
	fmt.Println(s.Remove("cat"))
	fmt.Println(s.Remove("cat")) // absent: version unchanged

	if g, ok := StoreGetAt[int](s, "cat", 1); ok {
		fmt.Println("cat at version 1:", *g.Value())
	}
	if _, ok := StoreGet[int](s, "cat"); !ok {
		fmt.Println("cat absent at latest")
	}
	// Output:
	// 1
	// 2
	// 3
	// 3
	// cat at version 1: 1
	// cat absent at latest
}

func ExampleTrie_Walk() {
	t := Put(New(), "b", 2)
	t = Put(t, "a", 1)
	t = Put(t, "ab", 12)
	t.Walk(func(key string, value interface{}) {
		fmt.Printf("%s=%v\n", key, value)
	})
	// Output:
	// a=1
	// ab=12
	// b=2
}
