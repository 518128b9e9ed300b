package vec_test

import (
	"fmt"

	"github.com/pavanmanishd/vec"
)

// Example demonstrates basic vector usage.
func Example() {
	v := vec.New[int]()

	for i := 0; i < 3; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	fmt.Println("len:", v.Len(), "cap:", v.Cap())

	// insert at the front, then erase the middle
	if _, err := v.Insert(0, 99); err != nil {
		panic(err)
	}
	if err := v.Erase(2); err != nil {
		panic(err)
	}

	for i, x := range v.All() {
		fmt.Printf("%d: %d\n", i, x)
	}

	// Output:
	// len: 3 cap: 4
	// 0: 99
	// 1: 0
	// 2: 2
}

// ExampleMove demonstrates O(1) ownership transfer.
func ExampleMove() {
	src := vec.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		if err := src.PushBack(s); err != nil {
			panic(err)
		}
	}

	dst := vec.Move(src)
	fmt.Println("dst len:", dst.Len())
	fmt.Println("src len:", src.Len())

	// Output:
	// dst len: 3
	// src len: 0
}

// ExampleVector_Reserve demonstrates preallocation avoiding regrowth.
func ExampleVector_Reserve() {
	v := vec.New[int]()
	if err := v.Reserve(100); err != nil {
		panic(err)
	}

	before := v.Cap()
	for i := 0; i < 100; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	fmt.Println("capacity unchanged:", v.Cap() == before)

	// Output:
	// capacity unchanged: true
}

// ExampleVector_Stats demonstrates the storage usage snapshot.
func ExampleVector_Stats() {
	v := vec.New[int64]()
	if err := v.Reserve(4); err != nil {
		panic(err)
	}
	for i := int64(0); i < 3; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}

	fmt.Println(v.Stats())

	// Output:
	// len 3/4 (75.0%), 24 B of 32 B
}
