package fill_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/initwith/fill"
)

// ExampleSlice builds three growing snapshots of a seed slice — the
// classic stateful producer whose per-call mutation makes strict call
// order observable.
func ExampleSlice() {
	var seed []int
	next := 0

	snapshots, err := fill.Slice(3, func() ([]int, error) {
		seed = append(seed, next)
		next++
		return slices.Clone(seed), nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(snapshots)
	// Output:
	// [[0] [0 1] [0 1 2]]
}

// ExampleSliceIndexed derives every element purely from its position.
func ExampleSliceIndexed() {
	squares, err := fill.SliceIndexed(5, func(i int) (int, error) {
		return i * i, nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(squares)
	// Output:
	// [0 1 4 9 16]
}

// ExampleWithRelease shows the unwinding contract: when the fourth
// "dial" fails, the three handles already opened are closed — in reverse
// order — before the error reaches the caller.
func ExampleWithRelease() {
	type handle struct{ id int }

	dials := 0
	_, err := fill.Slice(6,
		func() (*handle, error) {
			dials++
			if dials == 4 {
				return nil, errors.New("dial 4: connection refused")
			}
			return &handle{id: dials}, nil
		},
		fill.WithRelease(func(h *handle) {
			fmt.Println("closed handle", h.id)
		}),
	)

	fmt.Println("error:", err)
	// Output:
	// closed handle 3
	// closed handle 2
	// closed handle 1
	// error: dial 4: connection refused
}

// ExampleBuilder drives the staging area by hand: commit element by
// element, then take ownership of the finished sequence.
func ExampleBuilder() {
	b, err := fill.NewBuilder[string](3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, word := range []string{"fee", "fi", "fo"} {
		if err = b.Append(word); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	words, err := b.Finish()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(words)
	// Output:
	// [fee fi fo]
}

// ExampleFromSeq takes exactly the first n values of an iterator and
// leaves the rest unpulled.
func ExampleFromSeq() {
	primes := []int{2, 3, 5, 7, 11, 13}

	firstFour, err := fill.FromSeq(4, slices.Values(primes))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(firstFour)
	// Output:
	// [2 3 5 7]
}
