package change_test

import (
	"errors"
	"fmt"

	"coin-change/change"
)

func Example() {
	res, err := change.Solve(239, []int{1, 5, 10, 25})
	if err != nil {
		panic(err)
	}

	fmt.Println(res)

	res, _ = change.Solve(3, []int{2, 5})
	fmt.Println(res)

	_, err = change.Solve(5, []int{2, 0})
	fmt.Println(errors.Is(err, change.ErrNonPositiveDenomination))
	// Output:
	// 14
	// unreachable
	// true
}

func ExampleResult_Count() {
	for _, target := range []int{3, 4} {
		if n, ok := change.MustSolve(target, []int{2, 5}).Count(); ok {
			fmt.Printf("%d: %d coins\n", target, n)
		} else {
			fmt.Printf("%d: no combination\n", target)
		}
	}
	// Output:
	// 3: no combination
	// 4: 2 coins
}

func ExampleSolver() {
	s, err := change.NewSolver([]uint32{25, 10, 5, 1, 25})
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Denominations())

	for _, target := range []uint32{0, 30, 99} {
		res, _ := s.Solve(target)
		fmt.Println(target, res)
	}
	// Output:
	// [1 5 10 25]
	// 0 0
	// 30 2
	// 99 9
}
