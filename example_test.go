package weft_test

import (
	"fmt"

	"github.com/weftio/weft"
	"github.com/weftio/weft/eval"
	"github.com/weftio/weft/transform"
)

func ExampleRender() {
	rows, _ := weft.Render(
		[]string{"My name is {name}."},
		eval.NewContext(map[string]any{"name": "Fred"}),
	)

	fmt.Println(rows[0])
	// Output: My name is Fred.
}

func ExampleRender_vectorized() {
	rows, _ := weft.Render(
		[]string{"{fruit}: {n}"},
		eval.NewContext(map[string]any{
			"fruit": []string{"apple", "pear"},
			"n":     []int{3, 7},
		}),
	)

	for _, row := range rows {
		fmt.Println(row)
	}
	// Output:
	// apple: 3
	// pear: 7
}

func ExampleRender_collapse() {
	rows, _ := weft.Render(
		[]string{"counting {1..5*}"},
		nil,
		weft.WithTransformer(transform.Collapse(", ", " and ")),
	)

	fmt.Println(rows[0])
	// Output: counting 1, 2, 3, 4 and 5
}

func ExampleRenderString() {
	out, _ := weft.RenderString(
		[]string{`
			Dear {name},

			Your balance is {balance}.
		`},
		eval.NewContext(map[string]any{"name": "Ada", "balance": 100}),
	)

	fmt.Println(out)
	// Output:
	// Dear Ada,
	//
	// Your balance is 100.
}
