package setops_test

import (
	"fmt"

	"github.com/katalvlaran/tidytab/setops"
	"github.com/katalvlaran/tidytab/table"
)

// ExampleIntersect demonstrates that only full-row matches survive and
// the result follows the first table's order.
func ExampleIntersect() {
	a, _ := table.New(
		table.Strings("state", "Alabama", "Alaska", "Arizona"),
		table.Ints("electoral_votes", 9, 3, 11),
	)
	b, _ := table.New(
		table.Strings("state", "Arizona", "Alabama"),
		table.Ints("electoral_votes", 11, 10), // Alabama's votes differ
	)

	out, err := setops.Intersect(a, b)
	if err != nil {
		fmt.Println("intersect failed:", err)
		return
	}

	for r := 0; r < out.Len(); r++ {
		row, _ := out.Row(r)
		fmt.Println(row[0], row[1])
	}
	// Output:
	// Arizona 11
}

// ExampleEqual demonstrates set equality across row order and duplicates.
func ExampleEqual() {
	a, _ := table.New(table.Strings("state", "Alabama", "Alaska"))
	b, _ := table.New(table.Strings("state", "Alaska", "Alabama", "Alaska"))

	eq, err := setops.Equal(a, b)
	if err != nil {
		fmt.Println("equal failed:", err)
		return
	}

	fmt.Println(eq)
	// Output:
	// true
}
