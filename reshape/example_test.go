package reshape_test

import (
	"fmt"

	"github.com/katalvlaran/tidytab/reshape"
	"github.com/katalvlaran/tidytab/table"
)

// ExampleLonger pivots a wide fertility table into tidy form: one row per
// (country, year) observation, with the year keys converted to integers.
func ExampleLonger() {
	wide, _ := table.New(
		table.Strings("country", "Germany", "South Korea"),
		table.Numbers("1960", 2.41, 6.16),
		table.Numbers("1961", 2.44, 5.99),
	)

	long, err := reshape.Longer(wide, reshape.LongerOptions{
		IDColumns: []string{"country"},
		NamesTo:   "year",
		ValuesTo:  "fertility",
		Convert:   true,
	})
	if err != nil {
		fmt.Println("longer:", err)
		return
	}

	fmt.Println(long.Columns())
	for i := 0; i < long.Len(); i++ {
		row, _ := long.Row(i)
		fmt.Println(row[0], row[1], row[2])
	}
	// Output:
	// [country year fertility]
	// Germany 1960 2.41
	// Germany 1961 2.44
	// South Korea 1960 6.16
	// South Korea 1961 5.99
}

// ExampleSeparate breaks compound headers apart, rejoining the surplus
// pieces of "life_expectancy" under the mergeExtra policy.
func ExampleSeparate() {
	long, _ := table.New(
		table.Strings("key", "1960_fertility", "1960_life_expectancy"),
		table.Numbers("value", 6.16, 53.02),
	)

	tidy, err := reshape.Separate(long, reshape.SeparateOptions{
		Column:    "key",
		Into:      []string{"year", "variable"},
		Separator: "_",
		Policy:    reshape.SplitMergeExtra,
	})
	if err != nil {
		fmt.Println("separate:", err)
		return
	}

	for i := 0; i < tidy.Len(); i++ {
		row, _ := tidy.Row(i)
		fmt.Println(row[0], row[1], row[2])
	}
	// Output:
	// 1960 fertility 6.16
	// 1960 life_expectancy 53.02
}

// ExampleWider restores the wide layout and demonstrates the ambiguity
// guarantee on duplicated observations.
func ExampleWider() {
	long, _ := table.New(
		table.Strings("country", "Germany", "Germany"),
		table.Strings("year", "1960", "1961"),
		table.Numbers("fertility", 2.41, 2.44),
	)

	wide, err := reshape.Wider(long, reshape.WiderOptions{
		NamesFrom:  "year",
		ValuesFrom: "fertility",
	})
	if err != nil {
		fmt.Println("wider:", err)
		return
	}
	fmt.Println(wide.Columns(), wide.Len(), "row")
	// Output:
	// [country 1960 1961] 1 row
}
