package xlref_test

import (
	"fmt"

	"github.com/javajack/xlref"
)

func ExampleNavigator_Navigate() {
	navigator := xlref.NewNavigator(xlref.Grid{
		ColumnHidden: xlref.HiddenColumns("C"),
	})

	start := xlref.Select(xlref.MustParseCell("B2"))
	result := navigator.Navigate(start,
		xlref.RightColumn(),
		xlref.ExtendDownRow(),
		xlref.ExtendDownRow(),
	)
	fmt.Println(result)
	// Output: D2:D4 top-left
}

func ExampleViewportNavigations_Compact() {
	navigations, err := xlref.ParseViewportNavigations(
		"extend-left column,up row,extend-right column,down row,right column,extend-left column")
	if err != nil {
		panic(err)
	}
	fmt.Println(navigations.Compact())
	// Output: right column,extend-left column
}

func ExampleCellRangePath_Cells() {
	for cell := range xlref.TDRL.Cells(xlref.MustParseCellRange("A1:B2")) {
		fmt.Println(cell)
	}
	// Output:
	// B1
	// B2
	// A1
	// A2
}

func ExampleParseSelection() {
	for _, text := range []string{"B2", "C", "7", "B2:D4", "B:D", "Totals"} {
		s, err := xlref.ParseSelection(text)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s %s\n", s, xlref.DefaultAnchor(s))
	}
	// Output:
	// B2 none
	// C none
	// 7 none
	// B2:D4 bottom-right
	// B:D right
	// Totals none
}
