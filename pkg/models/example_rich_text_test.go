package models

import "fmt"

func ExampleMultipleToString() {
	spans := []RichText{
		NewTextRichText("Notion quotes "),
		NewTextRichText("rock!").Bold().WithColor(ColorRed),
	}

	fmt.Println(MultipleToString(spans...))

	// Output:
	// Notion quotes rock!
}
