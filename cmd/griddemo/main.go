// griddemo: Renders the same table with several border styles, spans
// and colors.
package main

import (
	"fmt"
	"log"
	"os"

	"grid"

	"github.com/muesli/termenv"
)

func main() {
	rec := grid.NewStringRecords([][]string{
		{"Portfolio", "", "", ""},
		{"Symbol", "Name", "Price", "Change"},
		{"AAPL", "Apple Inc", "178.92", "+2.34"},
		{"GOOGL", "Alphabet", "141.23", "-1.56"},
		{"MSFT", "Microsoft", "378.45", "+5.12"},
		{"TSLA", "Tesla", "248.67", "-8.90"},
	})

	g := grid.New(rec)
	cfg := g.Config()
	cfg.SetBorders(grid.BordersSingle)
	cfg.SetPadding(grid.Global(), grid.NewPadding(1, 1, 0, 0))

	// Title row spans the full width, centered.
	cfg.SetColumnSpan(grid.Pos(0, 0), 4)
	cfg.SetAlignmentHorizontal(grid.Cell(0, 0), grid.AlignCenter)

	// Numbers read better right-aligned.
	cfg.SetAlignmentHorizontal(grid.Column(2), grid.AlignRight)
	cfg.SetAlignmentHorizontal(grid.Column(3), grid.AlignRight)

	cfg.SetColor(grid.Cell(0, 0), grid.Fg(termenv.ANSIYellow))
	cfg.SetColor(grid.Row(1), grid.Fg(termenv.ANSICyan))
	for r := 2; r < rec.CountRows(); r++ {
		change := rec.Cell(grid.Pos(r, 3)).Text()
		if len(change) > 0 && change[0] == '-' {
			cfg.SetColor(grid.Cell(r, 3), grid.Fg(termenv.ANSIRed))
		} else {
			cfg.SetColor(grid.Cell(r, 3), grid.Fg(termenv.ANSIGreen))
		}
	}

	if err := g.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	for _, style := range []struct {
		name    string
		borders grid.Borders
	}{
		{"ascii", grid.BordersASCII},
		{"rounded", grid.BordersRounded},
		{"double", grid.BordersDouble},
	} {
		fmt.Printf("\n%s:\n", style.name)
		cfg.SetBorders(style.borders)
		if err := g.Render(os.Stdout); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}
