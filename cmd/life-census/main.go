package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"life-editor/pkg/life"
)

func main() {
	size, gens, mono := 80, 1000, false

	p := flaggy.NewParser("life-census")
	p.Description = "Runs every catalog pattern on an empty board and reports how it settles"
	p.Int(&size, "n", "size", "grid cells per side")
	p.Int(&gens, "g", "gens", "generation limit per pattern")
	p.Bool(&mono, "m", "mono", "disable colour output")
	if err := p.ParseArgs(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	results, err := life.CensusCatalog(size, gens)
	if err != nil {
		log.Fatal(err)
	}
	au := aurora.NewAurora(!mono)
	for _, r := range results {
		id := au.Cyan(fmt.Sprintf("%d", r.Pattern.ID))
		if r.Fate == life.FateUnsettled {
			fmt.Printf("%s %s\n", id, au.Yellow(r))
			continue
		}
		fmt.Printf("%s %s\n", id, r)
	}
}
