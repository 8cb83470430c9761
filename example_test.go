package automata_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/schema"
)

func ExampleWorkbench() {
	ctx := context.Background()
	wb := automata.New()

	err := wb.Put(ctx, &schema.Definition{
		Name:     "even-a",
		Alphabet: []string{"a", "b"},
		States:   []string{"even", "odd"},
		Initial:  []string{"even"},
		Final:    []string{"even"},
		Transitions: []schema.Transition{
			{From: "even", Label: "a", To: "odd"},
			{From: "even", Label: "b", To: "even"},
			{From: "odd", Label: "a", To: "even"},
			{From: "odd", Label: "b", To: "odd"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	got, err := wb.Accepts(ctx, "even-a", schema.SplitWord("abab", ""), schema.SplitWord("ab", ""))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(got)

	if _, err := wb.Complement(ctx, "even-a", automata.SaveAs("odd-a")); err != nil {
		log.Fatal(err)
	}
	same, err := wb.Equivalent(ctx, "even-a", "odd-a")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(same)
	// Output:
	// [true false]
	// false
}
