/*
Package dsl provides a fluent builder for finite-state automata.

It is a thin layer over the fsa mutators: declarations are recorded first and
replayed in order by Build, so errors (unknown targets, symbols outside the
alphabet) are reported together instead of one call at a time.

Example usage:

	b := dsl.New[string]("a", "b")

	b.State("even").Initial().Final().
		On("a", "odd").
		Loop("b")

	b.State("odd").
		On("a", "even").
		Loop("b")

	even, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(even.Accepts([]string{"a", "a"})) // true
*/
package dsl
