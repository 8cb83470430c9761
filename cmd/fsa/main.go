// Command fsa builds, inspects and combines finite-state automata.
package main

func main() {
	Execute()
}
