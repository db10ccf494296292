package main

import (
	"github.com/Giorgos-Arg/dna-pattern-matching/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
