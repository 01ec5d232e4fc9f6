package main

import "chebi-leaves/internal/cli"

func main() {
	cli.Execute()
}
