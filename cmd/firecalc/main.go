package main

import "github.com/firecalc/compound-calculator/internal/cli"

func main() {
	cli.Execute()
}
