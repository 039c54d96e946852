package main

import "github.com/akhenakh/jyotish/internal/cli"

func main() {
	cli.Execute()
}
