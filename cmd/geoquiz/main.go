package main

import "github.com/mcoot/geoquiz/internal/cli"

func main() {
	cli.Execute()
}
