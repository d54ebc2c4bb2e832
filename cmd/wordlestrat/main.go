package main

import "github.com/mcoot/wordlestrat/internal/cli"

func main() {
	cli.Execute()
}
