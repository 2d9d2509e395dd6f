package main

import "github.com/aussiebroadwan/mgu/internal/cli"

func main() {
	cli.Execute()
}
