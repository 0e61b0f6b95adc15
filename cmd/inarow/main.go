package main

import "github.com/mcoot/inarow/internal/cli"

func main() {
	cli.Execute()
}
