package main

import "github.com/redstringoffate/synastry-aspect-mapper/internal/cli"

func main() {
	cli.Execute()
}
