package main

import "nsxfint/internal/cli"

func main() {
	cli.Execute()
}
