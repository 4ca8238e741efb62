package main

import "github.com/pfrederiksen/eventbook/internal/cli"

func main() {
	cli.Execute()
}
