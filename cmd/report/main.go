package main

import (
	"os"

	"deliveryquery/cmd/report/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
