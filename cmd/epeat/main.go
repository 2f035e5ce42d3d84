package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/epeat/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Built-in catalogs; --config or EPEAT_* variables can replace them.
	app := cli.NewApp()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
