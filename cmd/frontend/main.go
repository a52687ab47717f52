// Package main is the entry point for the apartment rental front-end service.
package main

import (
	"fmt"
	"os"

	"github.com/asghar-0017/aparntment-frontend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
