package main

import (
	"fmt"
	"os"

	_ "time/tzdata" // zone lookups must work without a host zoneinfo directory

	"github.com/ngrash/go-datemath/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datecalc:", err)
		os.Exit(1)
	}
}
