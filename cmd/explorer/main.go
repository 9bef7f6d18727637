package main

import (
	"os"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
