package main

import (
	"os"

	"github.com/radixlang/radix/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
