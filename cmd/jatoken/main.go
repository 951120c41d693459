// Package main provides the jatoken command, a Japanese tokenizer filter that
// prints one surface form per line.
package main

import (
	"os"

	"github.com/leapstack-labs/jatoken/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
