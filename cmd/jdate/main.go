package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-jdate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "jdate: %v\n", err)
	os.Exit(1)
}
