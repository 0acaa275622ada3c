// Package main provides the descent CLI, which runs gradient descent on a
// catalogue of test problems and reports the results.
package main

import (
	"os"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
