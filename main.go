// Package main is the entry point for the cutiepawspedia directory
// service.
package main

import (
	"os"

	"github.com/MarvinNL046/cutiepawspedia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
