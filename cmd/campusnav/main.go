// Package main is the entry point for the campusnav terminal editor.
//
// Usage:
//
//	campusnav [flags]
//
// Flags:
//
//	--config     path to a YAML config file
//	--speed      animation step interval in milliseconds
//	--seed       seed for weight randomization
//	--log-file   append structured logs to a file
//	--empty      start with an empty map instead of the demo campus
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
