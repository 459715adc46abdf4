// Package main is the entry point for the csimpact CLI tool, which ingests
// CS2 box-score and round telemetry and computes player/team impact ratings.
package main

import "github.com/lvgk/csimpact/cmd"

func main() {
	cmd.Execute()
}
