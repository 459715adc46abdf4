package cmd

import "github.com/fatih/color"

var (
	cHeader = color.New(color.FgCyan, color.Bold)
	cMuted  = color.New(color.Faint)
)
