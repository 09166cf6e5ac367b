// Package main is the entry point for the lidnd server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lidnd",
	Short: "lidnd encounter tracker",
	Long:  `lidnd tracks tabletop combat encounters: creature libraries, initiative order, and chat mirroring.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
