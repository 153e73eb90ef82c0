// Package main provides the entry point for the CoverCraft cover letter
// generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "covercraft",
	Short: "AI cover letter generator",
	Long:  "CoverCraft generates personalized cover letters from a resume PDF and a job description, with placeholder-based personalization and CSV/document export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
