// Package main provides the entry point for the skill gap analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_agent",
	Short: "Resume vs. job description skill gap analyzer",
	Long:  "Gap Agent extracts skills from a resume and a job description, scores the overlap, and builds a phased learning roadmap for the missing skills. Available as a one-shot CLI and as a REST API server.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
