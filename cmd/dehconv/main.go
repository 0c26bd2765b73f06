// Package main is the entry point for the dehconv converter
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	outputDir  string
	redisAddr  string
)

var rootCmd = &cobra.Command{
	Use:   "dehconv",
	Short: "DeHackEd to DDF converter",
	Long: `dehconv applies DeHackEd patch edits over the Doom baseline tables and
writes EDGE DDF lumps (things, attacks, weapons, sounds, language, rscript)
for every modified entity.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "Directory runs are written to")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Store runs in Redis at this address")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showThingCmd)
	rootCmd.AddCommand(showRunCmd)
	rootCmd.AddCommand(fieldsCmd)
}
