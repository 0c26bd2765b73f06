package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion"
)

var scriptPath string

var showThingCmd = &cobra.Command{
	Use:   "show-thing [number]",
	Short: "Print the DDF of one thing",
	Long: `Print the DDF block of one thing, modified or not. Thing numbers are
1-based as in patches. Examples:

  dehconv show-thing 12
  dehconv show-thing 12 --script patch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShowThing,
}

var showRunCmd = &cobra.Command{
	Use:   "show-run [run-id]",
	Short: "Print a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowRun,
}

func init() {
	showThingCmd.Flags().StringVar(&scriptPath, "script", "", "Edit script applied first")
	showThingCmd.Flags().IntVar(&doomVersion, "doom-version", -1, "Patch format version, overrides the script")
}

func runShowThing(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		return fmt.Errorf("thing number must be a positive integer, got %q", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	script, err := a.loadScript(scriptPath, doomVersion)
	if err != nil {
		return err
	}

	out, err := a.service.ShowThing(context.Background(), &conversion.ShowThingInput{
		Version: script.Version,
		Edits:   script.Edits,
		ID:      number - 1,
	})
	if err != nil {
		return fmt.Errorf("failed to show thing %d: %w", number, err)
	}

	printAll(cmd.OutOrStdout(), out.Lumps)
	printWarnings(cmd.ErrOrStderr(), out.Warnings)
	return nil
}

func runShowRun(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.service.GetRun(context.Background(), &conversion.GetRunInput{ID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "// run %s created %s\n", out.ID, out.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	printAll(w, out.Lumps)
	return nil
}
