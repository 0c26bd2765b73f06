package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

var (
	doomVersion int
	printLumps  bool
	noStore     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [script.yaml]",
	Short: "Convert an edit script to DDF lumps",
	Long: `Apply the edits of a YAML script over the baseline and write the DDF
lumps for every modified entity. Runs are stored in the output directory,
or in Redis when --redis is set. Examples:

  dehconv convert patch.yaml
  dehconv convert patch.yaml --print --no-store
  dehconv convert patch.yaml --redis localhost:6379`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().IntVar(&doomVersion, "doom-version", -1, "Patch format version, overrides the script")
	convertCmd.Flags().BoolVar(&printLumps, "print", false, "Print lumps to stdout")
	convertCmd.Flags().BoolVar(&noStore, "no-store", false, "Do not store the run")
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	script, err := a.loadScript(args[0], doomVersion)
	if err != nil {
		return err
	}

	out, err := a.service.Convert(context.Background(), &conversion.ConvertInput{
		Version: script.Version,
		Edits:   script.Edits,
		Persist: !noStore,
	})
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", args[0], err)
	}

	w := cmd.OutOrStdout()
	if printLumps {
		printAll(w, out.Lumps)
	}
	printWarnings(cmd.ErrOrStderr(), out.Warnings)

	if out.RunID != "" {
		fmt.Fprintf(w, "Run %s: %d lumps stored at %s\n", out.RunID, len(out.Lumps), out.Location)
	} else if !printLumps {
		fmt.Fprintf(w, "%d lumps converted\n", len(out.Lumps))
	}
	return nil
}

func printAll(w io.Writer, lumps []output.Lump) {
	for _, l := range lumps {
		fmt.Fprintf(w, "// ---- %s ----\n%s", l.Name, l.Text)
	}
}

func printWarnings(w io.Writer, warnings []session.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %s %d: %s\n", warn.Entity, warn.ID, warn.Message)
	}
}
