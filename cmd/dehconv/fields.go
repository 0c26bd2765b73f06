package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

type fieldListing struct {
	names func() []string
	kind  func(name string) fields.Kind
}

func listing[T any](t *fields.Table[T]) fieldListing {
	return fieldListing{
		names: t.Names,
		kind: func(name string) fields.Kind {
			ref, _ := t.Lookup(name)
			return ref.Kind
		},
	}
}

var fieldTables = map[string]fieldListing{
	"things":  listing(fields.Things),
	"frames":  listing(fields.Frames),
	"weapons": listing(fields.Weapons),
	"ammo":    listing(fields.Ammo),
	"sounds":  listing(fields.Sounds),
	"misc":    listing(fields.Misc),
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [things|frames|weapons|ammo|sounds|misc]",
	Short: "List the patch fields each entity accepts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 1 {
			l, ok := fieldTables[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown entity %q", args[0])
			}
			printFields(w, l)
			return nil
		}

		entities := make([]string, 0, len(fieldTables))
		for name := range fieldTables {
			entities = append(entities, name)
		}
		sort.Strings(entities)

		for _, name := range entities {
			fmt.Fprintf(w, "[%s]\n", name)
			printFields(w, fieldTables[name])
			fmt.Fprintln(w)
		}
		return nil
	},
}

func printFields(w io.Writer, l fieldListing) {
	for _, name := range l.names() {
		fmt.Fprintf(w, "  %-24s %s\n", name, l.kind(name))
	}
}
