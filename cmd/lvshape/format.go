package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvshape/catalog"
)

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be text, json or yaml", format)
	}
}

func writeEntries(w io.Writer, format string, entries []catalog.Entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		formatEntriesText(w, entries)
		return nil
	}
}

// formatEntriesText prints one "label  area=N" line per entry, labels aligned.
func formatEntriesText(w io.Writer, entries []catalog.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\tarea=%d\n", e.Label, e.Area)
	}
	tw.Flush()
}
