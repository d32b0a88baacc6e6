package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ytdigest"
)

func newDigestCommand(config func() *ytdigest.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "digest [topic] [entity...]",
		Short: "Run one digest and print the result",
		Example: `  ytdigest digest
  ytdigest digest "container shipping" Maersk MSC
  ytdigest digest --json logistics DHL > digest.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var topic string
			var entities []string
			if len(args) > 0 {
				topic = args[0]
			}
			if len(args) > 1 {
				entities = args[1:]
			}

			svc, err := ytdigest.New(cmd.Context(), config())
			if err != nil {
				return err
			}

			q := ytdigest.NewQuery(topic, entities)
			fmt.Fprintf(cmd.ErrOrStderr(), "Searching: %s\n", q.String())
			entries := svc.Pipeline.Run(cmd.Context(), q)

			out := cmd.OutOrStdout()
			if asJSON || !isTerminal(out) {
				return writeJSON(out, entries)
			}
			fmt.Fprintln(out, renderEntries(entries))
			fmt.Fprintf(cmd.ErrOrStderr(), "\nTotal: %d entries\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON even on a terminal")
	return cmd
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderEntries(entries []ytdigest.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Channel", "Published", "Summary"})

	for i, e := range entries {
		summary := e.Summary
		if e.Failed() {
			summary = text.FgRed.Sprint(summary)
		}
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), e.Title, e.Channel, e.PublishedAt, summary})
		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: 40},
		{Number: 3, WidthMax: 20},
		{Number: 5, WidthMax: 80},
	})
	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
