package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calc/internal/history"
)

// HistoryListOptions holds flags for the history list command.
type HistoryListOptions struct {
	*RootOptions
	Search string
	Limit  int
}

// HistoryExportOptions holds flags for the history export command.
type HistoryExportOptions struct {
	*RootOptions
	Output string
}

// HistoryList is a list of history records, newest first.
type HistoryList []history.Record

// String prints one "id  expression = result" line per record.
func (l HistoryList) String() string {
	if len(l) == 0 {
		return "No history."
	}
	var b strings.Builder
	for i, r := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatRecord(r))
	}
	return b.String()
}

func formatRecord(r history.Record) string {
	line := fmt.Sprintf("%s  %s = %s", r.ID, r.Expression, r.Result)
	if r.Base != 10 {
		line += fmt.Sprintf("  (base %d)", r.Base)
	}
	return line
}

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, clear or export saved history",
		Long: `Work with the calculation history saved in the --db database.

The history keeps the 100 most recent calculations, newest first.`,
	}

	cmd.AddCommand(newHistoryListCommand(rootOpts))
	cmd.AddCommand(newHistoryClearCommand(rootOpts))
	cmd.AddCommand(newHistoryExportCommand(rootOpts))

	return cmd
}

func newHistoryListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved calculations",
		Long: `List saved calculations, newest first.

Examples:
  calc history list --db ./history.db
  calc history list --db ./history.db --search "×" --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "only show records whose expression or result contains this text")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most this many records (0 = all)")

	return cmd
}

func runHistoryList(opts *HistoryListOptions, cmd *cobra.Command) error {
	s, err := opts.historySession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records := s.engine.SearchHistory(opts.Search)
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return opts.formatter(cmd).Success(HistoryList(records))
}

func newHistoryClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Delete all saved calculations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.historySession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmdContext(cmd)
			removed, err := s.store.CountHistory(ctx)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to clear history", err)
			}
			if err := s.store.ClearHistory(ctx); err != nil {
				return WrapExitError(ExitFailure, "failed to clear history", err)
			}
			return rootOpts.formatter(cmd).Success(clearOutput{Removed: removed})
		},
	}
}

type clearOutput struct {
	Removed int `json:"removed"`
}

func (c clearOutput) String() string {
	return fmt.Sprintf("History cleared (%d records removed).", c.Removed)
}

func newHistoryExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved calculations as JSON",
		Long: `Export saved calculations as a canonical JSON document:

  {"calculator_version":"…","export_date":"…","history":[…]}

The document is written to stdout, or to the file given with --output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the export to this file")

	return cmd
}

func runHistoryExport(opts *HistoryExportOptions, cmd *cobra.Command) error {
	s, err := opts.historySession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.engine.ExportHistory()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to export history", err)
	}

	if opts.Output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write export", err)
	}
	opts.formatter(cmd).VerboseLog("exported %d records to %s", len(s.engine.History()), opts.Output)
	return nil
}

// historySession opens an engine over the required --db store.
func (o *RootOptions) historySession(cmd *cobra.Command) (*session, error) {
	if o.Database == "" {
		return nil, NewExitError(ExitCommandError, "--db is required")
	}
	return o.newSession(cmdContext(cmd), EngineFlags{}, false)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
