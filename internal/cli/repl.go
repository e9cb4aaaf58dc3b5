package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ReplOptions holds flags for the repl command.
type ReplOptions struct {
	*RootOptions
	Engine EngineFlags
}

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read keys from stdin, one line at a time",
		Long: `Run an interactive calculator that reads keys from stdin.

Each line is pressed as a sequence of keys and the display is printed
after it. Besides calculator keys a line may hold one command:

  history [text]   list history, optionally filtered
  use <id>         load a history result as the current value
  info             show mode, angle, base, memory and history size
  quit | exit      stop

With --db, history is saved as you go and the mode, angle and base are
restored the next time the repl starts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(opts, cmd)
		},
	}

	opts.Engine.register(cmd)

	return cmd
}

func runRepl(opts *ReplOptions, cmd *cobra.Command) error {
	ctx := cmdContext(cmd)

	s, err := opts.newSession(ctx, opts.Engine, true)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)
	scanner := bufio.NewScanner(cmd.InOrStdin())

loop:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		word, rest, _ := strings.Cut(line, " ")

		switch strings.ToLower(word) {
		case "":
			continue
		case "quit", "exit":
			break loop
		case "info":
			err = f.Success(infoOutput(s.engine.Info()))
		case "history":
			err = f.Success(HistoryList(s.engine.SearchHistory(strings.TrimSpace(rest))))
		case "use":
			err = replResult(f, s.engine.UseHistoryResult(strings.TrimSpace(rest)), s)
		default:
			err = replResult(f, s.engine.PressAll(line), s)
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	if err := s.saveSettings(ctx); err != nil {
		opts.logger().Warn("failed to save settings", "error", err)
	}
	return nil
}

// replResult prints the display after a line. Rejected keys are reported
// but do not end the session.
func replResult(f *OutputFormatter, keyErr error, s *session) error {
	out := newDisplayOutput(s.engine)
	if keyErr == nil {
		return f.Success(out)
	}
	err := reportKeyError(f, keyErr, out)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

// infoOutput renders engine.Info as text.
type infoOutput struct {
	Mode         string  `json:"mode"`
	AngleMode    string  `json:"angle_mode"`
	Base         int     `json:"base"`
	Memory       float64 `json:"memory"`
	HistoryCount int     `json:"history_count"`
}

func (i infoOutput) String() string {
	return fmt.Sprintf("mode=%s angle=%s base=%d memory=%g history=%d",
		i.Mode, i.AngleMode, i.Base, i.Memory, i.HistoryCount)
}
