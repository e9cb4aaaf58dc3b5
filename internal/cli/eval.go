package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Engine EngineFlags
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <keys...>",
		Short: "Press keys and print the display",
		Long: `Press keys on a fresh calculator and print the resulting display.

Keys may be passed as separate arguments or as one quoted string. With --db
the evaluations are added to the saved history.

Exit codes:
  0 - Every key was accepted
  1 - A key was rejected or a calculation failed
  2 - Command error (bad flags, database not found, etc.)

Examples:
  calc eval "5 + 3 ="
  calc eval --mode scientific 90 sin
  calc eval --mode programming --base hex "FF and 0F ="
  calc eval --db ./history.db "12 * 12 ="`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, strings.Join(args, " "), cmd)
		},
	}

	opts.Engine.register(cmd)

	return cmd
}

func runEval(opts *EvalOptions, keys string, cmd *cobra.Command) error {
	s, err := opts.newSession(cmdContext(cmd), opts.Engine, false)
	if err != nil {
		return err
	}
	defer s.Close()

	f := opts.formatter(cmd)
	opts.logger().Debug("eval", "keys", keys)

	keyErr := s.engine.PressAll(keys)
	out := newDisplayOutput(s.engine)
	if keyErr != nil {
		return reportKeyError(f, keyErr, out)
	}
	return f.Success(out)
}
