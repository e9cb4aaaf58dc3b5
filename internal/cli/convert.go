package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calc/internal/engine"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	From string
	To   string
}

// ConvertOutput is the result of a base conversion.
type ConvertOutput struct {
	Input      string      `json:"input"`
	From       int         `json:"from"`
	Value      int64       `json:"value"`
	Renderings []Rendering `json:"renderings"`
}

// Rendering is a value written in one base.
type Rendering struct {
	Base    int    `json:"base"`
	Label   string `json:"label"`
	Numeral string `json:"numeral"`
}

// String prints a single rendering bare and several as "DEC: … | HEX: …".
func (c ConvertOutput) String() string {
	if len(c.Renderings) == 1 {
		return c.Renderings[0].Numeral
	}
	parts := make([]string, len(c.Renderings))
	for i, r := range c.Renderings {
		parts[i] = r.Label + ": " + r.Numeral
	}
	return strings.Join(parts, " | ")
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <numeral>",
		Short: "Convert an integer between bases",
		Long: `Convert an integer numeral between bases 2, 8, 10 and 16.

Without --to the numeral is shown in every base. Values are 32-bit words,
as in Programming mode: negative binary numerals use two's complement and
unsigned binary, octal or hex numerals up to the word width read as signed. Use "--" before a
negative numeral so it is not read as a flag.

Examples:
  calc convert 255 --to hex
  calc convert FF --from 16
  calc convert --from bin --to dec 11111111111111111111111111111111
  calc convert --to bin -- -5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "10", "base of the input numeral (2|8|10|16 or bin|oct|dec|hex)")
	cmd.Flags().StringVar(&opts.To, "to", "", "output base (default: all bases)")

	return cmd
}

func runConvert(opts *ConvertOptions, numeral string, cmd *cobra.Command) error {
	from, err := engine.ParseBase(opts.From)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --from", err)
	}

	targets := engine.Bases
	if opts.To != "" {
		to, err := engine.ParseBase(opts.To)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --to", err)
		}
		targets = []engine.Base{to}
	}

	f := opts.formatter(cmd)

	value, err := engine.ParseInBase(numeral, from)
	if err != nil {
		msg := fmt.Sprintf("%q is not a base-%d numeral", numeral, int(from))
		if outErr := f.Error(string(engine.ErrCodeBaseConversion), msg, err.Error()); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, msg, err)
	}

	out := ConvertOutput{Input: numeral, From: int(from), Value: value}
	for _, b := range targets {
		out.Renderings = append(out.Renderings, Rendering{
			Base:    int(b),
			Label:   b.Label(),
			Numeral: engine.RenderInBase(value, b),
		})
	}
	return f.Success(out)
}
