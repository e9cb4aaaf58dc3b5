package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/calc/internal/config"
	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/store"
)

// Keys of the settings table.
const (
	settingMode  = "mode"
	settingAngle = "angle"
	settingBase  = "base"
)

// EngineFlags are the starting-state flags shared by eval and repl.
type EngineFlags struct {
	Mode  string
	Angle string
	Base  string
}

func (f *EngineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Mode, "mode", "", "starting mode (standard|scientific|programming)")
	cmd.Flags().StringVar(&f.Angle, "angle", "", "starting angle mode (deg|rad|grad)")
	cmd.Flags().StringVar(&f.Base, "base", "", "starting programming base (2|8|10|16 or bin|oct|dec|hex)")
}

// overlayStart replaces the starting mode, angle and base of cfg with
// the ones set in mode, angle and base. Base accepts the names ParseBase does.
func overlayStart(cfg *config.Config, mode, angle, base string) error {
	if mode != "" {
		cfg.Mode = mode
	}
	if angle != "" {
		cfg.Angle = angle
	}
	if base != "" {
		b, err := engine.ParseBase(base)
		if err != nil {
			return err
		}
		cfg.Base = int(b)
	}
	return nil
}

// session is an engine and the store backing it, if any.
type session struct {
	engine *engine.Engine
	store  *store.Store
}

// Close closes the store.
func (s *session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// openStore opens the --db database. It returns nil without error when no
// database was configured.
func (o *RootOptions) openStore() (*store.Store, error) {
	if o.Database == "" {
		return nil, nil
	}
	o.logger().Debug("opening database", "path", o.Database)
	st, err := store.Open(o.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// newSession builds an engine for a command.
//
// The starting state is layered, later layers winning: the config file,
// the settings saved by the last repl session (restoreSettings only), then
// the command's flags.
func (o *RootOptions) newSession(ctx context.Context, flags EngineFlags, restoreSettings bool) (*session, error) {
	st, err := o.openStore()
	if err != nil {
		return nil, err
	}
	s := &session{store: st}

	var start config.Config
	if o.File != nil {
		start = *o.File
	}
	if restoreSettings && st != nil {
		saved, err := st.LoadSettings(ctx)
		if err != nil {
			o.logger().Warn("failed to load settings", "error", err)
		} else if err := overlayStart(&start, saved[settingMode], saved[settingAngle], saved[settingBase]); err != nil {
			o.logger().Warn("ignoring saved settings", "error", err)
		}
	}

	err = overlayStart(&start, flags.Mode, flags.Angle, flags.Base)
	var opts []engine.Option
	if err == nil {
		opts, err = start.EngineOptions()
	}
	if err != nil {
		s.Close()
		return nil, WrapExitError(ExitCommandError, "invalid starting state", err)
	}

	opts = append(opts,
		engine.WithNotifier(engine.LogNotifier{Logger: o.logger()}),
		engine.WithLogger(o.logger()),
	)
	if o.Now != nil {
		opts = append(opts, engine.WithClock(o.Now))
	}
	if st != nil {
		opts = append(opts, engine.WithStore(st))
	}

	s.engine = engine.New(opts...)
	return s, nil
}

// saveSettings stores the engine's mode, angle and base for the next
// repl session.
func (s *session) saveSettings(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	info := s.engine.Info()
	return s.store.SaveSettings(ctx, map[string]string{
		settingMode:  info.Mode,
		settingAngle: info.AngleMode,
		settingBase:  strconv.Itoa(info.Base),
	})
}

// calcError returns the first calculator error in err.
func calcError(err error) *engine.CalcError {
	var ce *engine.CalcError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// reportKeyError writes a failed keystroke run in the configured format and
// returns the ExitError the command should fail with.
func reportKeyError(f *OutputFormatter, err error, details any) error {
	code, message := "E_KEYS", err.Error()
	if ce := calcError(err); ce != nil {
		code, message = string(ce.Code), ce.Message
	}
	if f.Format == "json" {
		if outErr := f.Error(code, message, details); outErr != nil {
			return outErr
		}
	} else {
		fmt.Fprintln(f.Writer, details)
	}
	return NewExitError(ExitFailure, message)
}
