package engine

import (
	"fmt"
	"strings"
)

// Display is what a presentation layer paints after each operation.
type Display struct {
	// Primary is the current value, or "Error".
	Primary string `json:"primary"`

	// Secondary is the pending expression ("12 +"), the alternate-base
	// renderings in Programming mode, or the error message.
	Secondary string `json:"secondary"`

	// Memory is true while the memory register is non-zero.
	Memory bool `json:"memory"`
}

// Display returns the current display contents.
func (e *Engine) Display() Display {
	d := Display{Primary: e.current, Memory: e.memory != 0}

	switch {
	case e.errored:
		d.Secondary = e.errMsg
	case e.mode == ModeProgramming:
		d.Secondary = e.conversions()
	case e.pending != OpNone:
		d.Secondary = fmt.Sprintf("%s %s", FormatNumber(e.previous), e.pending.Symbol())
	}
	return d
}

// conversions renders the current value in every base except the active one.
func (e *Engine) conversions() string {
	v, err := ParseInBase(e.current, e.base)
	if err != nil {
		return ""
	}

	parts := make([]string, 0, len(Bases)-1)
	for _, b := range Bases {
		if b == e.base {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", b.Label(), RenderInBase(v, b)))
	}
	return strings.Join(parts, " | ")
}
