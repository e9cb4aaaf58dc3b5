package engine_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calc/internal/engine"
	"github.com/roach88/calc/internal/history"
	"github.com/roach88/calc/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	e := engine.New()
	s := e.State()

	assert.Equal(t, engine.ModeStandard, s.Mode)
	assert.Equal(t, engine.AngleDegrees, s.AngleMode)
	assert.Equal(t, engine.Base10, s.Base)
	assert.Equal(t, "0", s.Current)
	assert.Equal(t, engine.OpNone, s.Pending)
	assert.False(t, s.WaitingForOperand)
	assert.False(t, s.Error)
	assert.Zero(t, s.Memory)
	assert.Equal(t, engine.PhaseReady, e.Phase())
	assert.Equal(t, engine.Display{Primary: "0"}, e.Display())
}

func TestEvaluate_SimpleAddition(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("5 + 3 ="))

	assert.Equal(t, "8", f.Engine.Display().Primary)
	recs := f.Engine.History()
	require.Len(t, recs, 1)
	assert.Equal(t, "5 + 3", recs[0].Expression)
	assert.Equal(t, "8", recs[0].Result)
	assert.Equal(t, "standard", recs[0].Mode)
	assert.Equal(t, 10, recs[0].Base)

	last, ok := f.Notifier.Last()
	require.True(t, ok)
	assert.Equal(t, engine.SeveritySuccess, last.Severity)
	assert.Equal(t, "5 + 3 = 8", last.Message)
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	f := testutil.NewFixture()
	err := f.Engine.PressAll("5 / 0 =")

	require.Error(t, err)
	assert.True(t, engine.IsDivisionByZero(err))
	assert.True(t, f.Engine.State().Error)
	assert.Equal(t, engine.PhaseError, f.Engine.Phase())
	assert.Equal(t, engine.Display{Primary: "Error", Secondary: "Cannot divide by zero"}, f.Engine.Display())
	assert.Empty(t, f.Engine.History())
	assert.Zero(t, f.Store.Saves)
}

func TestErrorPhase(t *testing.T) {
	t.Run("digit starts fresh", func(t *testing.T) {
		f := testutil.NewFixture()
		_ = f.Engine.PressAll("5 / 0 =")

		require.NoError(t, f.Engine.Press("7"))
		s := f.Engine.State()
		assert.Equal(t, "7", s.Current)
		assert.False(t, s.Error)
		assert.Equal(t, engine.OpNone, s.Pending)
		assert.Equal(t, engine.PhaseReady, f.Engine.Phase())
	})

	t.Run("decimal point starts fresh", func(t *testing.T) {
		f := testutil.NewFixture()
		_ = f.Engine.PressAll("5 / 0 =")

		require.NoError(t, f.Engine.Press("."))
		assert.Equal(t, "0.", f.Engine.Display().Primary)
	})

	t.Run("operators are refused", func(t *testing.T) {
		f := testutil.NewFixture()
		_ = f.Engine.PressAll("5 / 0 =")

		err := f.Engine.Press("+")
		assert.Equal(t, engine.ErrCodeErrorPending, engine.CodeOf(err))
		assert.True(t, f.Engine.State().Error)
	})

	t.Run("clear entry clears the flag", func(t *testing.T) {
		f := testutil.NewFixture()
		_ = f.Engine.PressAll("5 / 0 =")

		require.NoError(t, f.Engine.ClearEntry())
		assert.False(t, f.Engine.State().Error)
		assert.Equal(t, "0", f.Engine.Display().Primary)
	})

	t.Run("backspace acts as clear entry", func(t *testing.T) {
		f := testutil.NewFixture()
		_ = f.Engine.PressAll("5 / 0 =")

		require.NoError(t, f.Engine.Backspace())
		assert.False(t, f.Engine.State().Error)
	})
}

func TestApplyOperator_Chaining(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("5 + 3 +"))

	assert.Equal(t, "8", f.Engine.Display().Primary)
	assert.Equal(t, "8 +", f.Engine.Display().Secondary)

	require.NoError(t, f.Engine.PressAll("2 ="))
	assert.Equal(t, "10", f.Engine.Display().Primary)

	recs := f.Engine.History()
	require.Len(t, recs, 1)
	assert.Equal(t, "8 + 2", recs[0].Expression)
}

func TestApplyOperator_ReplacesPendingOperator(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("5 + - 3 ="))
	assert.Equal(t, "2", f.Engine.Display().Primary)
}

func TestApplyOperator_BitwiseOutsideProgramming(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.Press("5"))

	err := f.Engine.ApplyOperator(engine.OpAnd)
	assert.Equal(t, engine.ErrCodeUnsupported, engine.CodeOf(err))
	assert.Equal(t, engine.OpNone, f.Engine.State().Pending)
	assert.False(t, f.Engine.State().Error)
}

func TestEvaluate_NoPendingIsNoop(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("5 ="))
	assert.Equal(t, "5", f.Engine.Display().Primary)
	assert.Empty(t, f.Engine.History())

	require.NoError(t, f.Engine.PressAll("+ ="))
	assert.Empty(t, f.Engine.History(), "no operand entered after the operator")
}

func TestInputDigit(t *testing.T) {
	t.Run("replaces leading zero", func(t *testing.T) {
		e := engine.New()
		require.NoError(t, e.PressAll("0 0 7"))
		assert.Equal(t, "7", e.Display().Primary)
	})

	t.Run("truncates at max digits", func(t *testing.T) {
		e := engine.New()
		require.NoError(t, e.Press("12345678901234567890"))
		assert.Equal(t, "123456789012345", e.Display().Primary)
		assert.Len(t, e.Display().Primary, engine.MaxDigits)
	})

	t.Run("hex letter rejected in decimal modes", func(t *testing.T) {
		f := testutil.NewFixture()
		require.NoError(t, f.Engine.Press("4"))

		err := f.Engine.InputDigit('A')
		assert.Equal(t, engine.ErrCodeInvalidDigit, engine.CodeOf(err))
		assert.Equal(t, "4", f.Engine.Display().Primary)
		assert.False(t, f.Engine.State().Error)

		last, _ := f.Notifier.Last()
		assert.Equal(t, engine.SeverityError, last.Severity)
	})

	t.Run("digit must be below base", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeProgramming), engine.WithBase(engine.Base2))
		err := e.InputDigit('2')
		assert.Equal(t, engine.ErrCodeInvalidDigit, engine.CodeOf(err))
		assert.Equal(t, "0", e.Display().Primary)
	})

	t.Run("lower case hex is upper-cased", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeProgramming), engine.WithBase(engine.Base16))
		require.NoError(t, e.InputDigit('f'))
		require.NoError(t, e.InputDigit('a'))
		assert.Equal(t, "FA", e.Display().Primary)
	})
}

func TestInputDecimalPoint(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.PressAll(". 5"))
	assert.Equal(t, "0.5", e.Display().Primary)

	require.NoError(t, e.PressAll(". 2 . 5"))
	assert.Equal(t, "0.525", e.Display().Primary, "second point ignored")

	require.NoError(t, e.PressAll("+ ."))
	assert.Equal(t, "0.", e.Display().Primary)

	p := engine.New(engine.WithMode(engine.ModeProgramming))
	err := p.InputDecimalPoint()
	assert.Equal(t, engine.ErrCodeUnsupported, engine.CodeOf(err))
	assert.Equal(t, "0", p.Display().Primary)
}

func TestBackspace(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.PressAll("1 2 3 bs"))
	assert.Equal(t, "12", e.Display().Primary)

	require.NoError(t, e.PressAll("bs bs bs"))
	assert.Equal(t, "0", e.Display().Primary)

	require.NoError(t, e.PressAll("esc 1.5 bs"))
	assert.Equal(t, "1.", e.Display().Primary)
}

func TestClearEntry_KeepsPendingOperation(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.PressAll("5 + 3 del"))

	s := e.State()
	assert.Equal(t, "0", s.Current)
	assert.Equal(t, engine.OpAdd, s.Pending)

	require.NoError(t, e.PressAll("4 ="))
	assert.Equal(t, "9", e.Display().Primary)
}

func TestClearAll_KeepsMemoryAndHistory(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("2 + 2 = ms 5 +"))
	require.NoError(t, f.Engine.ClearAll())

	s := f.Engine.State()
	assert.Equal(t, "0", s.Current)
	assert.Equal(t, engine.OpNone, s.Pending)
	assert.False(t, s.WaitingForOperand)
	assert.Equal(t, 4.0, s.Memory)
	assert.Equal(t, 1, s.HistoryLen)
	assert.Equal(t, engine.PhaseReady, f.Engine.Phase())

	last, _ := f.Notifier.Last()
	assert.Equal(t, "Calculator cleared", last.Message)
}

func TestHistory_BoundedAtMaxRecords(t *testing.T) {
	f := testutil.NewFixture()
	for i := range history.MaxRecords + 1 {
		require.NoError(t, f.Engine.PressAll(fmt.Sprintf("%d + 0 =", i)))
	}

	recs := f.Engine.History()
	require.Len(t, recs, history.MaxRecords)
	assert.Equal(t, "100 + 0", recs[0].Expression, "newest first")
	assert.Equal(t, "1 + 0", recs[len(recs)-1].Expression, "oldest evicted")
	assert.Len(t, f.Store.Records(), history.MaxRecords)
}

func TestHistory_LoadedFromStore(t *testing.T) {
	store := testutil.NewMemoryHistoryStore(history.Record{ID: "old", Expression: "1 + 1", Result: "2", Mode: "standard", Base: 10})
	e := engine.New(engine.WithStore(store))

	assert.Equal(t, 1, e.State().HistoryLen)
	require.NoError(t, e.UseHistoryResult("old"))
	assert.Equal(t, "2", e.Display().Primary)
}

func TestHistory_LoadFailureStartsFresh(t *testing.T) {
	store := testutil.NewMemoryHistoryStore(history.Record{ID: "old"})
	store.LoadErr = errors.New("corrupt")
	n := &testutil.RecordingNotifier{}

	e := engine.New(engine.WithStore(store), engine.WithNotifier(n))

	assert.Zero(t, e.State().HistoryLen)
	warnings := n.WithSeverity(engine.SeverityWarning)
	require.Len(t, warnings, 1)
	assert.True(t, engine.IsStorageError(warnings[0].Err))
}

func TestEvaluate_StorageFailureIsWarningOnly(t *testing.T) {
	f := testutil.NewFixture()
	f.Store.SaveErr = errors.New("disk full")

	require.NoError(t, f.Engine.PressAll("1 + 1 ="))

	assert.Equal(t, "2", f.Engine.Display().Primary)
	assert.False(t, f.Engine.State().Error)
	assert.Equal(t, 1, f.Engine.State().HistoryLen)

	warnings := f.Notifier.WithSeverity(engine.SeverityWarning)
	require.Len(t, warnings, 1)
	assert.True(t, engine.IsStorageError(warnings[0].Err))
	assert.Equal(t, "Failed to save history", warnings[0].Message)
}

func TestApplyFunction(t *testing.T) {
	tests := []struct {
		name  string
		mode  engine.Mode
		angle engine.AngleMode
		keys  string
		want  string
	}{
		{"percent", engine.ModeStandard, engine.AngleDegrees, "50 %", "0.5"},
		{"square", engine.ModeStandard, engine.AngleDegrees, "12 x²", "144"},
		{"sqrt", engine.ModeStandard, engine.AngleDegrees, "81 sqrt", "9"},
		{"cube", engine.ModeScientific, engine.AngleDegrees, "3 cube", "27"},
		{"factorial", engine.ModeScientific, engine.AngleDegrees, "5 !", "120"},
		{"factorial zero", engine.ModeScientific, engine.AngleDegrees, "0 !", "1"},
		{"sin degrees", engine.ModeScientific, engine.AngleDegrees, "90 sin", "1"},
		{"sin 180 rounds to zero", engine.ModeScientific, engine.AngleDegrees, "180 sin", "0"},
		{"cos radians", engine.ModeScientific, engine.AngleRadians, "0 cos", "1"},
		{"sin gradians", engine.ModeScientific, engine.AngleGradians, "100 sin", "1"},
		{"asin degrees", engine.ModeScientific, engine.AngleDegrees, "1 asin", "90"},
		{"atan gradians", engine.ModeScientific, engine.AngleGradians, "1 atan", "50"},
		{"log", engine.ModeScientific, engine.AngleDegrees, "1000 log", "3"},
		{"ln e", engine.ModeScientific, engine.AngleDegrees, "euler ln", "1"},
		{"pi", engine.ModeScientific, engine.AngleDegrees, "pi", "3.14159265359"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithMode(tt.mode), engine.WithAngleMode(tt.angle))
			require.NoError(t, e.PressAll(tt.keys))
			assert.Equal(t, tt.want, e.Display().Primary)
			assert.True(t, e.State().WaitingForOperand)
		})
	}
}

func TestApplyFunction_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		mode    engine.Mode
		keys    string
		kind    engine.DomainKind
		message string
	}{
		{"negative sqrt", engine.ModeStandard, "0 - 4 = sqrt", engine.DomainNegativeSqrt, "Cannot take square root of negative number"},
		{"log zero", engine.ModeScientific, "0 log", engine.DomainNonPositiveLog, "Invalid input for logarithm"},
		{"ln negative", engine.ModeScientific, "0 - 1 = ln", engine.DomainNonPositiveLog, "Invalid input for logarithm"},
		{"fractional factorial", engine.ModeScientific, "3.5 !", engine.DomainFactorialArgument, "Factorial is only defined for non-negative integers"},
		{"negative factorial", engine.ModeScientific, "0 - 3 = !", engine.DomainFactorialArgument, "Factorial is only defined for non-negative integers"},
		{"factorial overflow", engine.ModeScientific, "171 !", engine.DomainFactorialOverflow, "Number too large for factorial"},
		{"asin out of range", engine.ModeScientific, "2 asin", engine.DomainInvalidResult, "Invalid result"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithMode(tt.mode))
			err := e.PressAll(tt.keys)

			require.Error(t, err)
			assert.True(t, engine.IsDomainError(err, tt.kind), "got %v", err)
			assert.True(t, e.State().Error)
			assert.Equal(t, engine.Display{Primary: "Error", Secondary: tt.message}, e.Display())
		})
	}
}

func TestApplyFunction_FactorialBoundary(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeScientific))
	require.NoError(t, e.PressAll("170 !"))
	assert.Equal(t, "7.257416e+306", e.Display().Primary)
}

func TestApplyFunction_NotAvailableInMode(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Press("30"))

	err := e.ApplyFunction(engine.FnSin)
	assert.Equal(t, engine.ErrCodeUnsupported, engine.CodeOf(err))
	assert.Equal(t, "30", e.Display().Primary)
	assert.False(t, e.State().Error)

	s := engine.New(engine.WithMode(engine.ModeScientific))
	err = s.ApplyFunction(engine.FnBitwiseNot)
	assert.Equal(t, engine.ErrCodeUnsupported, engine.CodeOf(err))
}

func TestProgrammingMode_BaseConversion(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeProgramming), engine.WithBase(engine.Base16))
	require.NoError(t, e.Press("FF"))
	assert.Equal(t, "DEC: 255 | OCT: 377 | BIN: 11111111", e.Display().Secondary)

	require.NoError(t, e.Press("bin"))
	assert.Equal(t, "11111111", e.Display().Primary)
	assert.Equal(t, engine.Base2, e.State().Base)

	require.NoError(t, e.Press("dec"))
	assert.Equal(t, "255", e.Display().Primary)
	assert.Equal(t, "HEX: FF | OCT: 377 | BIN: 11111111", e.Display().Secondary)
}

func TestProgrammingMode_BaseRoundTripBeyondWord(t *testing.T) {
	tests := []struct {
		name string
		keys string
		dec  string
		bin  string
		hex  string
	}{
		{"3000000000 wraps negative", "1500000000 * 2 =", "-1294967296", "10110010110100000101111000000000", "-4D2FA200"},
		{"-3000000000 wraps positive", "0 - 1500000000 = * 2 =", "1294967296", "1001101001011111010001000000000", "4D2FA200"},
		{"-5 stays negative", "0 - 5 =", "-5", "11111111111111111111111111111011", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithMode(engine.ModeProgramming))
			require.NoError(t, e.PressAll(tt.keys))
			assert.Equal(t, tt.dec, e.Display().Primary)

			require.NoError(t, e.ChangeBase(engine.Base2))
			assert.Equal(t, tt.bin, e.Display().Primary)
			require.NoError(t, e.ChangeBase(engine.Base10))
			assert.Equal(t, tt.dec, e.Display().Primary)
			require.NoError(t, e.ChangeBase(engine.Base16))
			assert.Equal(t, tt.hex, e.Display().Primary)
			assert.Contains(t, e.Display().Secondary, "DEC: "+tt.dec)
			require.NoError(t, e.ChangeBase(engine.Base10))
			assert.Equal(t, tt.dec, e.Display().Primary)
		})
	}
}

func TestProgrammingMode_WordOverflow(t *testing.T) {
	t.Run("hex entry stops at the word width", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeProgramming), engine.WithBase(engine.Base16))
		require.NoError(t, e.PressAll("FFFFFFFFFFFFFFF"))
		assert.Equal(t, "FFFFFFFF", e.Display().Primary)
		assert.Equal(t, "DEC: -1 | OCT: -1 | BIN: "+strings.Repeat("1", 32), e.Display().Secondary)

		require.NoError(t, e.PressAll("+ 0 ="))
		assert.Equal(t, "-1", e.Display().Primary)
	})

	t.Run("decimal entry stops at the signed range", func(t *testing.T) {
		e := engine.New(engine.WithMode(engine.ModeProgramming))
		require.NoError(t, e.PressAll("3000000000"))
		assert.Equal(t, "300000000", e.Display().Primary)
	})

	tests := []struct {
		name string
		keys string
		want string
	}{
		{"add wraps", "2147483647 + 1 =", "-2147483648"},
		{"multiply wraps", "65536 * 65536 =", "0"},
		{"multiply keeps low word", "65536 * 65537 =", "65536"},
		{"shift out of the word", "1 << 31 =", "-2147483648"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithMode(engine.ModeProgramming))
			require.NoError(t, e.PressAll(tt.keys))
			assert.Equal(t, tt.want, e.Display().Primary)
		})
	}
}

func TestChangeBase_OnlyInProgramming(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Press("10"))

	err := e.ChangeBase(engine.Base16)
	assert.Equal(t, engine.ErrCodeUnsupported, engine.CodeOf(err))
	assert.Equal(t, engine.Base10, e.State().Base)

	p := engine.New(engine.WithMode(engine.ModeProgramming))
	err = p.ChangeBase(engine.Base(7))
	assert.Equal(t, engine.ErrCodeInvalidBase, engine.CodeOf(err))
}

func TestProgrammingMode_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		base engine.Base
		keys string
		want string
	}{
		{"and", engine.Base10, "12 and 10 =", "8"},
		{"or", engine.Base10, "12 or 3 =", "15"},
		{"xor", engine.Base10, "12 xor 10 =", "6"},
		{"shift left", engine.Base10, "1 << 4 =", "16"},
		{"shift right", engine.Base10, "256 >> 4 =", "16"},
		{"shift count wraps", engine.Base10, "1 << 33 =", "2"},
		{"floor divide", engine.Base10, "7 / 2 =", "3"},
		{"floor divide negative", engine.Base10, "0 - 7 = / 2 =", "-4"},
		{"hex multiply", engine.Base16, "A * A =", "64"},
		{"not", engine.Base10, "5 not", "-6"},
		{"not zero in binary", engine.Base2, "0 not", "11111111111111111111111111111111"},
		{"negative binary", engine.Base2, "0 - 1 =", "11111111111111111111111111111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(engine.WithMode(engine.ModeProgramming), engine.WithBase(tt.base))
			require.NoError(t, e.PressAll(tt.keys))
			assert.Equal(t, tt.want, e.Display().Primary)
		})
	}
}

func TestProgrammingMode_DivisionByZero(t *testing.T) {
	e := engine.New(engine.WithMode(engine.ModeProgramming))
	err := e.PressAll("8 / 0 =")
	assert.True(t, engine.IsDivisionByZero(err))
	assert.Equal(t, "Error", e.Display().Primary)
	assert.Equal(t, "Cannot divide by zero", e.Display().Secondary)
}

func TestSwitchMode_ConvertsValue(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("255 programming hex"))
	assert.Equal(t, "FF", f.Engine.Display().Primary)

	require.NoError(t, f.Engine.Press("standard"))
	assert.Equal(t, "255", f.Engine.Display().Primary)
	assert.Equal(t, engine.ModeStandard, f.Engine.State().Mode)
	assert.True(t, f.Engine.State().WaitingForOperand)

	last, _ := f.Notifier.Last()
	assert.Equal(t, "Switched to standard mode", last.Message)
}

func TestSwitchMode_TruncatesFractions(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.PressAll("2.75 programming"))
	assert.Equal(t, "2", e.Display().Primary)
}

func TestMemory(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("5 ms esc mr"))
	assert.Equal(t, "5", f.Engine.Display().Primary)
	assert.True(t, f.Engine.Display().Memory)

	require.NoError(t, f.Engine.PressAll("3 m+ mr"))
	assert.Equal(t, "8", f.Engine.Display().Primary)

	require.NoError(t, f.Engine.PressAll("10 m- mr"))
	assert.Equal(t, "-2", f.Engine.Display().Primary)

	require.NoError(t, f.Engine.Press("mc"))
	assert.Zero(t, f.Engine.State().Memory)
	assert.False(t, f.Engine.Display().Memory)
}

func TestMemory_RecallFeedsPendingOperation(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.PressAll("7 ms esc 3 * mr ="))
	assert.Equal(t, "21", e.Display().Primary)
}

func TestUseHistoryResult(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("6 * 7 = esc"))

	require.NoError(t, f.Engine.UseHistoryResult("rec-0001"))
	assert.Equal(t, "42", f.Engine.Display().Primary)
	assert.True(t, f.Engine.State().WaitingForOperand)

	err := f.Engine.UseHistoryResult("missing")
	assert.Equal(t, engine.ErrCodeHistoryNotFound, engine.CodeOf(err))
}

func TestUseHistoryResult_ConvertsBase(t *testing.T) {
	f := testutil.NewFixture(engine.WithMode(engine.ModeProgramming), engine.WithBase(engine.Base16))
	require.NoError(t, f.Engine.PressAll("F + 1 ="))
	assert.Equal(t, "10", f.Engine.Display().Primary)

	require.NoError(t, f.Engine.Press("standard"))
	require.NoError(t, f.Engine.UseHistoryResult("rec-0001"))
	assert.Equal(t, "16", f.Engine.Display().Primary)
}

func TestSearchAndClearHistory(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("6 * 7 = 2 + 2 ="))

	found := f.Engine.SearchHistory("42")
	require.Len(t, found, 1)
	assert.Equal(t, "6 × 7", found[0].Expression)
	assert.Len(t, f.Engine.SearchHistory("+"), 1)
	assert.Empty(t, f.Engine.SearchHistory("99"))

	require.NoError(t, f.Engine.ClearHistory())
	assert.Empty(t, f.Engine.History())
	assert.Empty(t, f.Store.Records())
}

func TestExportHistory(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("6 * 7 ="))

	data, err := f.Engine.ExportHistory()
	require.NoError(t, err)
	assert.Equal(t,
		`{"calculator_version":"1.0","export_date":"2026-01-01T12:00:01Z","history":[{"base":10,"expression":"6 × 7","id":"rec-0001","mode":"standard","result":"42","timestamp":"2026-01-01T12:00:00Z"}]}`,
		string(data))
}

func TestInfo(t *testing.T) {
	f := testutil.NewFixture(engine.WithAngleMode(engine.AngleRadians))
	require.NoError(t, f.Engine.PressAll("4 ms 1 + 1 ="))

	assert.Equal(t, engine.Info{
		Mode:         "standard",
		AngleMode:    "RAD",
		Base:         10,
		Memory:       4,
		HistoryCount: 1,
	}, f.Engine.Info())
}

func TestNotifications_EntryKeysAreSilent(t *testing.T) {
	f := testutil.NewFixture()
	require.NoError(t, f.Engine.PressAll("1 2 . 5 bs"))
	assert.Empty(t, f.Notifier.All())
}
