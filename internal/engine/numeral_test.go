package engine

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInBase(t *testing.T) {
	tests := []struct {
		v    int64
		base Base
		want string
	}{
		{255, Base16, "FF"},
		{255, Base8, "377"},
		{255, Base2, "11111111"},
		{255, Base10, "255"},
		{0, Base2, "0"},
		{-255, Base16, "-FF"},
		{-8, Base8, "-10"},
		{-1, Base2, strings.Repeat("1", 32)},
		{math.MinInt32, Base2, "1" + strings.Repeat("0", 31)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderInBase(tt.v, tt.base), "RenderInBase(%d, %d)", tt.v, tt.base)
	}
}

func TestParseInBase(t *testing.T) {
	tests := []struct {
		s    string
		base Base
		want int64
	}{
		{"FF", Base16, 255},
		{"ff", Base16, 255},
		{"377", Base8, 255},
		{"11111111", Base2, 255},
		{"-FF", Base16, -255},
		{strings.Repeat("1", 32), Base2, -1},
		{"0", Base10, 0},
		{"FFFFFFFF", Base16, -1},
		{"80000000", Base16, math.MinInt32},
		{"37777777777", Base8, -1},
		{"2147483647", Base10, math.MaxInt32},
		{"-2147483648", Base10, math.MinInt32},
		{"-80000000", Base16, math.MinInt32},
	}
	for _, tt := range tests {
		got, err := ParseInBase(tt.s, tt.base)
		require.NoError(t, err, "ParseInBase(%q, %d)", tt.s, tt.base)
		assert.Equal(t, tt.want, got, "ParseInBase(%q, %d)", tt.s, tt.base)
	}
}

func TestParseInBase_Rejects(t *testing.T) {
	for _, tc := range []struct {
		s    string
		base Base
	}{
		{"", Base10},
		{"-", Base10},
		{"2", Base2},
		{"8", Base8},
		{"G", Base16},
		{"1.5", Base10},
		{"+1", Base10},
		{"10", Base(3)},
	} {
		_, err := ParseInBase(tc.s, tc.base)
		assert.Error(t, err, "ParseInBase(%q, %d)", tc.s, tc.base)
	}
}

func TestParseInBase_WordRange(t *testing.T) {
	for _, tc := range []struct {
		s    string
		base Base
	}{
		{"2147483648", Base10},
		{"3000000000", Base10},
		{"-2147483649", Base10},
		{"100000000", Base16},
		{"FFFFFFFFFFFFFFF", Base16},
		{"-80000001", Base16},
		{"40000000000", Base8},
		{"1" + strings.Repeat("0", 32), Base2},
	} {
		_, err := ParseInBase(tc.s, tc.base)
		assert.ErrorIs(t, err, strconv.ErrRange, "ParseInBase(%q, %d)", tc.s, tc.base)
	}
}

func TestRenderInBase_WrapsToWord(t *testing.T) {
	assert.Equal(t, "-1294967296", RenderInBase(3000000000, Base10))
	assert.Equal(t, "1294967296", RenderInBase(-3000000000, Base10))
	assert.Equal(t, "0", RenderInBase(1<<32, Base16))
	assert.Equal(t, "-1", RenderInBase(0x0FFFFFFFFFFFFFFF, Base16))
}

func TestRenderParse_RoundTrip(t *testing.T) {
	values := []int64{0, 1, 7, 42, 255, 4096, 65535, math.MaxInt32, -1, -42, -65536, math.MinInt32}
	for _, base := range Bases {
		for _, v := range values {
			got, err := ParseInBase(RenderInBase(v, base), base)
			require.NoError(t, err)
			assert.Equal(t, v, got, "round trip %d in base %d", v, base)
		}
	}

	wide := []int64{3000000000, -3000000000, math.MaxUint32, 1 << 40, math.MinInt64}
	for _, base := range Bases {
		for _, v := range wide {
			got, err := ParseInBase(RenderInBase(v, base), base)
			require.NoError(t, err)
			assert.Equal(t, WrapWord(v), got, "round trip %d in base %d", v, base)
		}
	}
}
