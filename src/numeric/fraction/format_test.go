package fraction

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		x    Fraction
		want string
	}{
		{New(5, 1), "5"},
		{New(3, 4), "3/4"},
		{New(-2, 3), "-2/3"},
		{New(4, -6), "-2/3"},
		{Zero, "0"},
		{Infinity, "inf"},
		{NegInfinity, "-inf"},
		{NaN, "nan"},
		{Max, "2147483646"},
		{Min, "-2147483647"},
		{MinPositive, "1/2147483647"},
	} {
		assert.Equal(t, tc.want, tc.x.String())
		assert.Equal(t, tc.want, fmt.Sprint(tc.x))
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Fraction
	}{
		{"5", New(5, 1)},
		{"-2/3", New(-2, 3)},
		{"4/6", New(2, 3)},
		{"3/-4", New(-3, 4)},
		{"0", Zero},
		{"0/7", Zero},
		{"inf", Infinity},
		{"+inf", Infinity},
		{"-inf", NegInfinity},
		{"nan", NaN},
		{"1/0", Infinity},
		{"-1/0", NegInfinity},
		{"0/0", NaN},
		{"2147483647", Infinity},
		{"-2147483648", NegInfinity},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "/", "1/", "/2", "a/b", "1.5", "1/2/3", "2147483648", "1/-2147483649", "infinity"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.Error(t, err)
			require.True(t, got.IsNaN())
		})
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, x := range []Fraction{Zero, One, Max, Min, MinPositive, Infinity, NegInfinity, NaN, New(-355, 113)} {
		got, err := Parse(x.String())
		require.NoError(t, err)
		require.Equal(t, x, got)
	}
}

func TestJSON(t *testing.T) {
	type doc struct {
		Ratio Fraction   `json:"ratio"`
		More  []Fraction `json:"more"`
	}
	in := doc{Ratio: New(-3, 4), More: []Fraction{Infinity, NaN, Zero}}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"ratio":"-3/4","more":["inf","nan","0"]}`, string(b))

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)
}

func TestUnmarshalJSONErrors(t *testing.T) {
	var x Fraction
	require.Error(t, json.Unmarshal([]byte(`3`), &x))
	require.Error(t, json.Unmarshal([]byte(`""`), &x))
	require.Error(t, json.Unmarshal([]byte(`"x/2"`), &x))
	require.Error(t, x.UnmarshalJSON([]byte(`"`)))
}

func TestText(t *testing.T) {
	b, err := New(7, 3).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "7/3", string(b))

	var x Fraction
	require.NoError(t, x.UnmarshalText([]byte("-inf")))
	require.Equal(t, NegInfinity, x)
	require.Error(t, x.UnmarshalText([]byte("seven")))
	require.Equal(t, NegInfinity, x)
}
