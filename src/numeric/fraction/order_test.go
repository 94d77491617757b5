package fraction

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	for idx, tc := range []struct {
		x, y Fraction
		c    int
		ok   bool
	}{
		{New(1, 2), New(3, 4), -1, true},
		{New(3, 4), New(1, 2), 1, true},
		{New(2, 4), New(1, 2), 0, true},
		{New(-1, 2), New(1, 3), -1, true},
		{Zero, New(-1, 3), 1, true},
		{Zero, Zero, 0, true},
		{Max, Infinity, -1, true},
		{Min, NegInfinity, 1, true},
		{Zero, Infinity, -1, true},
		{Zero, NegInfinity, 1, true},
		{New(3, 4), NegInfinity, 1, true},
		{Infinity, NegInfinity, 1, true},
		{NegInfinity, Infinity, -1, true},
		{Infinity, Infinity, 0, true},
		{NegInfinity, NegInfinity, 0, true},
		{NegInfinity, Min, -1, true},
		{NaN, Zero, 0, false},
		{Infinity, NaN, 0, false},
		{NaN, NaN, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.x, tc.y), func(t *testing.T) {
			c, ok := tc.x.Cmp(tc.y)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.c, c)
		})
	}
}

func TestNaNUnordered(t *testing.T) {
	for _, y := range []Fraction{NaN, Zero, One, Infinity, NegInfinity} {
		assert.False(t, NaN.Less(y))
		assert.False(t, NaN.LessEq(y))
		assert.False(t, NaN.Greater(y))
		assert.False(t, NaN.GreaterEq(y))
		assert.False(t, y.Less(NaN))
		assert.False(t, y.GreaterEq(NaN))
	}
	// structural equality still holds
	assert.True(t, NaN.Equal(NaN))
}

func TestOrderPredicates(t *testing.T) {
	a, b := New(1, 3), New(1, 2)
	assert.True(t, a.Less(b))
	assert.True(t, a.LessEq(b))
	assert.True(t, a.LessEq(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEq(b))
	assert.False(t, b.Less(a))
	assert.True(t, New(2, 4).Equal(b))
}

func TestCmpAgainstBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 5000; i++ {
		x, y := randFraction(rng), randFraction(rng)
		if !x.IsFinite() || !y.IsFinite() {
			continue
		}
		c, ok := x.Cmp(y)
		require.True(t, ok)
		require.Equal(t, toRat(x).Cmp(toRat(y)), c, "%s <=> %s", x, y)
	}
}
