package fraction

import (
	"math"

	"lukechampine.com/uint128"
)

// limit bounds the magnitude of both the numerator and the denominator.
const limit = math.MaxInt32

// shrink returns the fraction nearest to num/den whose terms are both at most
// limit. num and den must be coprime and den non-zero.
func shrink(num, den uint64) (uint64, uint64) {
	return approximate(num, den, limit)
}

// approximate walks the continued fraction expansion of num/den, keeping
// the last two convergents p0/q0 and p1/q1, starting from 0/1 and 1/0. It
// stops before the first convergent with a term above bound, then picks
// between p1/q1 and the largest semiconvergent (p0+k*p1)/(q0+k*q1) that
// still fits. Ties go to p1/q1, which has the smaller denominator.
//
// Convergents of a reduced num/den never exceed num and den, so the
// products below cannot overflow.
func approximate(num, den, bound uint64) (uint64, uint64) {
	if num <= bound && den <= bound {
		return num, den
	}

	p0, q0, p1, q1 := uint64(0), uint64(1), uint64(1), uint64(0)
	for n, d := num, den; d != 0; {
		a := n / d
		p2, q2 := p0+a*p1, q0+a*q1
		if p2 > bound || q2 > bound {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, n-a*d
	}

	if q1 == 0 {
		// only 1/0 fits: the value is beyond bound
		return bound, 1
	}
	if p1 == 0 {
		return 0, 1
	}
	k := min((bound-q0)/q1, (bound-p0)/p1)
	p2, q2 := p0+k*p1, q0+k*q1

	// |p/q - num/den| is proportional to deviation(p, q) / q
	d1 := deviation(p1, q1, num, den)
	d2 := deviation(p2, q2, num, den)
	if d1.Mul64(q2).Cmp(d2.Mul64(q1)) <= 0 {
		return p1, q1
	}
	return p2, q2
}

// deviation returns |p*den - num*q| exactly. For the candidates approximate
// compares it is at most max(num, den), so scaling it by a denominator
// within bound stays inside 128 bits.
func deviation(p, q, num, den uint64) uint128.Uint128 {
	a := uint128.From64(p).Mul64(den)
	b := uint128.From64(num).Mul64(q)
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}
