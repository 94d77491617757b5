package fraction

// MaxSqrtIterations caps the Newton iteration in Sqrt. Rounding to the
// nearest representable fraction can leave two estimates alternating
// forever; the cap ends that with the latest estimate.
const MaxSqrtIterations = 64

// Sqrt approximates the square root of n by Newton's method, iterating
// (n/x + x)/2 from (n+1)/2 (or 1 when n <= 1) until two successive
// estimates differ by Zero. ok is false for negative values and NaN.
//
// ok says nothing about convergence: a root cut off by MaxSqrtIterations
// is still returned with ok set. SqrtTrace reports which case occurred.
func Sqrt(n Fraction) (root Fraction, ok bool) {
	root, ok, _ = SqrtTrace(n, nil)
	return root, ok
}

// SqrtTrace is Sqrt, calling visit with each estimate when visit is not
// nil. converged is false when MaxSqrtIterations ran out before two
// estimates agreed, and for the inputs that have no root.
func SqrtTrace(n Fraction, visit func(step int, estimate Fraction)) (root Fraction, ok, converged bool) {
	return sqrtIter(n, MaxSqrtIterations, visit)
}

func sqrtIter(n Fraction, maxSteps int, visit func(step int, estimate Fraction)) (root Fraction, ok, converged bool) {
	switch {
	case n.IsNaN(), n.IsNegative():
		return NaN, false, false
	case n.IsZero():
		return Zero, true, true
	case n.IsInfinity():
		return Infinity, true, true
	}

	prev := One
	if n.Sub(One).IsPositive() {
		prev = n.Add(One).Div(two)
	}
	next := func(x Fraction) Fraction {
		return n.Div(x).Add(x).Div(two)
	}

	curr := next(prev)
	for step := 1; ; step++ {
		if visit != nil {
			visit(step, curr)
		}
		if curr.Sub(prev).IsZero() {
			return curr, true, true
		}
		if step >= maxSteps {
			return curr, true, false
		}
		prev, curr = curr, next(curr)
	}
}
