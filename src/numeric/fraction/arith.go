package fraction

// addCategory resolves the category of x+y. Only a CategoryNormal result
// needs the numeric path.
func addCategory(x, y Category) Category {
	switch {
	case x == CategoryNaN || y == CategoryNaN:
		return CategoryNaN
	case x == CategoryInfinity && y == CategoryNegInfinity,
		x == CategoryNegInfinity && y == CategoryInfinity:
		return CategoryNaN
	case x == CategoryInfinity || y == CategoryInfinity:
		return CategoryInfinity
	case x == CategoryNegInfinity || y == CategoryNegInfinity:
		return CategoryNegInfinity
	case x == CategoryZero && y == CategoryZero:
		return CategoryZero
	}
	return CategoryNormal
}

// mulCategory resolves the category of x*y. The sign of a normal operand
// decides which infinity it produces.
func mulCategory(x, y Fraction) Category {
	infinite := func(c Category) bool {
		return c == CategoryInfinity || c == CategoryNegInfinity
	}
	switch {
	case x.cat == CategoryNaN || y.cat == CategoryNaN:
		return CategoryNaN
	case infinite(x.cat) && y.cat == CategoryZero,
		x.cat == CategoryZero && infinite(y.cat):
		return CategoryNaN
	case x.cat == CategoryZero || y.cat == CategoryZero:
		return CategoryZero
	case infinite(x.cat) || infinite(y.cat):
		if x.signum()*y.signum() < 0 {
			return CategoryNegInfinity
		}
		return CategoryInfinity
	}
	return CategoryNormal
}

// normalAdd adds two finite values. The exact sum a/b + c/d is
// (a*(d/g) + c*(b/g)) / ((b/g)*(d/g)*g) with g = gcd(b, d); every term fits
// in an int64 because all inputs are within the int32 range.
func normalAdd(x, y Fraction) Fraction {
	a, b := int64(x.num), uint64(x.Den())
	c, d := int64(y.num), uint64(y.Den())

	e, f, g := lcmParts(b, d)
	num := a*int64(e) + c*int64(f)
	den := e * f * g

	n := absInt64(num)
	gg := gcd(n, den)
	n, den = shrink(n/gg, den/gg)
	return fromReduced(num < 0, n, den)
}

// normalMul multiplies two normal values, cancelling the cross terms first
// so that the products are already reduced.
func normalMul(x, y Fraction) Fraction {
	a, b := absInt64(int64(x.num)), uint64(x.Den())
	c, d := absInt64(int64(y.num)), uint64(y.Den())

	gad, gbc := gcd(a, d), gcd(b, c)
	a, d = a/gad, d/gad
	b, c = b/gbc, c/gbc

	n, den := shrink(a*c, b*d)
	return fromReduced((x.num < 0) != (y.num < 0), n, den)
}

// Add returns x+y. Infinity plus NegInfinity is NaN.
func (x Fraction) Add(y Fraction) Fraction {
	if c := addCategory(x.cat, y.cat); c != CategoryNormal {
		return special(c)
	}
	switch {
	case y.cat == CategoryZero:
		return x
	case x.cat == CategoryZero:
		return y
	}
	return normalAdd(x, y)
}

// Sub returns x-y, computed as x + (-y).
func (x Fraction) Sub(y Fraction) Fraction {
	return x.Add(y.Neg())
}

// Mul returns x*y. Zero times either infinity is NaN.
func (x Fraction) Mul(y Fraction) Fraction {
	if c := mulCategory(x, y); c != CategoryNormal {
		return special(c)
	}
	return normalMul(x, y)
}

// Div returns x/y, computed as x * (1/y). Dividing a non-zero value by Zero
// gives an infinity and 0/0 is NaN.
func (x Fraction) Div(y Fraction) Fraction {
	return x.Mul(y.Reciprocal())
}

func (x *Fraction) AddAssign(y Fraction) { *x = x.Add(y) }
func (x *Fraction) SubAssign(y Fraction) { *x = x.Sub(y) }
func (x *Fraction) MulAssign(y Fraction) { *x = x.Mul(y) }
func (x *Fraction) DivAssign(y Fraction) { *x = x.Div(y) }
