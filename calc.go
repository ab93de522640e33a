package weierstrass

// calc evaluates a chain of field operations and keeps the first error.
// Once an error is recorded every later call is a no-op that returns its
// first operand, so formulas can be written straight through and checked
// once at the end.
type calc struct {
	err error
}

func (c *calc) apply(op func(Element) (Element, error), x, y Element) Element {
	if c.err != nil {
		return x
	}

	r, err := op(y)
	if err != nil {
		c.err = err
		return x
	}

	return r
}

func (c *calc) add(x, y Element) Element {
	return c.apply(x.Add, x, y)
}

func (c *calc) sub(x, y Element) Element {
	return c.apply(x.Sub, x, y)
}

func (c *calc) mul(x, y Element) Element {
	return c.apply(x.Mul, x, y)
}

func (c *calc) div(x, y Element) Element {
	return c.apply(x.Div, x, y)
}

// dbl returns 2x.
func (c *calc) dbl(x Element) Element {
	return c.add(x, x)
}

// triple returns 3x.
func (c *calc) triple(x Element) Element {
	return c.add(c.dbl(x), x)
}

func (c *calc) square(x Element) Element {
	if c.err != nil {
		return x
	}
	return x.Square()
}

// compatible reports ErrMismatch if any element lives in a different field
// from the first one. The backend's own operand check decides.
func compatible(elems ...Element) error {
	var c calc
	for _, e := range elems[1:] {
		c.sub(elems[0], e)
	}
	return c.err
}
