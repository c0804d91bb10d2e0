package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvmat/eager"
	"github.com/katalvlaran/lvmat/lazy"
	"github.com/katalvlaran/lvmat/shape"
)

func init() {
	register(Scenario{
		Name:        "sum3",
		Description: "a+b+c over 200x300 doubles, probe (100,100)",
		Lazy:        sum3Lazy,
		Eager:       sum3Eager,
	})
	register(Scenario{
		Name:        "sum9",
		Description: "a+a+b+b+c+c+a+b+c over 200x300 doubles, probe (100,100)",
		Lazy:        sum9Lazy,
		Eager:       sum9Eager,
	})
	register(Scenario{
		Name:        "int-mix",
		Description: "m*n+o*o over ints (100x200, 200x100, 100x100), probe (50,50)",
		Lazy:        intMixLazy,
		Eager:       intMixEager,
	})
	register(Scenario{
		Name:        "float32-chain",
		Description: "r=p*q; r*=r; r+=r over float32 (5x6, 6x5)",
		Lazy:        float32ChainLazy,
		Eager:       float32ChainEager,
	})
	register(Scenario{
		Name:        "add-scalar",
		Description: "o=a+b+10 over 10x5 doubles; o+=o",
		Lazy:        addScalarLazy,
		Eager:       addScalarEager,
	})
	register(Scenario{
		Name:        "mul-scalar",
		Description: "a*b*(1/3) over 100x500 and 500x100 doubles",
		Lazy:        mulScalarLazy,
		Eager:       mulScalarEager,
	})
	register(Scenario{
		Name:        "complex",
		Description: "p=[z z^2; -z -z^2], z=5+2i; p*=p; p+=p",
		Lazy:        complexLazy,
		Eager:       complexEager,
	})
}

// ---------- sum3 / sum9 ----------

func abcLazy() (a, b, c *lazy.Matrix[float64], err error) {
	if a, err = lazy.NewFilled(200, 300, 2.0); err != nil {
		return
	}
	if b, err = lazy.NewFilled(200, 300, 5.0); err != nil {
		return
	}
	c, err = lazy.NewFilled(200, 300, 7.0)
	return
}

func abcEager() (a, b, c *eager.Matrix[float64], err error) {
	if a, err = eager.NewFilled(200, 300, 2.0); err != nil {
		return
	}
	if b, err = eager.NewFilled(200, 300, 5.0); err != nil {
		return
	}
	c, err = eager.NewFilled(200, 300, 7.0)
	return
}

// probeOutcome reports a single element of an unmaterialized expression.
func probeOutcome(s shape.Shaped, v any) Outcome {
	return Outcome{Shape: shape.Of(s), Probe: fmt.Sprint(v)}
}

func sum3Lazy() (Outcome, error) {
	a, b, c, err := abcLazy()
	if err != nil {
		return Outcome{}, err
	}
	e, err := lazy.From[float64](a).Add(b).Add(c).Expr()
	if err != nil {
		return Outcome{}, err
	}
	// Only one element is evaluated; no 200x300 buffer is written.
	return probeOutcome(e, e.At(100, 100)), nil
}

func sum3Eager() (Outcome, error) {
	a, b, c, err := abcEager()
	if err != nil {
		return Outcome{}, err
	}
	ab, err := a.Add(b)
	if err != nil {
		return Outcome{}, err
	}
	abc, err := ab.Add(c)
	if err != nil {
		return Outcome{}, err
	}
	return probeOutcome(abc, abc.At(100, 100)), nil
}

func sum9Lazy() (Outcome, error) {
	a, b, c, err := abcLazy()
	if err != nil {
		return Outcome{}, err
	}
	ch := lazy.From[float64](a)
	for _, next := range []*lazy.Matrix[float64]{a, b, b, c, c, a, b, c} {
		ch = ch.Add(next)
	}
	e, err := ch.Expr()
	if err != nil {
		return Outcome{}, err
	}
	return probeOutcome(e, e.At(100, 100)), nil
}

func sum9Eager() (Outcome, error) {
	a, b, c, err := abcEager()
	if err != nil {
		return Outcome{}, err
	}
	acc := a
	for _, next := range []*eager.Matrix[float64]{a, b, b, c, c, a, b, c} {
		if acc, err = acc.Add(next); err != nil {
			return Outcome{}, err
		}
	}
	return probeOutcome(acc, acc.At(100, 100)), nil
}

// ---------- int-mix ----------

func intMixLazy() (Outcome, error) {
	m, err := lazy.NewFilled(100, 200, 5)
	if err != nil {
		return Outcome{}, err
	}
	n, err := lazy.NewFilled(200, 100, 2)
	if err != nil {
		return Outcome{}, err
	}
	o, err := lazy.NewFilled(100, 100, 100)
	if err != nil {
		return Outcome{}, err
	}
	oo, err := lazy.Mul[int](o, o)
	if err != nil {
		return Outcome{}, err
	}
	e, err := lazy.From[int](m).Mul(n).Add(oo).Expr()
	if err != nil {
		return Outcome{}, err
	}
	// Two dot products and one addition; nothing else is computed.
	return probeOutcome(e, e.At(50, 50)), nil
}

func intMixEager() (Outcome, error) {
	m, err := eager.NewFilled(100, 200, 5)
	if err != nil {
		return Outcome{}, err
	}
	n, err := eager.NewFilled(200, 100, 2)
	if err != nil {
		return Outcome{}, err
	}
	o, err := eager.NewFilled(100, 100, 100)
	if err != nil {
		return Outcome{}, err
	}
	mn, err := m.Mul(n)
	if err != nil {
		return Outcome{}, err
	}
	oo, err := o.Mul(o)
	if err != nil {
		return Outcome{}, err
	}
	sum, err := mn.Add(oo)
	if err != nil {
		return Outcome{}, err
	}
	return probeOutcome(sum, sum.At(50, 50)), nil
}

// ---------- float32-chain ----------

func float32ChainLazy() (Outcome, error) {
	p, err := lazy.NewFilled[float32](5, 6, 0.1)
	if err != nil {
		return Outcome{}, err
	}
	q, err := lazy.NewFilled[float32](6, 5, 10)
	if err != nil {
		return Outcome{}, err
	}
	r, err := lazy.From[float32](p).Mul(q).Materialize()
	if err != nil {
		return Outcome{}, err
	}
	if err = r.MulAssign(r); err != nil {
		return Outcome{}, err
	}
	if err = r.AddAssign(r); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(r, r.At(0, 0)), nil
}

func float32ChainEager() (Outcome, error) {
	p, err := eager.NewFilled[float32](5, 6, 0.1)
	if err != nil {
		return Outcome{}, err
	}
	q, err := eager.NewFilled[float32](6, 5, 10)
	if err != nil {
		return Outcome{}, err
	}
	r, err := p.Mul(q)
	if err != nil {
		return Outcome{}, err
	}
	if err = r.MulAssign(r); err != nil {
		return Outcome{}, err
	}
	if err = r.AddAssign(r); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(r, r.At(0, 0)), nil
}

// ---------- add-scalar ----------

func addScalarLazy() (Outcome, error) {
	a, err := lazy.NewFilled(10, 5, 1.0)
	if err != nil {
		return Outcome{}, err
	}
	b, err := lazy.NewFilled(10, 5, 2.0)
	if err != nil {
		return Outcome{}, err
	}
	o, err := lazy.From[float64](a).Add(b).AddScalar(10).Materialize()
	if err != nil {
		return Outcome{}, err
	}
	if err = o.AddAssign(o); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(o, o.At(0, 0)), nil
}

func addScalarEager() (Outcome, error) {
	a, err := eager.NewFilled(10, 5, 1.0)
	if err != nil {
		return Outcome{}, err
	}
	b, err := eager.NewFilled(10, 5, 2.0)
	if err != nil {
		return Outcome{}, err
	}
	ab, err := a.Add(b)
	if err != nil {
		return Outcome{}, err
	}
	o := ab.AddScalar(10)
	if err = o.AddAssign(o); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(o, o.At(0, 0)), nil
}

// ---------- mul-scalar ----------

func mulScalarLazy() (Outcome, error) {
	a, err := lazy.NewFilled(100, 500, 2.0)
	if err != nil {
		return Outcome{}, err
	}
	b, err := lazy.NewFilled(500, 100, 5.0)
	if err != nil {
		return Outcome{}, err
	}
	o, err := lazy.From[float64](a).Mul(b).MulScalar(1.0 / 3.0).Materialize()
	if err != nil {
		return Outcome{}, err
	}
	return outcomeOf(o, o.At(0, 0)), nil
}

func mulScalarEager() (Outcome, error) {
	a, err := eager.NewFilled(100, 500, 2.0)
	if err != nil {
		return Outcome{}, err
	}
	b, err := eager.NewFilled(500, 100, 5.0)
	if err != nil {
		return Outcome{}, err
	}
	ab, err := a.Mul(b)
	if err != nil {
		return Outcome{}, err
	}
	o := ab.MulScalar(1.0 / 3.0)
	return outcomeOf(o, o.At(0, 0)), nil
}

// ---------- complex ----------

// complexSeed returns [z, z², -z, -z²] for z = 5+2i.
func complexSeed() []complex128 {
	z := complex(5, 2)
	return []complex128{z, z * z, -z, -z * z}
}

func complexLazy() (Outcome, error) {
	p, err := lazy.NewFromSlice(2, 2, complexSeed())
	if err != nil {
		return Outcome{}, err
	}
	if err = p.MulAssign(p); err != nil {
		return Outcome{}, err
	}
	if err = p.AddAssign(p); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(p, p.At(0, 0)), nil
}

func complexEager() (Outcome, error) {
	p, err := eager.NewFromSlice(2, 2, complexSeed())
	if err != nil {
		return Outcome{}, err
	}
	if err = p.MulAssign(p); err != nil {
		return Outcome{}, err
	}
	if err = p.AddAssign(p); err != nil {
		return Outcome{}, err
	}
	return outcomeOf(p, p.At(0, 0)), nil
}
