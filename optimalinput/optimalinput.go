// Package optimalinput solves, in closed form, the borrow size that
// maximizes profit for a closed three-hop constant-product arbitrage
// cycle. There is no teacher file that solves this —
// x/dex only ever executes a swap it is given, never optimizes the input
// to one — so the formula itself is taken verbatim from §9 (the
// "exact expression used in the source for baseIn2", sign pattern
// preserved exactly as instructed); decimal is reused as the arithmetic
// substrate throughout, consistent with every other numeric package in
// this module.
package optimalinput

import (
	"github.com/paw-chain/paw-arb/decimal"
)

// Roots is the pair of real roots of the optimal-borrow quadratic; the
// caller selects the positive, economically meaningful one.
type Roots struct {
	Root1 decimal.Decimal
	Root2 decimal.Decimal
}

// Solve computes the optimal borrow size for a closed cycle of three
// constant-product pools with reserves (base0, x0), (x1, y1), (y2,
// base2) and per-pool fees (fee0, fee1, fee2) — §4.7 describes
// the identical-fee case (fee0 = fee1 = fee2 = f); this signature keeps
// the three fee slots the source formula names distinct instead of
// collapsing them, since the formula itself never assumes they're equal.
//
// Returns errs.ErrNegativeSqrt if the discriminant S is negative (no
// real borrow size exists that closes the cycle profitably).
func Solve(base0, x0, x1, y1, y2, base2, fee0, fee1, fee2 decimal.Decimal) (Roots, error) {
	one := decimal.One()

	t1 := base0.Mul(x1).Mul(y2)

	// f = base0·base2·(fee − 1), which is negative for any fee below 1;
	// the negation that restores a positive discriminant is applied to S
	// below.
	f := base0.Mul(base2).Mul(fee0.Sub(one))
	f1 := f.Mul(fee1)
	f2 := f.Sub(f1).Mul(fee2)

	// S = −(f − f1 − f2)·x0·x1·y1·y2.
	s := f.Sub(f1).Sub(f2).Mul(x0).Mul(x1).Mul(y1).Mul(y2).Neg()

	sqrtS, err := s.Sqrt()
	if err != nil {
		return Roots{}, err
	}

	// D = ((fee0 − 1)·fee1 − fee0 + 1)·x0·y1 − ((fee0 − 1)·x0 − x1)·y2
	d := fee0.Sub(one).Mul(fee1).Sub(fee0).Add(one).Mul(x0).Mul(y1).
		Sub(fee0.Sub(one).Mul(x0).Sub(x1).Mul(y2))

	root1 := t1.Add(sqrtS).Neg().MustQuo(d)
	root2 := t1.Sub(sqrtS).Neg().MustQuo(d)

	return Roots{Root1: root1, Root2: root2}, nil
}
