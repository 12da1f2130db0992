package dexmodel

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/decimal"
)

// Path is an ordered sequence of pool addresses to traverse, produced by
// the pathfinder package.
type Path []string

// GasMultiplier tags the per-hop gas cost the caller wants accumulated.
// The engine treats these as opaque values it only sums; the
// constructors below are a convenience default, not a chain-derived truth.
type GasMultiplier struct {
	Stable         decimal.Decimal
	ConstantProduct decimal.Decimal
}

// DefaultGasMultiplier returns plausible relative weights: a stable-pool
// hop is costlier to simulate (and, on chain, to execute) than a
// constant-product hop because it runs the numerical invariant solver.
// Callers evaluating real routes should supply their own measured values;
// this is only a reasonable default for the CLI/demo path.
func DefaultGasMultiplier() GasMultiplier {
	return GasMultiplier{
		Stable:          decimal.NewFromInt64(3),
		ConstantProduct: decimal.NewFromInt64(1),
	}
}

// Route is a priced path: a Path paired with the input token, the
// simulated output, and the fees/impact/gas accumulated along the way.
type Route struct {
	InputToken        Token
	OutputToken       Token
	Path              Path
	InputAmount       math.Int
	QuoteOutputAmount math.Int
	QuoteLPFee        math.Int
	QuoteDAOFee       math.Int
	PriceImpact       decimal.Decimal
	GasMultiplier     decimal.Decimal
}

// RouterHop is one pool leg of a TradePlan's router path.
type RouterHop struct {
	PoolAddress string
	TokenIn     string
	TokenOut    string
}

// TradePlan is the three-step transaction plan emitted for a profitable
// route: borrow BorrowAmount of BorrowToken, swap along RouterPath, repay
// the borrow plus the configured minimum profit.
// PlanID is a correlation id (a github.com/google/uuid v4 string) threaded
// through driver logs and metrics; it has no on-chain meaning.
type TradePlan struct {
	PlanID         string
	BorrowToken    Token
	BorrowAmount   math.Int
	RouterPath     []RouterHop
	ExpectedReturn math.Int
}
