package dexmodel

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/errs"
)

// PoolKind tags which swap curve a Pool uses.
type PoolKind int

const (
	// PoolKindConstantProduct is the X*Y=k curve (cpmm package).
	PoolKindConstantProduct PoolKind = iota
	// PoolKindStable is the flattened, price-ratio-anchored curve
	// (stableswap package).
	PoolKindStable
)

// StableParams carries the curve-shaping parameters of a stable pool.
// PriceRatio is the price of Token1 in units of Token0.
type StableParams struct {
	PriceRatio        decimal.Decimal
	Alpha             decimal.Decimal
	Gamma1            decimal.Decimal
	Gamma2            decimal.Decimal
	MinTradeSize0For1 decimal.Decimal
	MinTradeSize1For0 decimal.Decimal
	PriceImpactLimit  decimal.Decimal
}

// DefaultSwapFee is the fee used when a pool specifies none.
var DefaultSwapFee = decimal.MustFromString("0.003")

// Pool is a liquidity pool snapshot — a tagged union over
// PoolKindConstantProduct and PoolKindStable, mirroring the fields
// x/dex/types carries for an on-chain Pool plus the stable-curve
// parameters §3 adds. Pool values are immutable snapshots; no
// package in this module mutates one in place. StablePool, the mutable-
// state pattern §9 permits for direct callers, lives in the
// stableswap package as a distinct type built from a Pool snapshot.
type Pool struct {
	Kind    PoolKind
	Address string
	Token0  Token
	Token1  Token
	Amount0 math.Int
	Amount1 math.Int
	LPFee   decimal.Decimal
	DAOFee  decimal.Decimal

	// Stable is populated only when Kind == PoolKindStable.
	Stable StableParams
}

// NewConstantProductPool builds a constant-product Pool snapshot.
func NewConstantProductPool(address string, token0, token1 Token, amount0, amount1 math.Int, lpFee, daoFee decimal.Decimal) Pool {
	return Pool{
		Kind:    PoolKindConstantProduct,
		Address: address,
		Token0:  token0,
		Token1:  token1,
		Amount0: amount0,
		Amount1: amount1,
		LPFee:   lpFee,
		DAOFee:  daoFee,
	}
}

// NewStablePool builds a stable-curve Pool snapshot.
func NewStablePool(address string, token0, token1 Token, amount0, amount1 math.Int, lpFee, daoFee decimal.Decimal, params StableParams) Pool {
	return Pool{
		Kind:    PoolKindStable,
		Address: address,
		Token0:  token0,
		Token1:  token1,
		Amount0: amount0,
		Amount1: amount1,
		LPFee:   lpFee,
		DAOFee:  daoFee,
		Stable:  params,
	}
}

// HasToken reports whether the pool contains the given token address.
func (p Pool) HasToken(addr string) bool {
	return p.Token0.Address == addr || p.Token1.Address == addr
}

// OtherToken returns the token on the opposite side of the pool from addr.
// Returns errs.ErrTokenMismatch if addr is not one of the pool's two
// tokens.
func (p Pool) OtherToken(addr string) (Token, error) {
	switch addr {
	case p.Token0.Address:
		return p.Token1, nil
	case p.Token1.Address:
		return p.Token0, nil
	default:
		return Token{}, errs.ErrTokenMismatch.Wrapf("token %s is not in pool %s", addr, p.Address)
	}
}

// PoolsSnapshot is the collaborator-supplied list of pools for one
// evaluation cycle, indexable by address via Lookup.
type PoolsSnapshot []Pool

// Lookup builds an address-indexed map, failing with errs.ErrDuplicatePool
// if any address repeats.
func (s PoolsSnapshot) Lookup() (map[string]Pool, error) {
	out := make(map[string]Pool, len(s))
	for _, p := range s {
		if _, exists := out[p.Address]; exists {
			return nil, errs.ErrDuplicatePool.Wrapf("pool address %s appears more than once", p.Address)
		}
		out[p.Address] = p
	}
	return out, nil
}
