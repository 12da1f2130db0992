// Package dexmodel holds the data model shared by every route-valuation
// package: tokens, pools (constant-product and stable), paths, routes, and
// the trade plan handed to the (out-of-scope) transaction-building
// collaborator. It mirrors the fields x/dex/types/pool.go and swap.go
// carry on chain, minus anything tied to on-chain storage, events, or
// message encoding — this engine operates on immutable value snapshots,
// never on a KVStore.
package dexmodel

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/errs"
)

// Token identifies a fungible asset by its opaque on-chain address and the
// number of decimals used to convert between raw and human-readable
// amounts.
type Token struct {
	Address  string
	Decimals uint8
}

// TokensConfig is the collaborator-supplied list of known tokens, unique by
// address.
type TokensConfig []Token

// Lookup builds an address-indexed map, failing with errs.ErrDuplicateToken
// if any address repeats.
func (c TokensConfig) Lookup() (map[string]Token, error) {
	out := make(map[string]Token, len(c))
	for _, t := range c {
		if _, exists := out[t.Address]; exists {
			return nil, errs.ErrDuplicateToken.Wrapf("token address %s appears more than once", t.Address)
		}
		out[t.Address] = t
	}
	return out, nil
}

// Borrowable is a token the arbitrage driver may borrow and repay within a
// single cycle.
type Borrowable struct {
	Token     Token
	OracleKey string
}

// TradeSize is the capped input size and reference price for a single
// borrowable, keyed by token address.
type TradeSize struct {
	Raw   math.Int
	Price decimal.Decimal
}

// TradeSizes maps a borrowable token address to its TradeSize.
type TradeSizes map[string]TradeSize
