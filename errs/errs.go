// Package errs registers the sentinel error taxonomy for the arbitrage
// route engine, the same way x/dex/types/errors.go registers errors for
// the on-chain DEX module.
package errs

import (
	"cosmossdk.io/errors"
)

// ModuleName is the codespace the arbitrage engine registers its errors
// under. It has no relation to any on-chain module name; the engine never
// touches chain state.
const ModuleName = "arbrouter"

var (
	// Root finder
	ErrNewtonSlopeZero = errors.Register(ModuleName, 1, "newton: derivative is zero at current iterate")
	ErrNewtonMaxIter   = errors.Register(ModuleName, 2, "newton: exceeded maximum iterations without converging")
	ErrBisectSameSign  = errors.Register(ModuleName, 3, "bisect: f(a) and f(b) have the same sign")
	ErrBisectMaxIter   = errors.Register(ModuleName, 4, "bisect: exceeded maximum iterations without converging")
	ErrNoBisectBounds  = errors.Register(ModuleName, 5, "calcZero: no eager or lazy lower bound supplied for bisection fallback")

	// Stable-pool engine (§4.3 / §7)
	ErrTradeTooSmall       = errors.Register(ModuleName, 6, "trade amount is at or below the pool's minimum trade size")
	ErrPriceImpactExceeded = errors.Register(ModuleName, 7, "price impact is negative or exceeds the pool's configured limit")
	ErrNonconvergent       = errors.Register(ModuleName, 8, "invariant solver did not converge on a root")
	ErrOracleUnavailable   = errors.Register(ModuleName, 9, "stable pool price ratio is unavailable")

	// Constant-product engine (§4.4 / §7)
	ErrInsufficientLiquidity = errors.Register(ModuleName, 10, "requested output amount meets or exceeds available pool liquidity")

	// Route evaluator (§4.6 / §7)
	ErrUnknownToken    = errors.Register(ModuleName, 11, "token address not present in the token configuration")
	ErrDuplicateToken  = errors.Register(ModuleName, 12, "duplicate token address in token configuration")
	ErrDuplicatePool   = errors.Register(ModuleName, 13, "duplicate pool address in pool snapshot")
	ErrTokenMismatch   = errors.Register(ModuleName, 14, "current token is not one of the pool's two tokens")
	ErrPoolNotFound    = errors.Register(ModuleName, 15, "pool address not present in the pool snapshot")
	ErrEmptyPath       = errors.Register(ModuleName, 16, "path has no hops")
	ErrInvalidDecimals = errors.Register(ModuleName, 17, "token decimals out of range")

	// Decimal facade (§4.1 / §7)
	ErrDivideByZero = errors.Register(ModuleName, 18, "division by zero")
	ErrNegativeSqrt = errors.Register(ModuleName, 19, "square root of a negative decimal")
)
