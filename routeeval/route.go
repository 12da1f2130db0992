// Package routeeval folds a candidate path of pool addresses into a
// priced Route: per-hop swap simulation, fee/impact/gas accumulation, and
// ranking of the surviving routes for a single (input, output, amount)
// query. It is grounded on x/dex/keeper/multihop.go's
// SimulateMultiHopSwap — the same "resolve pool, determine direction,
// simulate, accumulate, advance" fold — generalized to dispatch per-hop
// between the constant-product and stable-curve engines instead of
// multihop.go's single CalculateSwapOutput call, and on
// osmosis-labs-sqs's route.go for the "skip and continue" multi-route
// evaluation shape.
package routeeval

import (
	"sort"

	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/cpmm"
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
	"github.com/paw-chain/paw-arb/internal/metrics"
	"github.com/paw-chain/paw-arb/stableswap"
)

// sortRoutesDescending orders routes by QuoteOutputAmount descending,
// stable so that equal-output routes keep their enumeration order.
func sortRoutesDescending(routes []dexmodel.Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].QuoteOutputAmount.GT(routes[j].QuoteOutputAmount)
	})
}

// CalculateRoute simulates inputAmount of inputToken along path against
// pools, resolving token decimals via tokens, and returns the priced
// Route. Any single-hop failure aborts the whole route with that error.
func CalculateRoute(inputAmount math.Int, inputToken string, path dexmodel.Path, pools dexmodel.PoolsSnapshot, tokens dexmodel.TokensConfig, gas dexmodel.GasMultiplier) (dexmodel.Route, error) {
	if len(path) == 0 {
		return dexmodel.Route{}, errs.ErrEmptyPath
	}

	poolsByAddr, err := pools.Lookup()
	if err != nil {
		return dexmodel.Route{}, err
	}
	tokensByAddr, err := tokens.Lookup()
	if err != nil {
		return dexmodel.Route{}, err
	}

	if _, ok := tokensByAddr[inputToken]; !ok {
		return dexmodel.Route{}, errs.ErrUnknownToken.Wrapf("token %s not in token config", inputToken)
	}

	currentToken := inputToken
	currentAmount := inputAmount
	accumLPFee := math.ZeroInt()
	accumDAOFee := math.ZeroInt()
	accumImpact := decimal.Zero()
	accumGas := decimal.Zero()

	for _, poolAddr := range path {
		pool, ok := poolsByAddr[poolAddr]
		if !ok {
			return dexmodel.Route{}, errs.ErrPoolNotFound.Wrapf("pool %s not in pool snapshot", poolAddr)
		}

		token0, ok := tokensByAddr[pool.Token0.Address]
		if !ok {
			return dexmodel.Route{}, errs.ErrUnknownToken.Wrapf("token %s not in token config", pool.Token0.Address)
		}
		token1, ok := tokensByAddr[pool.Token1.Address]
		if !ok {
			return dexmodel.Route{}, errs.ErrUnknownToken.Wrapf("token %s not in token config", pool.Token1.Address)
		}

		outputToken, err := pool.OtherToken(currentToken)
		if err != nil {
			return dexmodel.Route{}, err
		}

		var (
			out          math.Int
			lpFeeAmt     math.Int
			daoFeeAmt    math.Int
			impact       decimal.Decimal
			hopGas       decimal.Decimal
		)

		switch pool.Kind {
		case dexmodel.PoolKindStable:
			sp, err := stableswap.FromSnapshot(pool)
			if err != nil {
				return dexmodel.Route{}, err
			}

			inDecimals := token0.Decimals
			if currentToken == pool.Token1.Address {
				inDecimals = token1.Decimals
			}
			outDecimals := token1.Decimals
			if currentToken == pool.Token1.Address {
				outDecimals = token0.Decimals
			}

			humanIn := decimal.NewFromRaw(currentAmount.BigInt(), inDecimals)

			var res stableswap.SwapResult
			if currentToken == pool.Token0.Address {
				res, err = sp.SimulateToken0ForToken1(humanIn)
			} else {
				res, err = sp.SimulateToken1ForToken0(humanIn)
			}
			if err != nil {
				return dexmodel.Route{}, err
			}

			out = math.NewIntFromBigInt(res.Amount.ToRaw(outDecimals))
			lpFeeAmt = math.NewIntFromBigInt(res.LPFeeAmount.ToRaw(outDecimals))
			daoFeeAmt = math.NewIntFromBigInt(res.DAOFeeAmount.ToRaw(outDecimals))
			impact = res.PriceImpact
			hopGas = gas.Stable

		case dexmodel.PoolKindConstantProduct:
			reserveIn, reserveOut, err := cpmm.PoolReserves(pool, currentToken)
			if err != nil {
				return dexmodel.Route{}, err
			}

			res, err := cpmm.SimulateForward(currentAmount, reserveIn, reserveOut, pool.LPFee, pool.DAOFee)
			if err != nil {
				return dexmodel.Route{}, err
			}

			out = res.Amount
			lpFeeAmt = res.LPFeeAmount
			daoFeeAmt = res.DAOFeeAmount
			impact = res.PriceImpact
			hopGas = gas.ConstantProduct

		default:
			return dexmodel.Route{}, errs.ErrTokenMismatch.Wrapf("pool %s has unknown kind", pool.Address)
		}

		accumLPFee = accumLPFee.Add(lpFeeAmt)
		accumDAOFee = accumDAOFee.Add(daoFeeAmt)
		accumImpact = accumImpact.Add(impact)
		accumGas = accumGas.Add(hopGas)

		currentToken = outputToken.Address
		currentAmount = out
	}

	outputToken, ok := tokensByAddr[currentToken]
	if !ok {
		return dexmodel.Route{}, errs.ErrUnknownToken.Wrapf("token %s not in token config", currentToken)
	}
	inputTok := tokensByAddr[inputToken]

	return dexmodel.Route{
		InputToken:        inputTok,
		OutputToken:       outputToken,
		Path:              path,
		InputAmount:       inputAmount,
		QuoteOutputAmount: currentAmount,
		QuoteLPFee:        accumLPFee,
		QuoteDAOFee:       accumDAOFee,
		PriceImpact:       accumImpact,
		GasMultiplier:     accumGas,
	}, nil
}

// GetRoutes enumerates every candidate path from inputToken to
// outputToken up to maxHops, prices each one with CalculateRoute,
// silently skips any path whose simulation fails, and returns the
// surviving routes sorted by QuoteOutputAmount descending — ties
// preserve the path enumerator's original order, since Go's sort.SliceStable
// is used rather than sort.Slice.
func GetRoutes(inputAmount math.Int, inputToken, outputToken string, maxHops int, pools dexmodel.PoolsSnapshot, tokens dexmodel.TokensConfig, gas dexmodel.GasMultiplier, pathsFn func(string, string, int, dexmodel.PoolsSnapshot) []dexmodel.Path) []dexmodel.Route {
	paths := pathsFn(inputToken, outputToken, maxHops, pools)

	routes := make([]dexmodel.Route, 0, len(paths))
	for _, path := range paths {
		route, err := CalculateRoute(inputAmount, inputToken, path, pools, tokens, gas)
		if err != nil {
			metrics.RoutesEvaluated.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.RoutesEvaluated.WithLabelValues("priced").Inc()
		routes = append(routes, route)
	}

	sortRoutesDescending(routes)
	return routes
}
