package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/collaborators"
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
)

// fileConfig is the JSON-on-disk shape of a scan configuration: a static
// pool/token/borrowable snapshot for the demo and test collaborator
// (collaborators.StaticFixture), since this module never dials a live
// chain itself. A production deployment swaps
// fileConfig's loader for a real collaborators.PoolsSnapshotSource /
// TokensConfigSource pair without touching anything downstream.
type fileConfig struct {
	MaxHops       int              `json:"maxHops" mapstructure:"maxHops"`
	MinimumProfit string           `json:"minimumProfit" mapstructure:"minimumProfit"`
	Tokens        []tokenConfig    `json:"tokens" mapstructure:"tokens"`
	Pools         []poolConfig     `json:"pools" mapstructure:"pools"`
	Borrowables   []borrowConfig   `json:"borrowables" mapstructure:"borrowables"`
	TradeSizes    []tradeSizeEntry `json:"tradeSizes" mapstructure:"tradeSizes"`
}

type tokenConfig struct {
	Address  string `json:"address" mapstructure:"address"`
	Decimals uint8  `json:"decimals" mapstructure:"decimals"`
}

type stableParamsConfig struct {
	PriceRatio        string `json:"priceRatio" mapstructure:"priceRatio"`
	Alpha             string `json:"alpha" mapstructure:"alpha"`
	Gamma1            string `json:"gamma1" mapstructure:"gamma1"`
	Gamma2            string `json:"gamma2" mapstructure:"gamma2"`
	MinTradeSize0For1 string `json:"minTradeSize0For1" mapstructure:"minTradeSize0For1"`
	MinTradeSize1For0 string `json:"minTradeSize1For0" mapstructure:"minTradeSize1For0"`
	PriceImpactLimit  string `json:"priceImpactLimit" mapstructure:"priceImpactLimit"`
}

type poolConfig struct {
	Address string              `json:"address" mapstructure:"address"`
	Kind    string              `json:"kind" mapstructure:"kind"` // "cpmm" or "stable"
	Token0  string              `json:"token0" mapstructure:"token0"`
	Token1  string              `json:"token1" mapstructure:"token1"`
	Amount0 string              `json:"amount0" mapstructure:"amount0"`
	Amount1 string              `json:"amount1" mapstructure:"amount1"`
	LPFee   string              `json:"lpFee" mapstructure:"lpFee"`
	DAOFee  string              `json:"daoFee" mapstructure:"daoFee"`
	Stable  *stableParamsConfig `json:"stable,omitempty" mapstructure:"stable"`
}

type borrowConfig struct {
	Token     string `json:"token" mapstructure:"token"`
	OracleKey string `json:"oracleKey" mapstructure:"oracleKey"`
}

type tradeSizeEntry struct {
	Token string `json:"token" mapstructure:"token"`
	Raw   string `json:"raw" mapstructure:"raw"`
	Price string `json:"price" mapstructure:"price"`
}

// loadFixture reads a fileConfig from path and builds the static
// collaborator fixture and scan parameters driven from it.
func loadFixture(path string) (*collaborators.StaticFixture, dexmodel.GasMultiplier, int, math.Int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, dexmodel.GasMultiplier{}, 0, math.Int{}, err
	}

	var cfg fileConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, dexmodel.GasMultiplier{}, 0, math.Int{}, err
	}

	tokensByAddr := make(map[string]dexmodel.Token, len(cfg.Tokens))
	tokens := make(dexmodel.TokensConfig, 0, len(cfg.Tokens))
	for _, t := range cfg.Tokens {
		tok := dexmodel.Token{Address: t.Address, Decimals: t.Decimals}
		tokens = append(tokens, tok)
		tokensByAddr[t.Address] = tok
	}

	pools := make(dexmodel.PoolsSnapshot, 0, len(cfg.Pools))
	for _, p := range cfg.Pools {
		amount0, ok := math.NewIntFromString(p.Amount0)
		if !ok {
			return nil, dexmodel.GasMultiplier{}, 0, math.Int{}, fmt.Errorf("config: pool %s: invalid amount0 %q", p.Address, p.Amount0)
		}
		amount1, ok := math.NewIntFromString(p.Amount1)
		if !ok {
			return nil, dexmodel.GasMultiplier{}, 0, math.Int{}, fmt.Errorf("config: pool %s: invalid amount1 %q", p.Address, p.Amount1)
		}
		lpFee := decimal.MustFromString(p.LPFee)
		daoFee := decimal.MustFromString(p.DAOFee)

		switch p.Kind {
		case "stable":
			sc := p.Stable
			params := dexmodel.StableParams{
				PriceRatio:        decimal.MustFromString(sc.PriceRatio),
				Alpha:             decimal.MustFromString(sc.Alpha),
				Gamma1:            decimal.MustFromString(sc.Gamma1),
				Gamma2:            decimal.MustFromString(sc.Gamma2),
				MinTradeSize0For1: decimal.MustFromString(sc.MinTradeSize0For1),
				MinTradeSize1For0: decimal.MustFromString(sc.MinTradeSize1For0),
				PriceImpactLimit:  decimal.MustFromString(sc.PriceImpactLimit),
			}
			pools = append(pools, dexmodel.NewStablePool(
				p.Address, tokensByAddr[p.Token0], tokensByAddr[p.Token1], amount0, amount1, lpFee, daoFee, params,
			))
		default:
			pools = append(pools, dexmodel.NewConstantProductPool(
				p.Address, tokensByAddr[p.Token0], tokensByAddr[p.Token1], amount0, amount1, lpFee, daoFee,
			))
		}
	}

	borrowables := make([]dexmodel.Borrowable, 0, len(cfg.Borrowables))
	for _, b := range cfg.Borrowables {
		borrowables = append(borrowables, dexmodel.Borrowable{
			Token:     tokensByAddr[b.Token],
			OracleKey: b.OracleKey,
		})
	}

	sizes := make(dexmodel.TradeSizes, len(cfg.TradeSizes))
	for _, s := range cfg.TradeSizes {
		raw, ok := math.NewIntFromString(s.Raw)
		if !ok {
			return nil, dexmodel.GasMultiplier{}, 0, math.Int{}, fmt.Errorf("config: trade size %s: invalid raw amount %q", s.Token, s.Raw)
		}
		sizes[s.Token] = dexmodel.TradeSize{
			Raw:   raw,
			Price: decimal.MustFromString(s.Price),
		}
	}

	fixture := &collaborators.StaticFixture{
		Pools:       pools,
		Tokens:      tokens,
		Borrowables: borrowables,
		Sizes:       sizes,
	}

	maxHops := cfg.MaxHops
	if maxHops <= 0 {
		maxHops = 5
	}

	minProfit := math.ZeroInt()
	if cfg.MinimumProfit != "" {
		if v, ok := math.NewIntFromString(cfg.MinimumProfit); ok {
			minProfit = v
		}
	}

	return fixture, dexmodel.DefaultGasMultiplier(), maxHops, minProfit, nil
}
