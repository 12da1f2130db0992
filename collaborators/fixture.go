package collaborators

import (
	"context"

	"github.com/paw-chain/paw-arb/dexmodel"
)

// StaticFixture is a deterministic, in-memory implementation of every
// collaborator interface in this package, backed by values fixed at
// construction. It never performs I/O; it exists for the CLI's one-shot
// demo path and for tests that need a full collaborator set without a
// live chain.
type StaticFixture struct {
	Pools       dexmodel.PoolsSnapshot
	Tokens      dexmodel.TokensConfig
	Borrowables []dexmodel.Borrowable
	Sizes       dexmodel.TradeSizes

	// Broadcasts records every plan handed to Broadcast, in order, for
	// assertions in tests that exercise the full driver-to-broadcaster path.
	Broadcasts []dexmodel.TradePlan
}

var (
	_ PoolsSnapshotSource = (*StaticFixture)(nil)
	_ TokensConfigSource  = (*StaticFixture)(nil)
	_ BorrowablesSource   = (*StaticFixture)(nil)
	_ TradeSizeOracle     = (*StaticFixture)(nil)
	_ TxBroadcaster       = (*StaticFixture)(nil)
)

func (f *StaticFixture) PoolsSnapshot(context.Context) (dexmodel.PoolsSnapshot, error) {
	return f.Pools, nil
}

func (f *StaticFixture) TokensConfig(context.Context) (dexmodel.TokensConfig, error) {
	return f.Tokens, nil
}

func (f *StaticFixture) Borrowables(context.Context) ([]dexmodel.Borrowable, error) {
	return f.Borrowables, nil
}

func (f *StaticFixture) TradeSizes(_ context.Context, _ []dexmodel.Borrowable) (dexmodel.TradeSizes, error) {
	return f.Sizes, nil
}

// Broadcast records the plan and returns a synthetic transaction hash;
// it never contacts a chain.
func (f *StaticFixture) Broadcast(_ context.Context, plan dexmodel.TradePlan) (string, error) {
	f.Broadcasts = append(f.Broadcasts, plan)
	return "fixture-tx-" + plan.PlanID, nil
}
