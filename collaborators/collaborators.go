// Package collaborators defines the expected interfaces the arbitrage
// driver needs from the outside world — chain RPC, an indexer, a price
// oracle, and a transaction broadcaster — none of which this module
// implements against a live chain. It follows
// the "expected keeper" idiom of x/dex/types/expected_keepers.go: narrow,
// consumer-defined interfaces rather than importing a concrete client.
package collaborators

import (
	"context"

	"google.golang.org/grpc"

	"github.com/paw-chain/paw-arb/dexmodel"
)

// PoolsSnapshotSource supplies the pool/reserve snapshot for one
// evaluation cycle.
type PoolsSnapshotSource interface {
	PoolsSnapshot(ctx context.Context) (dexmodel.PoolsSnapshot, error)
}

// TokensConfigSource supplies the known token set.
type TokensConfigSource interface {
	TokensConfig(ctx context.Context) (dexmodel.TokensConfig, error)
}

// BorrowablesSource supplies the tokens the driver is permitted to
// borrow within a cycle.
type BorrowablesSource interface {
	Borrowables(ctx context.Context) ([]dexmodel.Borrowable, error)
}

// TradeSizeOracle supplies each borrowable's capped trade size and
// reference price, keyed by token address.
type TradeSizeOracle interface {
	TradeSizes(ctx context.Context, borrowables []dexmodel.Borrowable) (dexmodel.TradeSizes, error)
}

// TxBroadcaster submits a TradePlan for on-chain execution — borrow,
// swap along RouterPath, repay — and reports back the resulting
// transaction hash. This module never builds or signs the transaction
// itself; it only decides whether a plan is
// worth handing to this collaborator.
type TxBroadcaster interface {
	Broadcast(ctx context.Context, plan dexmodel.TradePlan) (txHash string, err error)
}

// GRPCEndpoint names the chain RPC endpoint a production PoolsSnapshotSource
// or TokensConfigSource implementation dials against. Conn is left nil
// until a collaborator calls Dial — this package never dials it itself,
// since a live chain connection is a collaborator's job, never a
// pure-computation package's.
type GRPCEndpoint struct {
	Address  string
	Insecure bool
	Conn     *grpc.ClientConn
}

// Dial opens the gRPC connection for e.Address, storing it on e.Conn.
// Callers are responsible for closing e.Conn when done; this method only
// exists so every collaborator implementation shares one dial path instead
// of each reimplementing grpc.NewClient plumbing.
func (e *GRPCEndpoint) Dial(opts ...grpc.DialOption) error {
	conn, err := grpc.NewClient(e.Address, opts...)
	if err != nil {
		return err
	}
	e.Conn = conn
	return nil
}
