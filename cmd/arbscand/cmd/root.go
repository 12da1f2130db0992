// Package cmd builds the arbscand Cobra command tree: a root command plus
// a single "scan" subcommand that loads a fixture snapshot, runs the
// arbitrage driver once (or repeatedly under --watch), and prints the
// resulting trade plan. It follows the Cobra/viper root-command wiring of
// cmd/pawd/cmd/root.go — viper bound directly to the persistent flags with
// BindPFlag, a package-level rootCmd builder returning *cobra.Command — without any of
// the chain-daemon machinery (no home directory, no genesis, no server
// start) that command has no use for here.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/paw-chain/paw-arb/arbitrage"
	"github.com/paw-chain/paw-arb/collaborators"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/internal/metrics"
)

// NewRootCmd builds the arbscand root command. It is called once from
// main.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "arbscand",
		Short: "Triangular arbitrage route scanner for the paw DEX",
		Long: `arbscand enumerates multi-hop swap routes over a pool snapshot, prices each
with pool-specific curve math, and reports the most profitable borrow/
route/repay trade plan it finds. It never signs or broadcasts a
transaction itself.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a fixture snapshot JSON file (required)")
	flags.Bool("watch", false, "repeat the scan on an interval instead of exiting after one pass")
	flags.Duration("interval", 10*time.Second, "scan interval when --watch is set")
	bindFlags(v, flags, "config", "watch", "interval")

	rootCmd.AddCommand(newScanCmd(v))

	return rootCmd
}

// bindFlags binds each named flag on fs into v, following the same
// viper.BindPFlag loop cmd/pawd/cmd/root.go runs over its persistent flag
// set before reading configuration.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}

func newScanCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run the arbitrage scan once (or on --watch's interval) and print the best trade plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.NewLogger(cmd.OutOrStdout())

			configPath := v.GetString("config")
			if configPath == "" {
				return fmt.Errorf("scan: --config is required")
			}

			fixture, gas, maxHops, minimumProfit, err := loadFixture(configPath)
			if err != nil {
				return fmt.Errorf("scan: loading config %s: %w", configPath, err)
			}

			runOnce := func() error {
				start := time.Now()
				plan, err := runScan(cmd.Context(), fixture, maxHops, gas, minimumProfit)
				metrics.ScanLatency.Observe(time.Since(start).Seconds())
				if err != nil {
					logger.Error("scan failed", "error", err)
					return err
				}
				if plan == nil {
					logger.Info("scan complete: no profitable route found")
					return nil
				}

				metrics.OpportunitiesFound.WithLabelValues(plan.BorrowToken.Address).Inc()
				metrics.BestProfitRaw.WithLabelValues(plan.BorrowToken.Address).Set(
					float64(plan.ExpectedReturn.Sub(plan.BorrowAmount).Int64()),
				)

				out, err := json.MarshalIndent(plan, "", "  ")
				if err != nil {
					return fmt.Errorf("scan: encoding trade plan: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			if !v.GetBool("watch") {
				return runOnce()
			}

			ticker := time.NewTicker(v.GetDuration("interval"))
			defer ticker.Stop()

			if err := runOnce(); err != nil {
				logger.Error("scan cycle error", "error", err)
			}
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					if err := runOnce(); err != nil {
						logger.Error("scan cycle error", "error", err)
					}
				}
			}
		},
	}
}

// runScan pulls one snapshot from the fixture collaborator and runs the
// driver over it. A production deployment swaps the fixture for a real
// collaborators.PoolsSnapshotSource/TokensConfigSource/BorrowablesSource/
// TradeSizeOracle without changing this function.
func runScan(
	ctx context.Context,
	fixture *collaborators.StaticFixture,
	maxHops int,
	gas dexmodel.GasMultiplier,
	minimumProfit math.Int,
) (*dexmodel.TradePlan, error) {
	pools, err := fixture.PoolsSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := fixture.TokensConfig(ctx)
	if err != nil {
		return nil, err
	}
	borrowables, err := fixture.Borrowables(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := fixture.TradeSizes(ctx, borrowables)
	if err != nil {
		return nil, err
	}

	return arbitrage.FindOpportunity(borrowables, sizes, pools, tokens, gas, maxHops, minimumProfit)
}
