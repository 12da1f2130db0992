package main

import (
	"fmt"
	"os"

	"github.com/paw-chain/paw-arb/cmd/arbscand/cmd"
)

func main() {
	startPrometheusServer(9464)

	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
