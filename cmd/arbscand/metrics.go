package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// startPrometheusServer starts the /metrics endpoint on the given port in a
// background goroutine; failures after startup (e.g. port in use) are
// logged but never fatal, following cmd/pawd's StartPrometheusServer.
func startPrometheusServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("arbscand: prometheus server error: %v\n", err)
		}
	}()
}
