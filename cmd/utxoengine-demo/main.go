// Command utxoengine-demo wires settings, logging, the embedded engine and
// metrics into a small composition root, the same shape every cmd/ package
// in the teranode/aerospike pack follows: load config, build a logger, hand
// both to the long-lived pieces, serve /metrics.
package main

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"os"

	as "github.com/aerospike/aerospike-client-go/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bsv-blockchain/teranode-utxo-engine/internal/metrics"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/settings"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/stats"
	"github.com/bsv-blockchain/teranode-utxo-engine/internal/ulogger"
	teranode "github.com/bsv-blockchain/teranode-utxo-engine/pkg/client"
)

func main() {
	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load settings:", err)
		os.Exit(1)
	}

	log := ulogger.New("utxoengine-demo", "info", os.Stderr)
	log.Infof("starting with namespace=%s set=%s udfPackage=%s retention=%d",
		cfg.AerospikeNamespace, cfg.AerospikeSet, cfg.UDFPackage, cfg.DefaultBlockHeightRetention)

	backend := teranode.NewEmbeddedBackend()
	backend.Logger = log
	client := teranode.NewClient(backend)

	key, err := as.NewKey(cfg.AerospikeNamespace, cfg.AerospikeSet, "demo-tx")
	if err != nil {
		log.Errorf("build key: %v", err)
		os.Exit(1)
	}

	txid := make([]byte, 32)
	txid[0] = 0xAB
	backend.Seed(key, map[string]any{
		"utxos": []any{txid},
	})

	spendingData := make([]byte, 36)
	spendingData[0] = 0xCD

	done := stats.Track("spend")
	resp, err := client.Spend(key, 0, txid, spendingData, false, false, 100, cfg.DefaultBlockHeightRetention)
	done()

	status := "OK"
	if err != nil {
		status = "ERROR"
		log.Errorf("spend failed: %v", err)
	}
	metrics.OperationsTotal.WithLabelValues("spend", status).Inc()

	log.Infof("spent utxo: %s", hex.EncodeToString(txid))
	log.Infof("response: %+v", resp)

	http.Handle("/metrics", promhttp.Handler())
	log.Infof("serving /metrics on :9090")
	if err := http.ListenAndServe(":9090", nil); err != nil {
		log.Errorf("metrics server: %v", err)
		os.Exit(1)
	}
}
