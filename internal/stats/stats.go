// Package stats wires github.com/ordishs/gocore's lightweight stat tree
// around the engine's dispatch entry point, the same per-call timer the
// teranode aerospike store builds with gocore.NewStat in sendStoreBatch.
package stats

import (
	"time"

	"github.com/ordishs/gocore"
)

var root = gocore.NewStat("utxoengine")

// Track starts a gocore sub-stat for the named operation and returns a
// function that records its duration when the operation finishes.
func Track(operation string) func() {
	start := time.Now()
	stat := root.NewStat(operation)
	return func() {
		stat.AddTime(start)
	}
}
