// Package settings holds the process-wide configuration a host can install
// via the CONFIGURE event of §6. The engine itself never reads it; in this
// module only cmd/utxoengine-demo loads and uses it, which keeps handler
// logic independent of configuration.
package settings

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// ModuleSettings is the configuration value a host can pass to
// internal/utxoengine.Update on a CONFIGURE event.
type ModuleSettings struct {
	// AerospikeNamespace is the namespace the UTXO set lives in.
	AerospikeNamespace string `env:"UTXO_AEROSPIKE_NAMESPACE" default:"test"`
	// AerospikeSet is the set name within AerospikeNamespace.
	AerospikeSet string `env:"UTXO_AEROSPIKE_SET" default:"utxos"`
	// UDFPackage is the Lua UDF package name registered on the cluster,
	// used by pkg/client when it drives the real Aerospike backend.
	UDFPackage string `env:"UTXO_UDF_PACKAGE" default:"teranode"`
	// DefaultBlockHeightRetention is used by callers that don't supply an
	// explicit retention argument to a handler.
	DefaultBlockHeightRetention int64 `env:"UTXO_BLOCK_HEIGHT_RETENTION" default:"288"`
}

// Load reads ModuleSettings from the environment, walking each field's
// `env` tag to find its variable and falling back to its `default` tag
// when that variable is unset. Only string and int64 fields are supported,
// the only kinds ModuleSettings currently declares.
func Load() (*ModuleSettings, error) {
	s := &ModuleSettings{}

	v := reflect.ValueOf(s).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envVar := field.Tag.Get("env")
		if envVar == "" {
			continue
		}

		raw, ok := os.LookupEnv(envVar)
		if !ok {
			raw = field.Tag.Get("default")
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s=%q: %w", envVar, raw, err)
			}
			fv.SetInt(n)
		default:
			return nil, fmt.Errorf("settings: unsupported field kind %s for %s", fv.Kind(), field.Name)
		}
	}

	return s, nil
}
