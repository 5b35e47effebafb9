package utxoengine

// The host's driver is free to represent integers, lists, and maps however
// its own wire format prefers (the Aerospike client, for instance, returns
// int64 and map[interface{}]interface{}). These helpers normalise the
// handful of shapes the engine actually needs to read or write, and are the
// only place that type-switches on a bin's concrete Go type.

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asBytes(v any) ([]byte, bool) {
	b, ok := v.([]byte)
	return b, ok
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []int64:
		out := make([]any, len(l))
		for i, n := range l {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

// asGenericMap normalises both map[string]any and map[any]any (the shape an
// Aerospike-style driver returns) into the latter, which the engine treats
// as its canonical in-memory map representation.
func asGenericMap(v any) (map[any]any, bool) {
	switch m := v.(type) {
	case map[any]any:
		return m, true
	case map[string]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}

func isNilOrAbsent(v any) bool {
	return v == nil
}

// intKey renders an integer offset the same way regardless of which
// concrete integer type a map's keys were stored as, so lookups by offset
// don't miss due to int64-vs-int mismatches.
func intKey(m map[any]any, key int64) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	if v, ok := m[int(key)]; ok {
		return v, true
	}
	return nil, false
}

func setIntKey(m map[any]any, key, value int64) {
	m[key] = value
}
