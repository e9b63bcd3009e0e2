// Copyright 2026 Elasticsearch B.V.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Pair is one normalized (fiber identity, value) entry from a per-fiber map.
type Pair struct {
	FiberID int64
	Value   json.RawMessage
}

// Diagnostics counts entries the normalizer tolerated rather than failed on.
// It never aborts a run; callers that don't care pass nil.
type Diagnostics struct {
	SkippedEntries  int // pair-list elements that were not [key, value, ...] lists
	UnparseableKeys int // keys that could not be read as a fiber identity
}

func (d *Diagnostics) skipEntry() {
	if d != nil {
		d.SkippedEntries++
	}
}

func (d *Diagnostics) badKey() {
	if d != nil {
		d.UnparseableKeys++
	}
}

// Pairs normalizes a profiler v5 per-fiber map into ordered (fiberID, value)
// pairs. The wire encoding is ambiguous: the same field may arrive as an
// object keyed by fiber identity or as a list of [key, value] pairs. Source
// order is preserved in both forms. In list form, elements that are not
// two-or-more-element lists are dropped and recorded in diag when provided.
func Pairs(raw json.RawMessage, diag *Diagnostics) []Pair {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '{':
		return objectPairs(trimmed, diag)
	case '[':
		return listPairs(trimmed, diag)
	default:
		return nil
	}
}

// objectPairs walks the object token by token so that key order survives;
// decoding into a Go map would shuffle it and break first-encounter ordering
// downstream.
func objectPairs(raw []byte, diag *Diagnostics) []Pair {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil
	}
	var pairs []Pair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return pairs
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return pairs
		}
		id, ok := parseFiberKey(key)
		if !ok {
			diag.badKey()
			continue
		}
		pairs = append(pairs, Pair{FiberID: id, Value: value})
	}
	return pairs
}

func listPairs(raw []byte, diag *Diagnostics) []Pair {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	var pairs []Pair
	for _, elem := range elems {
		var kv []json.RawMessage
		if err := json.Unmarshal(elem, &kv); err != nil || len(kv) < 2 {
			diag.skipEntry()
			continue
		}
		id, ok := parseFiberID(kv[0])
		if !ok {
			diag.badKey()
			continue
		}
		pairs = append(pairs, Pair{FiberID: id, Value: kv[1]})
	}
	return pairs
}

// parseFiberID reads a fiber identity from a JSON number or a numeric
// string ("42" object keys and [42, ...] list keys both occur in the wild).
// Fractional values truncate toward zero.
func parseFiberID(raw json.RawMessage) (int64, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseFiberKey(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int64(f), true
	}
	return 0, false
}

func parseFiberKey(key string) (int64, bool) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return id, true
	}
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// Float reads a pair value as a float64 duration. Non-numeric values
// read as zero, which keeps a single bad entry from poisoning a commit.
func (p Pair) Float() float64 {
	var f float64
	if err := json.Unmarshal(p.Value, &f); err != nil {
		return 0
	}
	return f
}
