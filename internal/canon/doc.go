// Package canon produces canonical JSON and content-addressed keys for the
// posetal core types.
//
// Priority orders and action profiles are used as map keys throughout the
// learning engine (belief distributions, equilibrium caches), and belief
// trajectories are compared against golden files in tests. Both uses require
// byte-stable serialization: the same relation must hash to the same key on
// every run, on every platform.
//
// MarshalCanonical follows RFC 8785:
//   - object keys sorted by UTF-16 code units (not UTF-8 bytes)
//   - no HTML escaping (< > & stay literal)
//   - strings NFC-normalized at the serialization boundary
//   - no floats, no nulls (returns an error)
//
// Belief weights are floats and therefore never enter a hashed payload
// directly; callers format them as fixed-precision decimal strings first
// (see learning.Belief.Snapshot).
package canon
