// Package store provides SQLite-backed durable storage for learning
// session logs.
//
// The store is an append-only log with two tables:
//   - Sessions: one row per learning session (game content key, observed
//     player, update mode)
//   - Rounds: one row per observation, carrying the observed profile and
//     the belief snapshot after the update
//
// Ordering uses the round number, never timestamps, so a stored trajectory
// replays deterministically regardless of wall time. Belief snapshots are
// stored as canonical JSON with weights rendered as fixed-precision decimal
// strings; floats never enter hashed or stored payloads directly.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// The core packages never import this package; persistence is an outer
// concern of the CLI and the experiment harness.
package store
