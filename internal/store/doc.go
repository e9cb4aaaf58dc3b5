// Package store provides SQLite-backed persistence for calculator history.
//
// The store implements history.Store. The whole log is saved on every
// evaluation, so SaveHistory replaces all rows in one transaction rather
// than appending.
//
// # Ordering
//
// Rows carry an explicit position column (0 = newest). Loads ORDER BY
// position ASC, id ASC COLLATE BINARY so results never depend on rowid or
// insertion order.
//
// # Timestamps
//
// created_at is stored as RFC 3339 text with nanoseconds in UTC. Rows whose
// timestamp cannot be parsed fail the load rather than being skipped.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Schema upgrades are tracked with PRAGMA user_version.
package store
