// Package history holds the calculation log shared by the engine, the
// SQLite store and the CLI.
//
// A Log is ordered newest first and never holds more than MaxRecords
// entries; adding to a full log evicts the oldest record. Persistence is
// delegated to a Store, which always receives the complete log so that
// implementations can replace their contents wholesale.
package history
