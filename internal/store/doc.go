// Package store provides local persistence for SafeLens.
//
// Two interchangeable key-value backends implement domain.KVStore:
//   - FileKV writes one JSON file per key, replacing it atomically via a temp
//     file and rename.
//   - SQLiteKV keeps one row per key in a SQLite database (pure Go driver).
//
// On top of a backend sit the two record stores, each of which reads the whole
// value, mutates it in memory and writes the whole value back:
//   - ContactStore holds the single trusted contact under "contacts".
//   - Vault holds audio evidence under "vault", most recent first.
//
// All methods are safe for concurrent use within one process. Two processes
// sharing the same directory can still lose each other's updates.
package store
