// Package repositories implements persistence for accounts, sessions and saved videos.
//
// All state lives in a key-value substrate reached through the [KeyValue] port:
//   - [MemoryStore] : process-local map, used by tests and ephemeral runs
//   - [SQLiteStore] : durable adapter over the kv_entries table
//
// Three logical tables share the substrate, each value a JSON text document:
//   - "users" : array of [models.Account], owned by [UserStore]
//   - "user:<sessionKey>" : the [models.User] projection of a signed-in [Session]
//   - "videos_<userID>" : ordered array of [models.VideoRecord], owned by [VideoStore]
//
// Storage failures never escape [VideoStore]. Reads degrade to an empty list and writes
// are logged and dropped. A payload that fails to decode is never overwritten so it stays
// available for diagnosis.
package repositories
