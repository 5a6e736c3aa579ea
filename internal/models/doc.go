// Package models defines the domain entities of the InsightBoard dashboard.
//
// The package contains two categories of types:
//
// 1. Persisted records: JSON values stored through the key-value port
//   - [VideoRecord] : normalized statistics for one YouTube video
//   - [Account] : a registered account, carrying the bcrypt password hash
//
// 2. Projections: values derived from persisted records and never stored on their own
//   - [User] : the public projection of an [Account], safe to hand to callers and to persist as a session
//   - [Engagement] : like and comment rates computed from a [VideoRecord]
package models
