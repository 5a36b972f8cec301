// Package letters is the persistence layer for journal letters.
//
// # Data Model
//
// One append-only table, letters(id, feeling, message, timestamp). The id is
// assigned by the engine and never reused; the timestamp is assigned here at
// insert time and stored as "YYYY-MM-DD HH:MM:SS" in the process's local zone.
// Letters are never updated or deleted.
//
// # Ordering
//
// Every listing is newest first: timestamp descending, ties broken by id
// descending, since several letters can share a second.
//
// # Concurrency
//
// SQLRepository is safe for concurrent use. Inserts are serialized inside the
// process so that id order and timestamp order agree; the engine's own
// locking covers other processes.
//
// # Errors
//
// A blank message yields common.ErrValidation. Every driver failure is
// wrapped with common.ErrStorage; nothing is retried.
package letters
