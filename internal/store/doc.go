// Package store implements the per-function attribute metadata store.
//
// # Purpose
//
// The Store owns the arena of function handles, the per-module name scopes,
// and one attribute table per annotated function. Its Apply path consults
// the handler registry, evaluates marker arguments, invokes the bound
// handler, and records the computed value; its query path hands out
// defensive copies of the stored tables.
//
// # Concurrency Model
//
// All population is expected to happen in a serial definition phase, with
// reads only afterwards. The store still guards its maps with a single
// RWMutex so that concurrent hosts are safe; no finer-grained locking is
// warranted by the access pattern (write-once-per-pair, read-many). The
// user-supplied handler runs outside the lock, and the duplicate check is
// re-verified at write time.
//
// # Lifecycle
//
// Attribute tables are created lazily on the first successful application
// and are never torn down: the store does not track whether the function a
// handle was issued for still exists. That is a documented non-goal.
package store
