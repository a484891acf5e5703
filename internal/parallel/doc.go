// Package parallel provides a small work-stealing worker pool used by
// the optimizer's error-cache build: a batch of independent, pure
// tasks distributed across a fixed number of goroutines, with a
// single barrier (Map) that blocks until every task has completed.
//
// The pool intentionally does not expose fire-and-forget submission or
// cancellation: the optimizer never needs them, since every operation
// outside the cache build is synchronous and nothing here is ever
// cancelled mid-flight.
package parallel
