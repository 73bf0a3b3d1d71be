// Package scope layers hierarchical, named test contexts on top of a host
// testing framework.
//
// The general model is:
//
// 1. A run is a tree of named scopes: test sets establish shared setup data
// for everything nested inside them, and test cases are the leaf scopes where
// that data can actually be read. The '/'-joined path of scope names is the
// full test name.
//
// 2. Scopes declare properties: named values that are either shared (one
// value reused by every case) or private (built fresh per case by a factory,
// optionally torn down by a finalizer). Values materialize lazily on first
// read and are discarded when the case ends.
//
// 3. A process-wide list of regular expressions decides, by unanchored match
// against the full test name, which cases execute. Excluded cases still
// enter and exit their scopes cleanly.
//
// Assertions inside bodies are delegated to the host framework: Context
// implements the TestingT interface used by testify's assert and require
// packages.
//
// Execution is strictly sequential and depth-first. A Context and everything
// reachable from it is not safe for concurrent use; one logical thread of
// test execution owns the run.
package scope
