// Package store holds gesture bindings parsed from the configuration file.
// It is the single source of truth the gesture matcher queries, and it is
// safe to repopulate concurrently with reads: the loader clears and refills
// it on every configuration reload.
package store
