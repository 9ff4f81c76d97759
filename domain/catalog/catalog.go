// Package catalog holds the versioned instrument reference data: the
// question bank, ray and subfacet metadata, archetype pairings, practice
// tools, the executive signal catalog, and every numeric threshold the
// scoring engine reads. Nothing in this package depends on runtime state.
package catalog

import "sync"

var (
	defaultBankOnce sync.Once
	defaultBank     *Bank
)

// Default returns the process-wide bank instance. The bank is immutable
// after construction, so sharing it across goroutines is safe.
func Default() *Bank {
	defaultBankOnce.Do(func() {
		defaultBank = BuildBank()
	})
	return defaultBank
}
