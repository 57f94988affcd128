// Package kvstore provides the durable string-keyed persistence substrate
// the planner reads and writes through. Values are opaque strings; callers
// layer their own serialization on top.
package kvstore

// Store is a synchronous string-keyed key-value store
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value
	Set(key, value string) error
	// Remove deletes key; removing an absent key is not an error
	Remove(key string) error
	Close() error
}
