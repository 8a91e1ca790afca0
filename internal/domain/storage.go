package domain

// KVStore is the durable local key-value store shared by all
// repositories, the process-side analogue of the browser's
// localStorage. Writes are last-writer-wins; there is no cross-process
// coordination.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the value, overwriting any prior one.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
