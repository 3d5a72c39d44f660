package forestbot

import "encoding/json"

// KVStore is the per-chat persistence collaborator.
type KVStore interface {
	Get(chatID int64, key string) (value string, ok bool, err error)
	Set(chatID int64, key, value string) error
	Delete(chatID int64, key string) error
}

// GetJSON is a convenience wrapper that unmarshals the stored value
// into T.
func GetJSON[T any](store KVStore, chatID int64, key string) (T, bool, error) {
	var zero T
	raw, ok, err := store.Get(chatID, key)
	if err != nil || !ok {
		return zero, ok, err
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// SetJSON is a convenience wrapper that marshals value and stores it.
func SetJSON[T any](store KVStore, chatID int64, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(chatID, key, string(raw))
}
