// Package kvstore provides the durable, synchronous, string-keyed storage
// substrate. Values are opaque strings; record sequences are stored as JSON
// arrays under a single key and always rewritten whole. Expected record counts
// are small (hundreds), and there is a single writer.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

var storeLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "kvstore").Logger()

// Store is the synchronous key-value contract shared by all backends.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists every stored key starting with prefix, in key order.
	Keys(prefix string) ([]string, error)
}

// ReadSeq reads and decodes the JSON array stored under key.
// A missing key reads as an empty sequence; a corrupt payload is an error.
func ReadSeq[T any](s Store, key string) ([]T, error) {
	raw, err := s.Get(key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	var seq []T
	if err := json.Unmarshal([]byte(raw), &seq); err != nil {
		storeLog.Warn().Str("key", key).Err(err).Msg("corrupt stored sequence")
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if seq == nil {
		seq = []T{}
	}
	return seq, nil
}

// WriteSeq serializes and persists the full sequence under key.
func WriteSeq[T any](s Store, key string, seq []T) error {
	if seq == nil {
		seq = []T{}
	}
	raw, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ReadJSON reads and decodes a single JSON object stored under key.
// ErrKeyNotFound passes through so callers can treat absence explicitly.
func ReadJSON[T any](s Store, key string, out *T) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		storeLog.Warn().Str("key", key).Err(err).Msg("corrupt stored object")
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// WriteJSON serializes and persists a single JSON object under key.
func WriteJSON[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
