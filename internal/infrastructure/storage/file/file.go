// Package file persists client state as a single JSON document on disk,
// optionally sealed with XChaCha20-Poly1305 under a key derived from a
// configured secret.
package file

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/resourcehub/portal/internal/core/domain"
)

const keyInfo = "portal-client-state"

// ErrCorrupt is returned when the state file can't be decoded or opened
// with the configured secret.
var ErrCorrupt = errors.New("state file is corrupt or sealed with another secret")

// Store is safe for concurrent use within one process.
type Store struct {
	path string
	key  []byte // nil when unencrypted

	mu   sync.Mutex
	data map[string][]byte
}

// Open loads the state file at path, creating nothing until the first write.
// A non-empty secret enables encryption.
func Open(path, secret string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file store: path is required")
	}

	s := &Store{path: path, data: make(map[string][]byte)}
	if secret != "" {
		key, err := deriveKey(secret)
		if err != nil {
			return nil, err
		}
		s.key = key
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func deriveKey(secret string) ([]byte, error) {
	h := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, fmt.Errorf("file store: derive key: %w", err)
	}
	return key, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("file store: read: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	if s.key != nil {
		if raw, err = s.open(raw); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("file store: %w: %v", ErrCorrupt, err)
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = append([]byte(nil), value...)
	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.flush(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

// Ping checks that the state directory is still reachable.
func (s *Store) Ping(context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("file store: %s is not a directory", dir)
	}
	return nil
}

// flush writes the whole document through a temp file and a rename so a
// crash never leaves a half-written state file. Callers hold s.mu.
func (s *Store) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("file store: encode: %w", err)
	}
	if s.key != nil {
		if raw, err = s.seal(raw); err != nil {
			return err
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("file store: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("file store: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("file store: rename: %w", err)
	}
	return nil
}

// seal returns nonce || ciphertext.
func (s *Store) seal(plain []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("file store: cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("file store: nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plain, []byte(keyInfo)), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("file store: cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("file store: %w", ErrCorrupt)
	}
	nonce, ct := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ct, []byte(keyInfo))
	if err != nil {
		return nil, fmt.Errorf("file store: %w", ErrCorrupt)
	}
	return plain, nil
}
