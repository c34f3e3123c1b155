package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"marketadmin/internal/domain/entity"
)

// Storage keys. The console persists exactly two values between runs:
// the bearer token and the serialized operator principal.
const (
	keyToken     = "token"
	keyPrincipal = "principal"
)

// KV is the minimal key-value persistence the store needs.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Store holds the operator's session. It is read once at startup,
// written by Login and cleared by Logout; nothing else mutates it.
type Store struct {
	mu        sync.RWMutex
	kv        KV
	token     string
	principal *entity.Admin
}

func NewStore(kv KV) *Store {
	s := &Store{kv: kv}
	s.restore()
	return s
}

// restore loads the persisted session. A missing or unparseable value
// leaves the store unauthenticated; stale garbage is not an error.
func (s *Store) restore() {
	token, ok := s.kv.Get(keyToken)
	if !ok || token == "" {
		return
	}

	raw, ok := s.kv.Get(keyPrincipal)
	if !ok || raw == "" {
		return
	}

	var principal entity.Admin
	if err := json.Unmarshal([]byte(raw), &principal); err != nil {
		return
	}

	s.token = token
	s.principal = &principal
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.principal != nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Principal() *entity.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Login persists the token and principal and makes them current.
func (s *Store) Login(token string, principal *entity.Admin) error {
	raw, err := json.Marshal(principal)
	if err != nil {
		return err
	}

	if err := s.kv.Set(keyToken, token); err != nil {
		return err
	}
	if err := s.kv.Set(keyPrincipal, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.principal = principal
	s.mu.Unlock()
	return nil
}

// Logout clears both persisted keys and the in-memory session.
func (s *Store) Logout() error {
	if err := s.kv.Delete(keyToken); err != nil {
		return err
	}
	if err := s.kv.Delete(keyPrincipal); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.principal = nil
	s.mu.Unlock()
	return nil
}

// FileKV persists keys as a flat JSON object in a single file. It fills
// the browser-local-storage role for the console binary.
type FileKV struct {
	mu   sync.Mutex
	path string
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) load() map[string]string {
	data := map[string]string{}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return data
	}
	// Corrupt files read as empty; the session layer treats that as
	// unauthenticated.
	_ = json.Unmarshal(raw, &data)
	return data
}

func (f *FileKV) save(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

func (f *FileKV) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.load()[key]
	return value, ok
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.load()
	data[key] = value
	return f.save(data)
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.load()
	delete(data, key)
	return f.save(data)
}
