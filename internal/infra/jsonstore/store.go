// Package jsonstore provides a JSON file-based implementation of SnapshotRepository.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/focustree/internal/domain"
)

// Store implements domain.SnapshotRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Ensure Store implements SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the snapshot file.
func (s *Store) Load() (*domain.Snapshot, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return Decode(content)
}

// Save writes the snapshot, replacing any previous content.
func (s *Store) Save(snap *domain.Snapshot) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := Encode(snap)
	if err != nil {
		return err
	}
	return s.write(content)
}

// rawNode mirrors domain.SnapshotNode with pointers so missing keys can be told
// apart from zero values.
type rawNode struct {
	ID       *string    `json:"id"`
	Name     *string    `json:"name"`
	Children *[]rawNode `json:"children"`
}

// Decode parses snapshot JSON. The top level must hold "root" (an object with
// "id", "name" and "children") and "current_task_id" (a string).
func Decode(content []byte) (*domain.Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, fmt.Errorf("parse snapshot: %v: %w", err, domain.ErrInvalidSnapshot)
	}

	rootRaw, ok := top["root"]
	if !ok {
		return nil, fmt.Errorf(`missing "root": %w`, domain.ErrInvalidSnapshot)
	}
	focusRaw, ok := top["current_task_id"]
	if !ok {
		return nil, fmt.Errorf(`missing "current_task_id": %w`, domain.ErrInvalidSnapshot)
	}

	var focusID string
	if !hasPrefix(focusRaw, '"') || json.Unmarshal(focusRaw, &focusID) != nil {
		return nil, fmt.Errorf(`"current_task_id" is not a string: %w`, domain.ErrInvalidSnapshot)
	}

	if !hasPrefix(rootRaw, '{') {
		return nil, fmt.Errorf(`"root" is not an object: %w`, domain.ErrInvalidSnapshot)
	}
	var root rawNode
	if err := json.Unmarshal(rootRaw, &root); err != nil {
		return nil, fmt.Errorf("parse root: %v: %w", err, domain.ErrInvalidSnapshot)
	}
	node, err := convertNode(&root, "root")
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{Root: node, CurrentTaskID: focusID}, nil
}

func convertNode(raw *rawNode, where string) (*domain.SnapshotNode, error) {
	if raw.Name == nil {
		return nil, fmt.Errorf(`%s: missing "name": %w`, where, domain.ErrInvalidSnapshot)
	}
	if raw.Children == nil {
		return nil, fmt.Errorf(`%s: missing "children": %w`, where, domain.ErrInvalidSnapshot)
	}
	if raw.ID == nil {
		return nil, fmt.Errorf(`%s: missing "id": %w`, where, domain.ErrInvalidSnapshot)
	}

	node := &domain.SnapshotNode{
		ID:       *raw.ID,
		Name:     *raw.Name,
		Children: make([]*domain.SnapshotNode, 0, len(*raw.Children)),
	}
	for i := range *raw.Children {
		child, err := convertNode(&(*raw.Children)[i], fmt.Sprintf("%s.children[%d]", where, i))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// hasPrefix reports whether the JSON value starts with c, which is enough to
// tell objects and strings from null and other kinds.
func hasPrefix(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}

// Encode renders the snapshot as indented JSON with a trailing newline.
func Encode(snap *domain.Snapshot) ([]byte, error) {
	if snap == nil || snap.Root == nil {
		return nil, errors.New("marshal snapshot: missing root")
	}
	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(content, '\n'), nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) write(content []byte) error {
	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
