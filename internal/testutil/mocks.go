// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/focustree/internal/domain"
)

// MockSnapshotRepository is a test double for domain.SnapshotRepository.
type MockSnapshotRepository struct {
	Snapshot  *domain.Snapshot // Stored snapshot (nil = not found)
	LoadErr   error            // Returned by Load when set
	SaveErr   error            // Returned by Save when set
	Location  string
	SaveCount int
}

// NewMockSnapshotRepository creates an empty repository.
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{Location: "mock://task_tree.json"}
}

// Load returns the stored snapshot.
func (m *MockSnapshotRepository) Load() (*domain.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return m.Snapshot, nil
}

// Save stores the snapshot.
func (m *MockSnapshotRepository) Save(s *domain.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshot = s
	m.LoadErr = nil
	m.SaveCount++
	return nil
}

// Path returns the configured location.
func (m *MockSnapshotRepository) Path() string {
	return m.Location
}

// MockRecoveryPolicy is a test double for domain.RecoveryPolicy.
type MockRecoveryPolicy struct {
	Err    error
	Choice domain.RecoveryChoice
	Causes []error
}

// Decide records the cause and returns the configured choice.
func (m *MockRecoveryPolicy) Decide(_ string, cause error) (domain.RecoveryChoice, error) {
	m.Causes = append(m.Causes, cause)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Choice, nil
}

// SequentialIDs generates "id-1", "id-2", ... for deterministic tests.
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID returns the next ID.
func (s *SequentialIDs) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// Ensure mocks implement their interfaces.
var (
	_ domain.SnapshotRepository = (*MockSnapshotRepository)(nil)
	_ domain.RecoveryPolicy     = (*MockRecoveryPolicy)(nil)
	_ domain.IDGenerator        = (*SequentialIDs)(nil)
)
