package domain

// ChangeKind identifies the mutation behind a ChangeEvent.
type ChangeKind string

// Change kinds.
const (
	ChangeAdded     ChangeKind = "added"
	ChangeRenamed   ChangeKind = "renamed"
	ChangeCompleted ChangeKind = "completed"
	ChangeReset     ChangeKind = "reset"
)

// ChangeEvent is emitted after a mutation has been persisted.
type ChangeEvent struct {
	Kind      ChangeKind
	FocusID   string
	FocusName string
}
