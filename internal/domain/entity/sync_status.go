package entity

// SyncStatus tracks whether a row has been acknowledged by the sync worker.
type SyncStatus string

const (
	SyncStatusSynced        SyncStatus = "synced"
	SyncStatusPendingCreate SyncStatus = "pending_create"
	SyncStatusPendingUpdate SyncStatus = "pending_update"
	SyncStatusPendingDelete SyncStatus = "pending_delete"
)

// IsValid checks if the sync status is one of the known values.
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusSynced, SyncStatusPendingCreate, SyncStatusPendingUpdate, SyncStatusPendingDelete:
		return true
	default:
		return false
	}
}

// IsPending reports whether the row still waits for the sync worker.
func (s SyncStatus) IsPending() bool {
	return s == SyncStatusPendingCreate || s == SyncStatusPendingUpdate || s == SyncStatusPendingDelete
}

// String returns the string representation of the sync status.
func (s SyncStatus) String() string {
	return string(s)
}

// SyncEntityType names the kind of row a sync event refers to.
type SyncEntityType string

const (
	SyncEntityLocation   SyncEntityType = "location"
	SyncEntityCollection SyncEntityType = "collection"
)

// SyncEvent is published on every write and consumed by the sync worker.
type SyncEvent struct {
	EventID    string         `json:"event_id"`
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	EntityType SyncEntityType `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OwnerID    string         `json:"owner_id"`
	Status     SyncStatus     `json:"status"`
	OccurredAt int64          `json:"occurred_at"`
}
