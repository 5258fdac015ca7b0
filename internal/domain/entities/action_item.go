package entities

import (
	"time"
)

// ActionItemStatus constants
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
)

// ActionItemPriority constants
const (
	ActionItemPriorityLow    = "low"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
	ActionItemPriorityUrgent = "urgent"
)

// ActionItem is a single extracted task linked to its source Transcript via
// a HAS_ACTION_ITEM edge. Description, Status and Priority are always set;
// Owner, DueDate and Timestamp are carried through from extraction when the
// model supplies them. Extra holds any keys the model returned beyond the
// known schema so nothing is silently dropped.
type ActionItem struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	Owner       *string        `json:"owner,omitempty"`
	DueDate     *string        `json:"due_date,omitempty"`
	Timestamp   *string        `json:"timestamp,omitempty"` // mm:ss reference into the transcript
	Extra       map[string]any `json:"extra,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewActionItem creates an action item with the default status and priority.
// The ID is assigned by the caller after extraction; timestamps are stamped
// by the repository on write.
func NewActionItem(description string) *ActionItem {
	return &ActionItem{
		Description: description,
		Status:      ActionItemStatusPending,
		Priority:    ActionItemPriorityMedium,
	}
}
