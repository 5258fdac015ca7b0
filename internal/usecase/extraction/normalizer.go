package extraction

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
)

// Keys the extraction prompt asks the model to emit.
const (
	keyActionItem  = "action_item"
	keyDescription = "description"
	keyStatus      = "status"
	keyPriority    = "priority"
	keyOwner       = "owner"
	keyDueDate     = "due_date"
	keyTimestamp   = "timestamp"
)

// Normalize converts arbitrary model output into well-formed action-item
// records. It never fails: unparseable or non-list output degrades to a
// single catch-all item carrying the raw text, so an upload survives a model
// that ignores its formatting instructions.
//
// Normalize is deterministic; calling it twice on the same input yields
// structurally identical output.
func Normalize(raw string) []*entities.ActionItem {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []*entities.ActionItem{entities.NewActionItem(raw)}
	}

	list, ok := parsed.([]any)
	if !ok {
		return []*entities.ActionItem{entities.NewActionItem(raw)}
	}

	items := make([]*entities.ActionItem, 0, len(list))
	for _, element := range list {
		items = append(items, normalizeElement(element))
	}
	return items
}

func normalizeElement(element any) *entities.ActionItem {
	obj, ok := element.(map[string]any)
	if !ok {
		return entities.NewActionItem(stringify(element))
	}

	item := entities.NewActionItem(descriptionOf(obj))

	if s, ok := obj[keyStatus].(string); ok && s != "" {
		item.Status = s
	}
	if p, ok := obj[keyPriority].(string); ok && p != "" {
		item.Priority = p
	}
	item.Owner = optionalString(obj, keyOwner)
	item.DueDate = optionalString(obj, keyDueDate)
	item.Timestamp = optionalString(obj, keyTimestamp)

	for key, value := range obj {
		switch key {
		case keyActionItem, keyDescription, keyStatus, keyPriority, keyOwner, keyDueDate, keyTimestamp:
		default:
			if item.Extra == nil {
				item.Extra = make(map[string]any)
			}
			item.Extra[key] = value
		}
	}

	return item
}

// descriptionOf derives the required description: the model's action_item
// field, then an explicit description field, then the element's own JSON
// encoding as a last resort.
func descriptionOf(obj map[string]any) string {
	if s, ok := obj[keyActionItem].(string); ok && s != "" {
		return s
	}
	if s, ok := obj[keyDescription].(string); ok && s != "" {
		return s
	}
	return stringify(obj)
}

func optionalString(obj map[string]any, key string) *string {
	if s, ok := obj[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
