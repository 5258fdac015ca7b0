package extraction

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/transcript-insight/internal/domain/entities"
)

func TestNormalize_ValidList_DefaultsApplied(t *testing.T) {
	raw := `[
		{"action_item": "Send the report", "owner": "Alice", "due_date": null, "timestamp": "03:15"},
		{"action_item": "Book the venue"}
	]`

	items := Normalize(raw)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Description != "Send the report" {
		t.Errorf("unexpected description %q", first.Description)
	}
	if first.Status != entities.ActionItemStatusPending {
		t.Errorf("expected default status pending, got %q", first.Status)
	}
	if first.Priority != entities.ActionItemPriorityMedium {
		t.Errorf("expected default priority medium, got %q", first.Priority)
	}
	if first.Owner == nil || *first.Owner != "Alice" {
		t.Errorf("expected owner Alice, got %v", first.Owner)
	}
	if first.DueDate != nil {
		t.Errorf("expected nil due date for JSON null, got %v", *first.DueDate)
	}
	if first.Timestamp == nil || *first.Timestamp != "03:15" {
		t.Errorf("expected timestamp 03:15, got %v", first.Timestamp)
	}

	second := items[1]
	if second.Description != "Book the venue" {
		t.Errorf("unexpected description %q", second.Description)
	}
	if second.Owner != nil || second.DueDate != nil || second.Timestamp != nil {
		t.Errorf("expected absent optional fields to stay nil: %+v", second)
	}
}

func TestNormalize_ValidList_SuppliedValuesPreserved(t *testing.T) {
	raw := `[{"action_item": "Escalate outage", "status": "in_progress", "priority": "urgent"}]`

	items := Normalize(raw)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Status != "in_progress" {
		t.Errorf("expected supplied status preserved, got %q", items[0].Status)
	}
	if items[0].Priority != "urgent" {
		t.Errorf("expected supplied priority preserved, got %q", items[0].Priority)
	}
}

func TestNormalize_InvalidJSON_SingleVerbatimRecord(t *testing.T) {
	raw := "I couldn't find any action items in this transcript."

	items := Normalize(raw)
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(items))
	}
	if items[0].Description != raw {
		t.Errorf("expected description to equal input verbatim, got %q", items[0].Description)
	}
	if items[0].Status != entities.ActionItemStatusPending || items[0].Priority != entities.ActionItemPriorityMedium {
		t.Errorf("expected defaults on fallback record: %+v", items[0])
	}
}

func TestNormalize_NonListJSON_SingleWrappingRecord(t *testing.T) {
	for _, raw := range []string{
		`{"action_item": "a bare object"}`,
		`42`,
		`"just a string"`,
		`true`,
	} {
		items := Normalize(raw)
		if len(items) != 1 {
			t.Fatalf("input %q: expected exactly 1 record, got %d", raw, len(items))
		}
		if items[0].Description != raw {
			t.Errorf("input %q: expected wrapped raw text, got %q", raw, items[0].Description)
		}
	}
}

func TestNormalize_EmptyList(t *testing.T) {
	items := Normalize(`[]`)
	if len(items) != 0 {
		t.Fatalf("expected no records for an empty list, got %d", len(items))
	}
}

func TestNormalize_NonObjectElements_Coerced(t *testing.T) {
	items := Normalize(`["call Bob", 7]`)
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].Description != "call Bob" {
		t.Errorf("expected string element kept as description, got %q", items[0].Description)
	}
	if items[1].Description != "7" {
		t.Errorf("expected number element stringified, got %q", items[1].Description)
	}
	for _, item := range items {
		if item.Status != entities.ActionItemStatusPending || item.Priority != entities.ActionItemPriorityMedium {
			t.Errorf("expected defaults on coerced record: %+v", item)
		}
	}
}

func TestNormalize_ObjectWithoutDescription_FallsBackToJSON(t *testing.T) {
	items := Normalize(`[{"owner": "Carol"}]`)
	if len(items) != 1 {
		t.Fatalf("expected 1 record, got %d", len(items))
	}
	if items[0].Description != `{"owner":"Carol"}` {
		t.Errorf("expected element JSON as description, got %q", items[0].Description)
	}
	if items[0].Owner == nil || *items[0].Owner != "Carol" {
		t.Errorf("expected owner carried through, got %v", items[0].Owner)
	}
}

func TestNormalize_UnknownKeysKeptInExtra(t *testing.T) {
	items := Normalize(`[{"action_item": "Review budget", "confidence": 0.9}]`)
	if len(items) != 1 {
		t.Fatalf("expected 1 record, got %d", len(items))
	}
	if items[0].Extra == nil {
		t.Fatal("expected unknown keys in Extra")
	}
	if v, ok := items[0].Extra["confidence"].(float64); !ok || v != 0.9 {
		t.Errorf("expected confidence 0.9 in Extra, got %v", items[0].Extra["confidence"])
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`[{"action_item": "Send the report", "owner": "Alice"}]`,
		"not json",
		`{"action_item": "bare"}`,
		`[]`,
		`[1, "two", {"action_item": "three"}]`,
	}
	for _, raw := range inputs {
		a := Normalize(raw)
		b := Normalize(raw)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("input %q: repeated normalization differs:\n%+v\n%+v", raw, a, b)
		}
	}
}
