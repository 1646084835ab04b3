package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStatusClass(t *testing.T) {
	cases := map[string]string{
		"OPEN":        "open",
		"Success":     "success",
		"FAILED":      "failed",
		"INPLUS":      "",
		"IN_PROGRESS": "",
		"":            "",
	}
	for status, expected := range cases {
		if got := StatusClass(status); got != expected {
			t.Errorf("StatusClass(%q): expected %q, got %q", status, expected, got)
		}
	}
}

func TestMissionDecode(t *testing.T) {
	body := `{"id":1,"name":"Recon Alpha","status":"OPEN","crew_count":4,"created_at":"2024-01-05"}`

	var m Mission
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("failed to decode mission: %v", err)
	}

	if m.Name != "Recon Alpha" {
		t.Fatalf("expected name Recon Alpha, got %s", m.Name)
	}
	if m.Description != nil {
		t.Fatalf("expected absent description, got %q", *m.Description)
	}
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !m.CreatedAt.Equal(want) {
		t.Fatalf("expected created_at %v, got %v", want, m.CreatedAt.Time)
	}
}

func TestTimestampDecode_NaiveDateTime(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-03-09T17:45:12.123456"`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 9 || ts.Hour() != 17 {
		t.Fatalf("unexpected timestamp %v", ts.Time)
	}
}

func TestTimestampDecode_Invalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected error for unrecognised timestamp")
	}
}

func TestMissionFilterQuery(t *testing.T) {
	q := MissionFilter{Name: "recon", Status: "OPEN", OwnedBy: 7}.Query()

	if q.Encode() != "name=recon&owned_by=7&status=OPEN" {
		t.Fatalf("unexpected query %q", q.Encode())
	}
}
