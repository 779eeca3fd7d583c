package commands

import (
	"testing"
)

func TestParseTaskID_Digits(t *testing.T) {
	id, err := ParseTaskID([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected 5, got %d", id)
	}
}

func TestParseTaskID_LeadingZeros(t *testing.T) {
	id, err := ParseTaskID([]string{"012"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 12 {
		t.Errorf("expected 12, got %d", id)
	}
}

func TestParseTaskID_Hash(t *testing.T) {
	id, err := ParseTaskID([]string{"#7", "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected 7, got %d", id)
	}
}

func TestParseTaskID_Required(t *testing.T) {
	_, err := ParseTaskID(nil)
	if err != ErrTaskIDRequired {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
	if taskIDMessage(err) != "error: task id required" {
		t.Errorf("unexpected message %q", taskIDMessage(err))
	}
}

func TestParseTaskID_Invalid(t *testing.T) {
	tests := []string{"0", "abc", "a1", "-1", "#", "1.5", "٣", "99999999999999999999"}
	for _, in := range tests {
		_, err := ParseTaskID([]string{in})
		if err == nil {
			t.Errorf("expected error for %q", in)
			continue
		}
		expected := "invalid task id: " + in
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	}
}
