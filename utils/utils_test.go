package utils

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestNewMatchID(t *testing.T) {
	date := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	id := NewMatchID("Lions FC", "tigers", date)

	if !strings.HasPrefix(id, "m_20250301_lions-fc_tigers_") {
		t.Errorf("unexpected id prefix: %s", id)
	}
	if other := NewMatchID("Lions FC", "tigers", date); other == id {
		t.Errorf("ids should differ, both %s", id)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("admin@league.org") {
		t.Error("admin@league.org should be valid")
	}
	if IsValidEmail("not-an-email") {
		t.Error("not-an-email should be invalid")
	}
}
