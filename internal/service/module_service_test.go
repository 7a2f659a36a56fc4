package service

import "testing"

func TestModuleList(t *testing.T) {
	s := NewModuleService()

	all := s.List("")
	if len(all) != 6 {
		t.Fatalf("Expected 6 modules in catalog, got %d", len(all))
	}

	science := s.List("science")
	if len(science) != 3 {
		t.Errorf("Expected 3 science modules (case-insensitive), got %d", len(science))
	}

	none := s.List("History")
	if len(none) != 0 {
		t.Errorf("Expected no history modules, got %d", len(none))
	}
}

func TestModuleGet(t *testing.T) {
	s := NewModuleService()

	m, err := s.Get("math-algebra")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Subject != "Mathematics" {
		t.Errorf("Expected Mathematics, got %s", m.Subject)
	}

	if _, err := s.Get("missing"); err != ErrModuleNotFound {
		t.Errorf("Expected ErrModuleNotFound, got %v", err)
	}
}
