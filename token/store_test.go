package token

import "testing"

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get(Key); ok {
		t.Error("expected empty store")
	}

	m.Set(Key, "abc123")
	v, ok := m.Get(Key)
	if !ok || v != "abc123" {
		t.Errorf("expected abc123, got %q present=%v", v, ok)
	}

	m.Delete(Key)
	if _, ok := m.Get(Key); ok {
		t.Error("expected key to be deleted")
	}
}

func TestMemory_ZeroValue(t *testing.T) {
	var m Memory
	if _, ok := m.Get(Key); ok {
		t.Error("expected empty zero-value store")
	}
	m.Set(Key, "x")
	if v, _ := m.Get(Key); v != "x" {
		t.Errorf("expected x, got %q", v)
	}
}

func TestStatic(t *testing.T) {
	s := Static("tok")
	v, ok := s.Get("anything")
	if !ok || v != "tok" {
		t.Errorf("expected tok, got %q present=%v", v, ok)
	}

	empty := Static("")
	if _, ok := empty.Get(Key); ok {
		t.Error("expected empty static store to report absence")
	}
}
