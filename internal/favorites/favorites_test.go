package favorites

import (
	"encoding/json"
	"testing"
)

func TestToggle(t *testing.T) {
	var s Set

	s, added := s.Toggle("t1")
	if !added || !s.Contains("t1") {
		t.Fatalf("toggle on: added=%v set=%v", added, s)
	}

	s, _ = s.Toggle("i2")
	s, _ = s.Toggle("t3")

	before := s
	s, added = s.Toggle("i2")
	if added {
		t.Error("second toggle should remove")
	}
	if s.Contains("i2") {
		t.Error("i2 still present after removal")
	}
	if len(before) != 3 {
		t.Errorf("receiver mutated: %v", before)
	}

	want := []string{"t1", "t3"}
	if len(s) != len(want) {
		t.Fatalf("set = %v, want %v", s, want)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %s, want %s", i, s[i], want[i])
		}
	}
}

func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(Set{"t1", "i1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["t1","i1"]` {
		t.Errorf("json = %s", data)
	}
}
