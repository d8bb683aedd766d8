package catalog

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Errorf("Len = %d, want 12", c.Len())
	}
	for _, a := range c.All() {
		if a.SendableText() == "" {
			t.Errorf("asset %s has no sendable text", a.ID)
		}
		for _, tone := range a.Tone {
			if !ValidTone(tone) {
				t.Errorf("asset %s: tone %q not in vocabulary", a.ID, tone)
			}
		}
		for _, occ := range a.Occasion {
			if !ValidOccasion(occ) {
				t.Errorf("asset %s: occasion %q not in vocabulary", a.ID, occ)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	c := Default()

	tests := []struct {
		tone, occasion string
		want           []string
	}{
		{Any, Any, nil}, // checked by length below
		{"tender", Any, []string{"t3", "i1", "t9", "t10"}},
		{Any, "morning", []string{"t2", "t7"}},
		{"warm", "everyday", []string{"t1", "t6", "i2"}},
		{"inside", "milestone", []string{"t10"}},
		{"playful", "rainy", nil},
	}

	for _, tt := range tests {
		got := c.Filter(tt.tone, tt.occasion)
		if tt.tone == Any && tt.occasion == Any {
			if len(got) != c.Len() {
				t.Errorf("Filter(any, any) returned %d, want %d", len(got), c.Len())
			}
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%s, %s) = %d assets, want %d", tt.tone, tt.occasion, len(got), len(tt.want))
			continue
		}
		for i, a := range got {
			if a.ID != tt.want[i] {
				t.Errorf("Filter(%s, %s)[%d] = %s, want %s", tt.tone, tt.occasion, i, a.ID, tt.want[i])
			}
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].ID = "mutated"
	if a, _ := c.Get("t1"); a.ID != "t1" {
		t.Error("mutating All() result changed the catalog")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Asset{
		{ID: "a", Type: TypeText},
		{ID: "a", Type: TypePoem},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}

	_, err = New([]Asset{{ID: "b", Type: "video"}})
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("err = %v, want ErrInvalidType", err)
	}
}

func TestSendableText(t *testing.T) {
	c := Default()

	img, ok := c.Get("i2")
	if !ok {
		t.Fatal("i2 missing")
	}
	if img.SendableText() != img.Caption {
		t.Errorf("image sendable text = %q, want caption", img.SendableText())
	}

	txt, _ := c.Get("t1")
	if txt.SendableText() != txt.Text {
		t.Errorf("text sendable text = %q, want text", txt.SendableText())
	}
}

func TestReturnedAssetsDoNotAliasCatalog(t *testing.T) {
	c := Default()

	all := c.All()
	want := all[0].Tone[0]
	all[0].Tone[0] = "changed"
	all[0].Occasion[0] = "changed"

	got, _ := c.Get(all[0].ID)
	if got.Tone[0] != want || got.Occasion[0] == "changed" {
		t.Fatalf("All leaked tag slices: %+v", got)
	}

	got.Tone[0] = "changed"
	if again, _ := c.Get(got.ID); again.Tone[0] != want {
		t.Errorf("Get leaked tag slices: %+v", again)
	}

	filtered := c.Filter(want, Any)
	filtered[0].Tone[0] = "changed"
	if again, _ := c.Get(filtered[0].ID); slices.Contains(again.Tone, "changed") {
		t.Errorf("Filter leaked tag slices: %+v", again)
	}

	seed := []Asset{{ID: "x", Type: TypeText, Tone: []string{"warm"}, Occasion: []string{"night"}}}
	own, err := New(seed)
	if err != nil {
		t.Fatal(err)
	}
	seed[0].Tone[0] = "changed"
	if a, _ := own.Get("x"); a.Tone[0] != "warm" {
		t.Errorf("New kept caller's tag slice: %+v", a)
	}
}

func TestLookupSkipsUnknown(t *testing.T) {
	got := Default().Lookup([]string{"t2", "nope", "i1"})
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "i1" {
		t.Errorf("Lookup = %+v", got)
	}
}
