package share

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestNewCommandSharer(t *testing.T) {
	if s := NewCommandSharer("   "); s != nil {
		t.Errorf("blank command should yield nil, got %+v", s)
	}

	s := NewCommandSharer("termux-share -a send")
	if s.Name != "termux-share" {
		t.Errorf("Name = %q", s.Name)
	}
	if len(s.Args) != 2 || s.Args[0] != "-a" || s.Args[1] != "send" {
		t.Errorf("Args = %v", s.Args)
	}
}

func TestCommandSharerMissingBinary(t *testing.T) {
	s := &CommandSharer{Name: "definitely-not-a-real-share-helper"}
	if err := s.Share(context.Background(), "hi"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}

	var nilSharer *CommandSharer
	if err := nilSharer.Share(context.Background(), "hi"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("nil sharer err = %v, want ErrUnavailable", err)
	}
}

func TestCommandSharerExitCodes(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	ok := &CommandSharer{Name: "sh", Args: []string{"-c", "cat >/dev/null"}}
	if err := ok.Share(context.Background(), "hello"); err != nil {
		t.Errorf("successful helper: %v", err)
	}

	cancel := &CommandSharer{Name: "sh", Args: []string{"-c", "exit 1"}}
	if err := cancel.Share(context.Background(), "hello"); !errors.Is(err, ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}
