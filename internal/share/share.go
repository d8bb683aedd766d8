// Package share defines the clipboard and native-share capabilities the
// session consumes, with host implementations.
package share

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	// ErrUnavailable means the capability does not exist on this host.
	ErrUnavailable = errors.New("share: capability unavailable")

	// ErrCancelled means the user dismissed the share sheet.
	ErrCancelled = errors.New("share: cancelled")
)

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Sharer hands text to a native share facility.
type Sharer interface {
	Share(ctx context.Context, text string) error
}

// SystemClipboard uses the OS clipboard via xclip/xsel/wl-copy, pbcopy or
// the Windows API.
type SystemClipboard struct{}

// WriteText copies text to the OS clipboard.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// CommandSharer pipes the text to an external share helper on stdin
// (for example "termux-share" or a desktop portal wrapper).
type CommandSharer struct {
	Name string
	Args []string
}

// NewCommandSharer parses a command line such as "termux-share -a send".
// An empty line yields nil: no native share on this host.
func NewCommandSharer(command string) *CommandSharer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	return &CommandSharer{Name: fields[0], Args: fields[1:]}
}

// Share runs the helper. A missing binary is ErrUnavailable; a non-zero exit
// is treated as the user cancelling.
func (c *CommandSharer) Share(ctx context.Context, text string) error {
	if c == nil {
		return ErrUnavailable
	}
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return ErrUnavailable
	}
	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ErrCancelled
		}
		return fmt.Errorf("run %s: %w", c.Name, err)
	}
	return nil
}
