package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// fitWidth shrinks width so a chart line fits the terminal behind w.
// Non-terminal writers keep the requested width.
func fitWidth(w io.Writer, width int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return width
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return width
	}
	// Room for the channel label and the percentage.
	return max(10, min(width, cols-12))
}

// readLine reads a single line, tolerating a missing trailing newline.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read colours: %w", err)
	}
	return strings.TrimSpace(line), nil
}
