package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/jarvis-go/internal/ports"
)

// Prompter implements SavePrompter using stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Enabled indicates the prompter is interactive.
func (p *Prompter) Enabled() bool {
	return true
}

// AskSavePath asks where to store a captured image. Blank input accepts the
// default; "cancel" or "no" returns an empty path, which callers treat as a
// cancelled capture.
func (p *Prompter) AskSavePath(defaultPath string) (string, error) {
	fmt.Fprintf(p.out, "Save to [%s]: ", defaultPath)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return defaultPath, nil
	case "cancel", "no", "n":
		return "", nil
	}
	return line, nil
}

var _ ports.SavePrompter = (*Prompter)(nil)
