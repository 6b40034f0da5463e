package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// RenderDispatch prints a dispatch result in a friendly, ASCII-only format.
func RenderDispatch(out io.Writer, result domain.DispatchResult) {
	if !result.Handled {
		fmt.Fprintln(out, "Nothing to do.")
		return
	}

	fmt.Fprintf(out, "Intent: %s\n", result.Intent)
	for _, entry := range result.Log {
		fmt.Fprintf(out, "  %s\n", entry)
	}
	if result.Spoken != "" {
		fmt.Fprintf(out, "\n%s\n", result.Spoken)
	}
}
