// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"eratos/internal/writers"
)

// label renders prefix styled for dst. Non-terminal writers get plain text.
func label(dst io.Writer, prefix, color string) string {
	r := lipgloss.NewRenderer(dst)
	return r.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(prefix)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{label(dst, "WARN:", "9")}, a...)...)
}

func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{label(dst, "error:", "9")}, a...)...)
}

// Headerf prints a bold heading unless quiet.
func Headerf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	r := lipgloss.NewRenderer(dst)
	_, _ = fmt.Fprintln(dst, r.NewStyle().Bold(true).Render(fmt.Sprintf(format, a...)))
}

// ExitCode maps a write/flush error to a process exit code: 0 for success or
// a consumer that hung up, 3 otherwise (reported via Errorf).
func ExitCode(err error, stderr io.Writer) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return 0
	}
	Errorf(stderr, "%v", err)
	return 3
}

// Statusf prints a progress line unless quiet.
func Statusf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
