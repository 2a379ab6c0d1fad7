// Package output provides mode-aware rendering for CLI commands: styled
// text for terminals, machine-readable JSON for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto emits text, styled when the output writer is a terminal
	// and plain otherwise.
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Header  lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// PlainStyles returns an unstyled set for non-terminal output.
func PlainStyles() Styles {
	return Styles{}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer for the given writers and mode. In auto
// mode the styles are dropped when out is not a terminal, so piped and
// redirected output stays clean.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	styles := DefaultStyles()
	if mode == ModeAuto && !isTerminal(out) {
		styles = PlainStyles()
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: styles}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Styles returns the style set.
func (r *Renderer) Styles() Styles { return r.styles }

// Printf writes formatted text output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of text output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Success writes a success line.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render("✓ "+msg))
}

// Failure writes a failure line to the error writer.
func (r *Renderer) Failure(msg string) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
