// Package render writes network listings, either as plain lines or styled
// for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/socialgraph/pkg/config"
	"github.com/dd0wney/socialgraph/pkg/network"
)

// Renderer writes a snapshot of the network.
type Renderer interface {
	Render(w io.Writer, entries []network.Entry) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, entries []network.Entry) error

func (f RendererFunc) Render(w io.Writer, entries []network.Entry) error {
	return f(w, entries)
}

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	friendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	emptyStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#666666"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// New returns the renderer for a config output style.
func New(style string) (Renderer, error) {
	switch style {
	case config.StylePlain, "":
		return RendererFunc(Plain), nil
	case config.StyleStyled:
		return RendererFunc(Styled), nil
	default:
		return nil, fmt.Errorf("unknown output style %q", style)
	}
}

// Plain writes "{name} is friends with: {friends}" per entry.
func Plain(w io.Writer, entries []network.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// Styled writes the same listing with terminal colours. Names are padded so
// friend lists line up.
func Styled(w io.Writer, entries []network.Entry) error {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Name))
	}

	sep := separatorStyle.Render(" is friends with: ")
	for _, e := range entries {
		name := nameStyle.Width(width).Render(e.Name)

		friends := emptyStyle.Render("(no friends)")
		if len(e.Friends) > 0 {
			styled := make([]string, len(e.Friends))
			for i, f := range e.Friends {
				styled[i] = friendStyle.Render(f)
			}
			friends = strings.Join(styled, separatorStyle.Render(", "))
		}

		if _, err := fmt.Fprintln(w, name+sep+friends); err != nil {
			return err
		}
	}
	return nil
}
