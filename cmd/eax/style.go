package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	colorModeAuto   = "auto"
	colorModeAlways = "always"
	colorModeNever  = "never"
)

// Role names a styled element of the listing.
type Role int

const (
	RoleFolder Role = iota
	RoleExecutable
	RoleImportant
	RoleDirMarker
	RoleOwnerRights
	RoleRead
	RoleWrite
	RoleExec
	RoleSize
	RoleUser
	RoleGroup
	RoleDate
)

// Styler decorates text for a role. Implementations must return text
// unchanged apart from added escape sequences.
type Styler interface {
	Style(role Role, text string) string
}

type plainStyler struct{}

func (plainStyler) Style(_ Role, text string) string { return text }

type lipglossStyler struct {
	styles map[Role]lipgloss.Style
}

func newLipglossStyler(r *lipgloss.Renderer) *lipglossStyler {
	blue := lipgloss.Color("4")
	green := lipgloss.Color("2")
	yellow := lipgloss.Color("3")
	red := lipgloss.Color("1")

	// Names are shown verbatim, tabs included.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &lipglossStyler{
		styles: map[Role]lipgloss.Style{
			RoleFolder:      base.Foreground(blue).Bold(true),
			RoleExecutable:  base.Foreground(green),
			RoleImportant:   base.Foreground(yellow).Underline(true).Bold(true),
			RoleDirMarker:   base.Foreground(blue),
			RoleOwnerRights: base.Bold(true),
			RoleRead:        base.Foreground(yellow).Faint(true),
			RoleWrite:       base.Foreground(red),
			RoleExec:        base.Foreground(green),
			RoleSize:        base.Foreground(green).Bold(true),
			RoleUser:        base.Foreground(yellow).Bold(true),
			RoleGroup:       base.Foreground(yellow),
			RoleDate:        base.Foreground(blue),
		},
	}
}

func (s *lipglossStyler) Style(role Role, text string) string {
	style, ok := s.styles[role]
	if !ok || text == "" {
		return text
	}
	return style.Render(text)
}

func normalizeColorMode(mode string) (string, bool) {
	m := strings.TrimSpace(strings.ToLower(mode))
	switch m {
	case colorModeAuto, "":
		return colorModeAuto, true
	case colorModeAlways, "on", "force":
		return colorModeAlways, true
	case colorModeNever, "off", "none":
		return colorModeNever, true
	default:
		return "", false
	}
}

// newStyler picks a Styler for out. In auto mode colors are only used when
// out is a terminal; termenv then picks the profile and honors NO_COLOR.
func newStyler(mode string, out *os.File) (Styler, error) {
	normalized, ok := normalizeColorMode(mode)
	if !ok {
		return nil, fmt.Errorf("invalid color mode %q (expected auto, always, or never)", mode)
	}

	switch normalized {
	case colorModeNever:
		return plainStyler{}, nil
	case colorModeAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI)
		return newLipglossStyler(r), nil
	}

	if !term.IsTerminal(int(out.Fd())) {
		return plainStyler{}, nil
	}
	return newLipglossStyler(lipgloss.NewRenderer(out)), nil
}
