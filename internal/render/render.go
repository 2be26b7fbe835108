// Package render paints interpreted layouts onto a terminal using lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markolybrx/layout"
)

// Options controls terminal painting.
type Options struct {
	// Width is the number of cells available to the root node.
	Width int
	// PaddingScale is the number of layout padding units per terminal cell.
	PaddingScale int
	// ImageCells is the height in rows of an image placeholder.
	ImageCells int
}

const (
	defaultWidth        = 80
	defaultPaddingScale = 8
	defaultImageCells   = 4
	largeTextSize       = 20
)

// DefaultOptions returns the painting defaults.
func DefaultOptions() Options {
	return Options{Width: defaultWidth, PaddingScale: defaultPaddingScale, ImageCells: defaultImageCells}
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.PaddingScale <= 0 {
		o.PaddingScale = defaultPaddingScale
	}
	if o.ImageCells <= 0 {
		o.ImageCells = defaultImageCells
	}
	return o
}

// Render paints node and its descendants into a string of terminal cells.
func Render(node *layout.VisualNode, opts Options) string {
	if node == nil {
		return ""
	}
	opts = opts.withDefaults()
	return paint(node, opts.Width, opts)
}

func paint(n *layout.VisualNode, avail int, opts Options) string {
	padH := max(n.Box.Padding/opts.PaddingScale, 0)
	padV := padH / 2
	inner := max(avail-2*padH, 1)

	var body string
	switch n.Kind {
	case layout.KindButton:
		body = buttonStyle(n.Style).MaxWidth(inner).Render(n.Content)
	case layout.KindText:
		body = textStyle(n.Style).MaxWidth(inner).Render(n.Content)
	case layout.KindInput:
		body = textStyle(n.Style).Faint(true).Underline(true).MaxWidth(inner).Render("[" + n.Content + "]")
	case layout.KindImage:
		body = imagePlaceholder(opts.ImageCells, inner)
	default:
		body = paintChildren(n, inner, opts)
	}

	style := lipgloss.NewStyle().Padding(padV, padH)
	if bg, ok := terminalColor(n.Box.Background); ok {
		style = style.Background(bg)
	}
	if n.Box.Centered {
		style = style.Align(lipgloss.Center)
	}
	if n.Box.Width == layout.FillParent {
		style = style.Width(avail)
	}
	return style.Render(body)
}

func paintChildren(n *layout.VisualNode, inner int, opts Options) string {
	if len(n.Children) == 0 {
		return ""
	}
	parts := make([]string, 0, len(n.Children))
	if n.Box.Orientation == layout.Row {
		share := max(inner/len(n.Children), 1)
		for _, child := range n.Children {
			parts = append(parts, paint(child, share, opts))
		}
		pos := lipgloss.Top
		if n.Box.Centered {
			pos = lipgloss.Center
		}
		return lipgloss.JoinHorizontal(pos, parts...)
	}
	for _, child := range n.Children {
		parts = append(parts, paint(child, inner, opts))
	}
	pos := lipgloss.Left
	if n.Box.Centered {
		pos = lipgloss.Center
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func textStyle(ts *layout.TextStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if ts == nil {
		return style
	}
	if fg, ok := terminalColor(ts.Color); ok {
		style = style.Foreground(fg)
	}
	if ts.Size >= largeTextSize {
		style = style.Bold(true)
	}
	return style
}

func buttonStyle(ts *layout.TextStyle) lipgloss.Style {
	return textStyle(ts).Border(lipgloss.RoundedBorder()).Padding(0, 1)
}

func imagePlaceholder(rows, width int) string {
	cols := min(rows*2, width)
	line := strings.Repeat("▒", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// terminalColor converts an Android color literal (#RGB, #ARGB, #RRGGBB or
// #AARRGGBB) into a lipgloss color, dropping the alpha channel.
func terminalColor(value string) (lipgloss.Color, bool) {
	hex, ok := normalizeHex(value)
	if !ok {
		return "", false
	}
	return lipgloss.Color(hex), true
}

func normalizeHex(value string) (string, bool) {
	if !strings.HasPrefix(value, "#") {
		return "", false
	}
	digits := value[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", false
		}
	}
	switch len(digits) {
	case 3:
		return "#" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), true
	case 4:
		return normalizeHex("#" + digits[1:])
	case 6:
		return value, true
	case 8:
		return "#" + digits[2:], true
	default:
		return "", false
	}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
