package layout

import "strings"

// Attributes holds the android-prefixed attributes of one element, keyed by
// local name.
type Attributes map[string]string

func (a Attributes) first(names ...string) string {
	for _, name := range names {
		if value, ok := a[name]; ok {
			return value
		}
	}
	return ""
}

// Recognized attribute local names.
const (
	AttrWidth       = "layout_width"
	AttrHeight      = "layout_height"
	AttrWidthAlias  = "width"
	AttrHeightAlias = "height"
	AttrOrientation = "orientation"
	AttrBackground  = "background"
	AttrPadding     = "padding"
	AttrGravity     = "gravity"
	AttrText        = "text"
	AttrHint        = "hint"
	AttrTextColor   = "textColor"
	AttrTextSize    = "textSize"
)

// ImageMinSize is the fixed minimum edge of an Image node; no asset is resolved.
const ImageMinSize = 100

// ResolveBox derives the box model of one element from its attributes.
// Missing or unrecognized values fall back to defaults and never fail.
func ResolveBox(attrs Attributes) Box {
	return Box{
		Width:       resolveDimension(attrs.first(AttrWidth, AttrWidthAlias)),
		Height:      resolveDimension(attrs.first(AttrHeight, AttrHeightAlias)),
		Orientation: resolveOrientation(attrs[AttrOrientation]),
		Padding:     leadingInt(attrs[AttrPadding]),
		Centered:    strings.Contains(attrs[AttrGravity], "center"),
		Background:  resolveColor(attrs[AttrBackground]),
	}
}

func resolveTextStyle(attrs Attributes) *TextStyle {
	return &TextStyle{
		Color: resolveColor(attrs[AttrTextColor]),
		Size:  leadingInt(attrs[AttrTextSize]),
	}
}

func resolveDimension(value string) Dimension {
	switch value {
	case "match_parent", "fill_parent", "fill-parent":
		return FillParent
	default:
		return WrapContent
	}
}

func resolveOrientation(value string) Orientation {
	if value == "horizontal" {
		return Row
	}
	return Column
}

func resolveColor(value string) string {
	if strings.HasPrefix(value, "#") {
		return value
	}
	return NoColor
}

// leadingInt parses the leading integer of a dimension value such as "16dp",
// ignoring leading whitespace and any trailing unit. Unparseable values are 0.
func leadingInt(value string) int {
	s := strings.TrimLeft(value, " \t\n\r")
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n > (maxLeadingInt-int(c-'0'))/10 {
			n = maxLeadingInt
			break
		}
		n = n*10 + int(c-'0')
	}
	if negative {
		return -n
	}
	return n
}

const maxLeadingInt = 1<<31 - 1
