package render

import (
	"fmt"
	"strings"

	"github.com/markolybrx/layout"
)

// Outline describes the tree one node per line, indented by depth.
func Outline(node *layout.VisualNode) string {
	var b strings.Builder
	node.Walk(func(n *layout.VisualNode, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Kind.String())
		if n.Tag != "" && n.Tag != n.Kind.String() {
			fmt.Fprintf(&b, " <%s>", n.Tag)
		}
		if n.Content != "" {
			fmt.Fprintf(&b, " %q", n.Content)
		}
		fmt.Fprintf(&b, " [%s]\n", describeBox(n.Box))
		return true
	})
	return b.String()
}

func describeBox(box layout.Box) string {
	parts := []string{box.Width.String() + "x" + box.Height.String(), box.Orientation.String()}
	if box.Padding != 0 {
		parts = append(parts, fmt.Sprintf("padding=%d", box.Padding))
	}
	if box.Centered {
		parts = append(parts, "centered")
	}
	if box.Background != layout.NoColor {
		parts = append(parts, "bg="+box.Background)
	}
	if box.MinWidth != 0 || box.MinHeight != 0 {
		parts = append(parts, fmt.Sprintf("min=%dx%d", box.MinWidth, box.MinHeight))
	}
	return strings.Join(parts, " ")
}
