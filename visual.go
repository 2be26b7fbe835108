package layout

import "fmt"

// Kind classifies a VisualNode.
type Kind uint8

const (
	// KindContainer is the fallback for any tag that matches no widget rule.
	KindContainer Kind = iota
	KindButton
	KindText
	KindImage
	KindInput
)

var kindNames = [...]string{
	KindContainer: "Container",
	KindButton:    "Button",
	KindText:      "Text",
	KindImage:     "Image",
	KindInput:     "Input",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsLeaf reports whether nodes of this kind never carry children.
func (k Kind) IsLeaf() bool {
	return k != KindContainer
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("marshal kind: unknown kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unmarshal kind: unknown kind %q", text)
}

// Dimension is a resolved width or height.
type Dimension uint8

const (
	WrapContent Dimension = iota
	FillParent
)

func (d Dimension) String() string {
	if d == FillParent {
		return "fill-parent"
	}
	return "wrap-content"
}

func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dimension) UnmarshalText(text []byte) error {
	switch string(text) {
	case "fill-parent":
		*d = FillParent
	case "wrap-content":
		*d = WrapContent
	default:
		return fmt.Errorf("unmarshal dimension: unknown value %q", text)
	}
	return nil
}

// Orientation is the main axis a container lays its children along.
type Orientation uint8

const (
	Column Orientation = iota
	Row
)

func (o Orientation) String() string {
	if o == Row {
		return "row"
	}
	return "column"
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row":
		*o = Row
	case "column":
		*o = Column
	default:
		return fmt.Errorf("unmarshal orientation: unknown value %q", text)
	}
	return nil
}

// NoColor marks an absent or non-literal color.
const NoColor = "none"

// Box holds the resolved layout parameters of a node.
type Box struct {
	Width       Dimension   `json:"width" yaml:"width"`
	Height      Dimension   `json:"height" yaml:"height"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Padding     int         `json:"padding" yaml:"padding"`
	// Centered is set when the gravity value mentions "center" anywhere.
	Centered   bool   `json:"centered" yaml:"centered"`
	Background string `json:"background" yaml:"background"`
	MinWidth   int    `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
	MinHeight  int    `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
}

// TextStyle carries the text attributes of Button, Text and Input nodes.
// A zero Size means the host default.
type TextStyle struct {
	Color string `json:"color" yaml:"color"`
	Size  int    `json:"size" yaml:"size"`
}

// VisualNode is one renderable element of an interpreted layout.
type VisualNode struct {
	Kind     Kind          `json:"kind" yaml:"kind"`
	Tag      string        `json:"tag" yaml:"tag"`
	Box      Box           `json:"box" yaml:"box"`
	Content  string        `json:"content,omitempty" yaml:"content,omitempty"`
	Style    *TextStyle    `json:"style,omitempty" yaml:"style,omitempty"`
	Children []*VisualNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn skips the node's children.
func (n *VisualNode) Walk(fn func(node *VisualNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *VisualNode) walk(fn func(node *VisualNode, depth int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *VisualNode) Count() int {
	count := 0
	n.Walk(func(*VisualNode, int) bool {
		count++
		return true
	})
	return count
}
