package layout

import "github.com/markolybrx/layout/internal/layoutxml"

// Default content for leaf widgets that omit their text or hint.
const (
	DefaultButtonText = "BUTTON"
	DefaultTextText   = "TextView"
	DefaultInputHint  = "Enter text..."
)

func transform(el *layoutxml.Element) *VisualNode {
	attrs := recognizedAttributes(el)
	kind := ClassifyTag(el.Name())
	node := &VisualNode{
		Kind: kind,
		Tag:  el.Name(),
		Box:  ResolveBox(attrs),
	}

	switch kind {
	case KindButton:
		node.Content = contentOr(attrs[AttrText], DefaultButtonText)
		node.Style = resolveTextStyle(attrs)
	case KindText:
		node.Content = contentOr(attrs[AttrText], DefaultTextText)
		node.Style = resolveTextStyle(attrs)
	case KindInput:
		node.Content = contentOr(attrs[AttrHint], DefaultInputHint)
		node.Style = resolveTextStyle(attrs)
	case KindImage:
		node.Box.Width = WrapContent
		node.Box.Height = WrapContent
		node.Box.MinWidth = ImageMinSize
		node.Box.MinHeight = ImageMinSize
	default:
		// Leaf kinds drop nested markup; only containers descend.
		children := el.Children()
		if len(children) > 0 {
			node.Children = make([]*VisualNode, 0, len(children))
			for _, child := range children {
				node.Children = append(node.Children, transform(child))
			}
		}
	}
	return node
}

func recognizedAttributes(el *layoutxml.Element) Attributes {
	attrs := make(Attributes)
	for _, a := range el.Attributes() {
		if a.InAndroidNamespace() {
			attrs[a.Local] = a.Value
		}
	}
	return attrs
}

func contentOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
