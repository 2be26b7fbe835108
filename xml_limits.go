package layout

import (
	"cmp"
	"fmt"

	"github.com/markolybrx/layout/internal/layoutxml"
)

const (
	defaultXMLMaxDepth = 256
	defaultXMLMaxNodes = 100_000
	defaultXMLMaxAttrs = 256
	defaultXMLMaxBytes = 4 << 20
)

func resolveXMLParseLimits(maxDepth, maxNodes, maxAttrs, maxBytes int) (layoutxml.Limits, error) {
	if maxDepth < 0 {
		return layoutxml.Limits{}, fmt.Errorf("xml max depth must be >= 0")
	}
	if maxNodes < 0 {
		return layoutxml.Limits{}, fmt.Errorf("xml max nodes must be >= 0")
	}
	if maxAttrs < 0 {
		return layoutxml.Limits{}, fmt.Errorf("xml max attrs must be >= 0")
	}
	if maxBytes < 0 {
		return layoutxml.Limits{}, fmt.Errorf("xml max bytes must be >= 0")
	}
	return layoutxml.Limits{
		MaxDepth: defaultXMLLimit(maxDepth, defaultXMLMaxDepth),
		MaxNodes: defaultXMLLimit(maxNodes, defaultXMLMaxNodes),
		MaxAttrs: defaultXMLLimit(maxAttrs, defaultXMLMaxAttrs),
		MaxBytes: defaultXMLLimit(maxBytes, defaultXMLMaxBytes),
	}, nil
}

func defaultXMLLimit(value, fallback int) int {
	return cmp.Or(value, fallback)
}
