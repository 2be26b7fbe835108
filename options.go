package layout

import (
	"fmt"

	"github.com/markolybrx/layout/internal/layoutxml"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// Options configures the parse limits applied while interpreting a layout.
// The zero value is valid and selects the defaults.
type Options struct {
	maxDepth intOption
	maxNodes intOption
	maxAttrs intOption
	maxBytes intOption
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithMaxDepth sets the element nesting limit (0 uses default).
func (o Options) WithMaxDepth(value int) Options {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxNodes sets the total element count limit (0 uses default).
func (o Options) WithMaxNodes(value int) Options {
	o.maxNodes = intOption{value: value, set: true}
	return o
}

// WithMaxAttrs sets the per-element attribute limit (0 uses default).
func (o Options) WithMaxAttrs(value int) Options {
	o.maxAttrs = intOption{value: value, set: true}
	return o
}

// WithMaxBytes sets the input size limit in bytes (0 uses default).
func (o Options) WithMaxBytes(value int) Options {
	o.maxBytes = intOption{value: value, set: true}
	return o
}

func (o Options) withDefaults() (layoutxml.Limits, error) {
	limits, err := resolveXMLParseLimits(
		o.maxDepth.resolved(),
		o.maxNodes.resolved(),
		o.maxAttrs.resolved(),
		o.maxBytes.resolved(),
	)
	if err != nil {
		return layoutxml.Limits{}, fmt.Errorf("xml limits: %w", err)
	}
	return limits, nil
}
