package layoutxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	layouterrors "github.com/markolybrx/layout/errors"
)

// Limits bounds the work a single parse may perform. Zero fields are unlimited.
type Limits struct {
	MaxDepth int
	MaxNodes int
	MaxAttrs int
	MaxBytes int
}

var errInputTooLarge = errors.New("input too large")

// cappedReader fails with errInputTooLarge once more than n bytes are read.
type cappedReader struct {
	r io.Reader
	n int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.n < 0 {
		return 0, errInputTooLarge
	}
	if c.n < int64(len(p)) {
		p = p[:c.n+1]
	}
	n, err := c.r.Read(p)
	c.n -= int64(n)
	if c.n < 0 {
		return n, errInputTooLarge
	}
	return n, err
}

// Parse builds the layout element tree from XML input.
// Any syntax error is reported as an ErrMalformed ParseError; exceeding a
// limit is reported as ErrLimitExceeded. No partial tree is ever returned.
func Parse(r io.Reader, limits Limits) (*Element, error) {
	if limits.MaxBytes > 0 {
		r = &cappedReader{r: r, n: int64(limits.MaxBytes)}
	}
	decoder := xml.NewDecoder(r)
	decoder.Strict = true

	var stack []*element
	var root *element
	rootClosed := false
	atStart := true
	sawDoctype := false
	nodes := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tokenError(decoder, err, limits)
		}
		first := atStart
		atStart = false

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, malformedAt(decoder, "unexpected element %s after document end", t.Name.Local)
			}
			nodes++
			if limits.MaxNodes > 0 && nodes > limits.MaxNodes {
				return nil, limitAt(decoder, "max nodes %d exceeded", limits.MaxNodes)
			}
			if limits.MaxDepth > 0 && len(stack)+1 > limits.MaxDepth {
				return nil, limitAt(decoder, "max depth %d exceeded", limits.MaxDepth)
			}
			if limits.MaxAttrs > 0 && len(t.Attr) > limits.MaxAttrs {
				return nil, limitAt(decoder, "max attributes %d exceeded on %s", limits.MaxAttrs, t.Name.Local)
			}
			attrs, dup := convertAttrs(t.Attr)
			if dup != "" {
				return nil, malformedAt(decoder, "duplicate attribute %s on %s", dup, t.Name.Local)
			}
			elem := &element{Element: Element{
				local: t.Name.Local,
				attrs: attrs,
			}}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.kids = append(parent.kids, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 && !isIgnorableOutsideRoot(string(t)) {
				return nil, malformedAt(decoder, "unexpected character data outside root element")
			}
			if first && strings.Trim(string(t), "\uFEFF") == "" {
				atStart = true
			}

		case xml.ProcInst:
			if strings.EqualFold(t.Target, "xml") && !first {
				return nil, malformedAt(decoder, "xml declaration must start the document")
			}

		case xml.Directive:
			if root != nil {
				return nil, malformedAt(decoder, "unexpected directive after root element start")
			}
			if isDoctype(t) {
				if sawDoctype {
					return nil, malformedAt(decoder, "duplicate DOCTYPE declaration")
				}
				sawDoctype = true
			}
		}
	}

	if root == nil {
		return nil, layouterrors.NewParseError(layouterrors.ErrMalformed, "document has no root element")
	}
	if len(stack) > 0 {
		return nil, malformedAt(decoder, "unexpected EOF")
	}

	return root.freeze(), nil
}

// element is the mutable build-time form of Element.
type element struct {
	Element
	kids []*element
}

func (e *element) freeze() *Element {
	out := e.Element
	if len(e.kids) > 0 {
		out.children = make([]*Element, len(e.kids))
		for i, kid := range e.kids {
			out.children[i] = kid.freeze()
		}
	}
	return &out
}

func tokenError(decoder *xml.Decoder, err error, limits Limits) error {
	if errors.Is(err, errInputTooLarge) {
		return limitAt(decoder, "max input size %d bytes exceeded", limits.MaxBytes)
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, column := decoder.InputPos()
		if syntaxErr.Line > 0 {
			line = syntaxErr.Line
		}
		return layouterrors.NewParseError(layouterrors.ErrMalformed, syntaxErr.Msg).At(line, column)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return malformedAt(decoder, "unexpected EOF")
	}
	return fmt.Errorf("read layout: %w", err)
}

func malformedAt(decoder *xml.Decoder, format string, args ...any) error {
	line, column := decoder.InputPos()
	return layouterrors.NewParseErrorf(layouterrors.ErrMalformed, format, args...).At(line, column)
}

func limitAt(decoder *xml.Decoder, format string, args ...any) error {
	line, column := decoder.InputPos()
	return layouterrors.NewParseErrorf(layouterrors.ErrLimitExceeded, format, args...).At(line, column)
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isDoctype(d xml.Directive) bool {
	return strings.HasPrefix(string(d), "DOCTYPE")
}

// convertAttrs copies the attributes of a start tag. The second result names
// the first attribute that repeats an earlier (namespace, local) pair.
func convertAttrs(xmlAttrs []xml.Attr) ([]Attr, string) {
	attrs := make([]Attr, 0, len(xmlAttrs))
	seen := make(map[xml.Name]struct{}, len(xmlAttrs))
	for _, a := range xmlAttrs {
		space := a.Name.Space
		if space == "xmlns" || (space == "" && a.Name.Local == "xmlns") {
			space = XMLNSNamespace
		}
		key := xml.Name{Space: space, Local: a.Name.Local}
		if _, ok := seen[key]; ok {
			if space == "" {
				return nil, a.Name.Local
			}
			return nil, space + ":" + a.Name.Local
		}
		seen[key] = struct{}{}
		attrs = append(attrs, Attr{
			Space: space,
			Local: a.Name.Local,
			Value: a.Value,
		})
	}
	return attrs, ""
}
