package layoutxml

// Common layout namespaces.
const (
	AndroidNamespace = "http://schemas.android.com/apk/res/android"
	AndroidPrefix    = "android"
	XMLNSNamespace   = "http://www.w3.org/2000/xmlns/"
)

// Element is a parsed layout element. Text, comments, processing
// instructions and directives are not retained.
type Element struct {
	local    string
	attrs    []Attr
	children []*Element
}

// Attr is a single attribute of an element.
type Attr struct {
	Space string
	Local string
	Value string
}

// InAndroidNamespace reports whether the attribute carries the android prefix,
// either bound to the resource namespace or left undeclared.
func (a Attr) InAndroidNamespace() bool {
	return a.Space == AndroidNamespace || a.Space == AndroidPrefix
}

// Name returns the element's local tag name.
func (e *Element) Name() string {
	return e.local
}

// Attributes returns a copy of the element attributes.
func (e *Element) Attributes() []Attr {
	result := make([]Attr, len(e.attrs))
	copy(result, e.attrs)
	return result
}

// Children returns a copy of the child element slice.
func (e *Element) Children() []*Element {
	result := make([]*Element, len(e.children))
	copy(result, e.children)
	return result
}
