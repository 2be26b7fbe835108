package layout

import "strings"

// KindRule maps a tag-name substring to the kind it selects.
type KindRule struct {
	Substring string
	Kind      Kind
}

// kindRules is evaluated in order; the first substring found anywhere in the
// tag name wins. MyButtonWidget is a Button, TextButtonView is a Button
// rather than Text, and EditText never reaches the TextView rule.
var kindRules = [...]KindRule{
	{Substring: "Button", Kind: KindButton},
	{Substring: "TextView", Kind: KindText},
	{Substring: "ImageView", Kind: KindImage},
	{Substring: "EditText", Kind: KindInput},
}

// KindRules returns a copy of the classification table in priority order.
func KindRules() []KindRule {
	out := make([]KindRule, len(kindRules))
	copy(out, kindRules[:])
	return out
}

// ClassifyTag returns the kind for a tag name, or KindContainer if no rule matches.
func ClassifyTag(name string) Kind {
	for _, rule := range kindRules {
		if strings.Contains(name, rule.Substring) {
			return rule.Kind
		}
	}
	return KindContainer
}
