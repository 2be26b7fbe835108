package layout

import "testing"

func TestResolveBox(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  Box
	}{
		{
			name:  "defaults",
			attrs: nil,
			want:  Box{Width: WrapContent, Height: WrapContent, Orientation: Column, Background: NoColor},
		},
		{
			name:  "match parent",
			attrs: Attributes{AttrWidth: "match_parent", AttrHeight: "fill_parent"},
			want:  Box{Width: FillParent, Height: FillParent, Background: NoColor},
		},
		{
			name:  "short names",
			attrs: Attributes{AttrWidthAlias: "fill-parent", AttrHeightAlias: "wrap_content"},
			want:  Box{Width: FillParent, Height: WrapContent, Background: NoColor},
		},
		{
			name:  "layout name wins over alias",
			attrs: Attributes{AttrWidth: "wrap_content", AttrWidthAlias: "match_parent"},
			want:  Box{Width: WrapContent, Background: NoColor},
		},
		{
			name:  "literal size is wrap content",
			attrs: Attributes{AttrWidth: "120dp"},
			want:  Box{Width: WrapContent, Background: NoColor},
		},
		{
			name:  "horizontal",
			attrs: Attributes{AttrOrientation: "horizontal"},
			want:  Box{Orientation: Row, Background: NoColor},
		},
		{
			name:  "vertical",
			attrs: Attributes{AttrOrientation: "vertical"},
			want:  Box{Orientation: Column, Background: NoColor},
		},
		{
			name:  "background literal",
			attrs: Attributes{AttrBackground: "#FFF"},
			want:  Box{Background: "#FFF"},
		},
		{
			name:  "background resource",
			attrs: Attributes{AttrBackground: "@color/primary"},
			want:  Box{Background: NoColor},
		},
		{
			name:  "gravity center",
			attrs: Attributes{AttrGravity: "center"},
			want:  Box{Centered: true, Background: NoColor},
		},
		{
			name:  "gravity center vertical",
			attrs: Attributes{AttrGravity: "center_vertical"},
			want:  Box{Centered: true, Background: NoColor},
		},
		{
			name:  "gravity combined",
			attrs: Attributes{AttrGravity: "top|center_horizontal"},
			want:  Box{Centered: true, Background: NoColor},
		},
		{
			name:  "gravity start",
			attrs: Attributes{AttrGravity: "start"},
			want:  Box{Background: NoColor},
		},
		{
			name:  "padding",
			attrs: Attributes{AttrPadding: "16dp"},
			want:  Box{Padding: 16, Background: NoColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveBox(tt.attrs); got != tt.want {
				t.Fatalf("ResolveBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "16dp", want: 16},
		{in: "16", want: 16},
		{in: "8px", want: 8},
		{in: " 12sp", want: 12},
		{in: "12.5dp", want: 12},
		{in: "-4dp", want: -4},
		{in: "+3", want: 3},
		{in: "dp", want: 0},
		{in: "abc", want: 0},
		{in: "-", want: 0},
		{in: "@dimen/margin", want: 0},
		{in: "99999999999999999999dp", want: maxLeadingInt},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := leadingInt(tt.in); got != tt.want {
				t.Fatalf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
