package layout_test

import (
	"fmt"

	"github.com/markolybrx/layout"
	"github.com/markolybrx/layout/errors"
)

func ExampleInterpret() {
	doc := `<LinearLayout android:orientation="vertical" android:gravity="center">
  <TextView android:text="Hello" />
  <Button />
</LinearLayout>`

	root, err := layout.Interpret(doc)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	root.Walk(func(n *layout.VisualNode, depth int) bool {
		fmt.Printf("%*s%s %q\n", depth*2, "", n.Kind, n.Content)
		return true
	})
	fmt.Println(root.Box.Orientation, root.Box.Centered)
	// Output:
	// Container ""
	//   Text "Hello"
	//   Button "BUTTON"
	// column true
}

func ExampleInterpret_malformed() {
	_, err := layout.Interpret(`<LinearLayout><Button></LinearLayout>`)
	fmt.Println(errors.IsMalformed(err))
	// Output: true
}
