package layout_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markolybrx/layout"
)

func TestInterpretConcurrent(t *testing.T) {
	doc := `<LinearLayout android:orientation="vertical">
  <TextView android:text="1"/>
  <LinearLayout android:orientation="horizontal">
    <Button android:text="2"/>
    <EditText/>
  </LinearLayout>
  <ImageView/>
</LinearLayout>`

	want, err := layout.Interpret(doc)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}

	const goroutines = 8
	const iterations = 25

	errCh := make(chan string, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				got, err := layout.Interpret(doc)
				if err != nil {
					errCh <- err.Error()
					return
				}
				if diff := cmp.Diff(want, got); diff != "" {
					errCh <- diff
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for msg := range errCh {
		t.Fatalf("concurrent Interpret(): %s", msg)
	}
}
