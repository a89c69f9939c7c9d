package render

import (
	"errors"
	"testing"

	"github.com/htmlsmith-dev/htmlsmith/pkg/element"
)

var errTestWrite = errors.New("test write error")

type countingWriter struct {
	Writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.Writes++
	return len(p), nil
}

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

// errorPathTree covers every write site in the serializer: indentation,
// attributes in both forms, inline content, a force-closed wrapper whose
// children continue the opening line, a raw text leaf, and a void element.
func errorPathTree() *element.Element {
	return element.New("section").
		SetAttr("id", "s1").
		SetAttr("hidden", "").
		Append(
			element.New("p", "inline content"),
			element.New("div").ForceClose().Append(
				element.Text("raw line"),
				element.New("br"),
			),
		)
}

func TestRenderToWriterWriteErrorPaths(t *testing.T) {
	renderer := NewRenderer(Config{})
	node := errorPathTree()

	cw := &countingWriter{}
	if err := renderer.RenderToWriter(cw, node); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw.Writes == 0 {
		t.Fatal("expected writes")
	}

	for i := 1; i <= cw.Writes; i++ {
		fw := &failingWriter{FailAt: i}
		if err := renderer.RenderToWriter(fw, node); !errors.Is(err, errTestWrite) {
			t.Fatalf("failAt=%d: err=%v, want %v", i, err, errTestWrite)
		}
	}
}

func TestFprintWriteError(t *testing.T) {
	fw := &failingWriter{FailAt: 1}
	if err := Fprint(fw, element.New("div", "x")); !errors.Is(err, errTestWrite) {
		t.Fatalf("err=%v, want %v", err, errTestWrite)
	}
}
