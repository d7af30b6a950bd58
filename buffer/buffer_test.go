package buffer_test

import (
	"reflect"
	"testing"

	"github.com/torao/terp/buffer"
)

func TestPushAndView(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("ab"))
	b.Push([]rune("cd"))
	if got, want := b.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got := b.View(0); !reflect.DeepEqual(got, []rune("abcd")) {
		t.Errorf("View(0) = %q, want %q", string(got), "abcd")
	}
	if got := b.View(2); !reflect.DeepEqual(got, []rune("cd")) {
		t.Errorf("View(2) = %q, want %q", string(got), "cd")
	}
	if got := b.View(4); got != nil {
		t.Errorf("View(Len()) = %q, want nil", string(got))
	}
}

func TestAt(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("xyz"))
	if sym, ok := b.At(1); !ok || sym != 'y' {
		t.Errorf("At(1) = (%q, %v), want ('y', true)", sym, ok)
	}
	if _, ok := b.At(3); ok {
		t.Error("At(Len()) reported available")
	}
}

func TestRelease(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("abcdef"))
	b.Release(3)
	if got, want := b.Watermark(), 3; got != want {
		t.Errorf("Watermark() = %d, want %d", got, want)
	}
	if got := b.View(3); !reflect.DeepEqual(got, []rune("def")) {
		t.Errorf("View(3) after Release(3) = %q, want %q", string(got), "def")
	}
	if got, want := b.Len(), 6; got != want {
		t.Errorf("Len() after Release = %d, want %d (Len counts released symbols too)", got, want)
	}
}

func TestRelease_BeyondDataIsClamped(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("ab"))
	b.Release(100)
	if got, want := b.Watermark(), 2; got != want {
		t.Errorf("Watermark() = %d, want %d", got, want)
	}
	if got := b.View(2); got != nil {
		t.Errorf("View(Watermark()) = %q, want nil", string(got))
	}
}

func TestRelease_NoOpGoingBackward(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("abcdef"))
	b.Release(4)
	b.Release(2) // already behind the watermark; must not move it backward
	if got, want := b.Watermark(), 4; got != want {
		t.Errorf("Watermark() = %d, want %d", got, want)
	}
}

func TestViewBeforeWatermarkPanics(t *testing.T) {
	b := buffer.New[rune]()
	b.Push([]rune("abcdef"))
	b.Release(3)
	defer func() {
		if recover() == nil {
			t.Error("View before the watermark did not panic")
		}
	}()
	b.View(0)
}

func TestFinish(t *testing.T) {
	b := buffer.New[rune]()
	if b.Finished() {
		t.Error("new Buffer reports Finished")
	}
	b.Finish()
	if !b.Finished() {
		t.Error("Finish did not mark the Buffer finished")
	}
}
