package record

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomaspre/physviz/internal/stage"
)

func TestCaptureMapsDotsToPixels(t *testing.T) {
	c := stage.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	r := NewRecorder()
	r.Capture(c)

	if r.Len() != 1 {
		t.Fatalf("expected 1 frame, got %d", r.Len())
	}
	img := r.frames[0]
	if img.Bounds().Dx() != 4*charW || img.Bounds().Dy() != 2*charH {
		t.Fatalf("unexpected frame size: %v", img.Bounds())
	}

	// Dot (0,0) lands in the top-left patch.
	if img.ColorIndexAt(0, 0) != 1 {
		t.Fatal("set dot not painted")
	}
	// Dot (3,5) is cell (1,1), right column, second dot row.
	px := 1*charW + charW/2
	py := 1*charH + charH/4
	if img.ColorIndexAt(px, py) != 1 {
		t.Fatal("set dot in second cell not painted")
	}
	// An untouched cell stays black.
	if img.ColorIndexAt(2*charW, 0) != 0 {
		t.Fatal("unset dot painted")
	}
}

func TestCaptureNilCanvas(t *testing.T) {
	r := NewRecorder()
	r.Capture(nil)
	if r.Active() {
		t.Fatal("nil canvas should not produce a frame")
	}
}

func TestSaveWritesDecodableGIF(t *testing.T) {
	c := stage.NewCanvas(4, 2)
	c.Line(0, 0, 7, 7)

	r := NewRecorder()
	r.Capture(c)
	c.Clear()
	r.Capture(c)

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := r.Save(path, 30); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 100/30 {
		t.Fatalf("unexpected frame delay: %d", anim.Delay[0])
	}
}

func TestSaveWithoutFrames(t *testing.T) {
	r := NewRecorder()
	if err := r.Save(filepath.Join(t.TempDir(), "out.gif"), 30); err == nil {
		t.Fatal("expected an error with no frames captured")
	}
}

func TestReset(t *testing.T) {
	c := stage.NewCanvas(2, 2)
	c.Set(1, 1)

	r := NewRecorder()
	r.Capture(c)
	r.Reset()
	if r.Active() || r.Len() != 0 {
		t.Fatal("reset should drop all frames")
	}
}
