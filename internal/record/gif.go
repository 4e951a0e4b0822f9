// Package record captures braille canvas frames and encodes them as an
// animated GIF.
package record

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/tomaspre/physviz/internal/stage"
)

const (
	charW = 8
	charH = 16
)

// Recorder accumulates captured frames until Save.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder { return &Recorder{} }

// Active reports whether anything has been captured yet.
func (r *Recorder) Active() bool { return len(r.frames) > 0 }

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Reset drops all captured frames.
func (r *Recorder) Reset() { r.frames = nil }

// Capture renders one canvas into a black-and-white frame. Each braille
// cell becomes a charW x charH block, each dot a 4x4 patch inside it.
func (r *Recorder) Capture(c *stage.Canvas) {
	if c == nil {
		return
	}
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	dotW, dotH := charW/2, charH/4
	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if !c.On(x, y) {
				continue
			}
			baseX := (x / 2 * charW) + (x%2)*dotW
			baseY := (y / 4 * charH) + (y%4)*dotH
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(baseX+px, baseY+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save encodes the captured frames as a looping GIF at the given path.
func (r *Recorder) Save(path string, fps int) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("record: no frames captured")
	}
	if fps < 1 {
		fps = 30
	}
	delay := 100 / fps // hundredths of a second per frame
	if delay < 1 {
		delay = 1
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
