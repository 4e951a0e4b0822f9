package stage

// Stage is the host-side rendering surface: a root scene-graph node, the
// current viewport size in braille cells, and the shared frame clock.
// Scenes parent their layers into Root and read the viewport through Size.
type Stage struct {
	root   *Node
	clock  *Clock
	width  int
	height int
}

func New(w, h int) *Stage {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Stage{
		root:   newNode("root", w, h),
		clock:  NewClock(),
		width:  w,
		height: h,
	}
}

// Root returns the node scenes parent their content into.
func (s *Stage) Root() *Node { return s.root }

// Clock returns the shared per-frame clock.
func (s *Stage) Clock() *Clock { return s.clock }

// Size returns the current viewport dimensions in cells, readable at any
// time.
func (s *Stage) Size() (w, h int) { return s.width, s.height }

// SetSize records a new viewport size and resizes the node tree. Scenes
// are told separately, via their Resize, that the viewport moved under
// them.
func (s *Stage) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.width = w
	s.height = h
	s.root.Resize(w, h)
}

// Render composites the visible node tree into a terminal string.
func (s *Stage) Render() string {
	out := NewCanvas(s.width, s.height)
	s.root.compositeInto(out)
	return out.String()
}

// Snapshot composites the visible node tree into a fresh canvas, for
// frame capture.
func (s *Stage) Snapshot() *Canvas {
	out := NewCanvas(s.width, s.height)
	s.root.compositeInto(out)
	return out
}
