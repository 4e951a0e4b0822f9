package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/tomaspre/physviz/internal/config"
	"github.com/tomaspre/physviz/internal/record"
	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/scenes"
	"github.com/tomaspre/physviz/internal/stage"
	"github.com/tomaspre/physviz/internal/store"
)

const (
	historyCap   = 240
	sidebarWidth = 42
)

type appState int

const (
	stateMenu appState = iota
	stateConfig
	stateView
)

// TickMsg drives one rendered frame.
type TickMsg time.Time

// App is the Bubble Tea model for the product shell: formula menu,
// pre-launch parameter editor, and the live scene view. It owns the stage,
// the id generator, and at most one scene lifecycle at a time.
type App struct {
	state   appState
	cursor  int
	catalog []scenes.Entry

	st  *stage.Stage
	ids *scene.IDGen
	lc  *scene.Lifecycle
	rnd scene.Renderer

	entry     scenes.Entry
	vars      scene.Variables
	paramKeys []string
	selected  int
	editing   bool
	editBuf   string

	fps      int
	paused   bool
	frames   uint64
	showHelp bool
	flash    string

	theme  int
	style  styles
	width  int
	height int

	history []float64
	sample  string

	rec       *record.Recorder
	recording bool

	timeline []store.VarSnapshot
}

// New builds the shell. When startScene names a catalog entry, the app
// opens straight into its live view with the given extra variables layered
// over the defaults.
func New(cfg *config.Config, startScene string, extra scene.Variables) (App, error) {
	theme := themeIndex(cfg.Theme)
	app := App{
		state:   stateMenu,
		catalog: scenes.List(),
		ids:     scene.NewIDGen(time.Now().UnixNano()),
		fps:     cfg.FPS,
		theme:   theme,
		style:   newStyles(Themes[theme]),
		width:   100,
		height:  30,
		rec:     record.NewRecorder(),
	}
	if startScene != "" {
		entry, err := scenes.Get(startScene)
		if err != nil {
			return App{}, err
		}
		app.prepare(entry)
		for k, v := range extra {
			app.vars[k] = v
		}
		app.launch()
	}
	return app, nil
}

// SceneName returns the active (or last active) scene name.
func (m App) SceneName() string { return m.entry.Name }

// FrameCount returns how many frames were rendered.
func (m App) FrameCount() uint64 { return m.frames }

// FinalVars returns the last variable snapshot the user dialed in.
func (m App) FinalVars() map[string]float64 { return m.vars }

// Timeline returns the recorded variable-change history for persistence.
func (m App) Timeline() []store.VarSnapshot { return m.timeline }

func (m App) Init() tea.Cmd {
	if m.state == stateView {
		return tickCmd(m.fps)
	}
	return nil
}

func tickCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeStage()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.state != stateView {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.fps)
	}
	return m, nil
}

// step advances one frame: the shared clock fires every scene callback,
// then the sample trace and optional recording are captured.
func (m *App) step() {
	if m.paused || m.lc == nil {
		return
	}
	m.frames++
	m.st.Clock().Advance(1.0 / float64(m.fps))

	if s, ok := m.rnd.(scene.Sampler); ok {
		label, v := s.Sample()
		m.sample = label
		m.history = append(m.history, v)
		if len(m.history) > historyCap {
			m.history = m.history[1:]
		}
	}
	if m.recording {
		m.rec.Capture(m.st.Snapshot())
	}
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	default:
		return m.viewKey(msg)
	}
}

func (m App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.catalog)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.prepare(m.catalog[m.cursor])
		m.state = stateConfig
	}
	return m, nil
}

func (m App) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.vars[m.paramKeys[m.selected]] = val
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += msg.String()
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.paramKeys)-1 {
			m.selected++
		}
	case "left", "h":
		m.adjust(0.95)
	case "right", "l":
		m.adjust(1.05)
	case "e":
		m.editing = true
	case "enter", " ":
		m.launch()
		m.state = stateView
		return m, tickCmd(m.fps)
	}
	return m, nil
}

func (m App) viewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.teardown()
		return m, tea.Quit
	case "esc", "b":
		m.teardown()
		m.state = stateMenu
		return m, nil
	case " ":
		m.paused = !m.paused
	case "r":
		m.relaunch()
	case "tab":
		if len(m.paramKeys) > 0 {
			m.selected = (m.selected + 1) % len(m.paramKeys)
		}
	case "up", "k":
		m.adjust(1.05)
		m.pushVars()
	case "down", "j":
		m.adjust(0.95)
		m.pushVars()
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.style = newStyles(Themes[m.theme])
	case "g":
		m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// prepare stages an entry for the config screen: working variable copy
// and sorted parameter order.
func (m *App) prepare(entry scenes.Entry) {
	m.entry = entry
	m.vars = entry.Defaults.Clone()
	m.paramKeys = make([]string, 0, len(m.vars))
	for k := range m.vars {
		m.paramKeys = append(m.paramKeys, k)
	}
	sort.Strings(m.paramKeys)
	m.selected = 0
	m.history = nil
	m.timeline = nil
	m.flash = ""
}

// launch builds the stage and the scene lifecycle from the prepared entry.
func (m *App) launch() {
	cw, ch := m.canvasCells()
	m.st = stage.New(cw, ch)
	m.rnd = m.entry.New()
	m.lc = scene.New(m.st, m.rnd, m.ids, m.entry.Options(m.vars)...)
	m.state = stateView
	m.paused = false
	m.frames = 0
	m.recordSnapshot()
}

func (m *App) relaunch() {
	m.teardown()
	m.launch()
}

func (m *App) teardown() {
	if m.lc != nil {
		m.lc.Destroy()
		m.lc = nil
	}
	if m.recording {
		m.stopRecording()
	}
}

// adjust scales the selected variable; exact values come from the e key's
// numeric editor.
func (m *App) adjust(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.vars[key]
	if val > -1e-9 && val < 1e-9 {
		if factor > 1 {
			val = 0.1
		} else {
			val = -0.1
		}
	} else {
		val *= factor
	}
	m.vars[key] = val
}

// pushVars hands the full working snapshot to the scene. Replacement is
// wholesale; the scene never sees a partial diff.
func (m *App) pushVars() {
	if m.lc == nil {
		return
	}
	m.lc.Update(m.vars)
	m.recordSnapshot()
}

func (m *App) recordSnapshot() {
	snap := make(map[string]float64, len(m.vars))
	for k, v := range m.vars {
		snap[k] = v
	}
	m.timeline = append(m.timeline, store.VarSnapshot{
		Elapsed:   float64(m.frames) / float64(m.fps),
		Variables: snap,
	})
}

func (m *App) toggleRecording() {
	if m.recording {
		m.stopRecording()
		return
	}
	m.rec.Reset()
	m.recording = true
	m.flash = ""
}

func (m *App) stopRecording() {
	m.recording = false
	if !m.rec.Active() {
		return
	}
	path := m.entry.Name + ".gif"
	if err := m.rec.Save(path, m.fps); err != nil {
		m.flash = "gif: " + err.Error()
	} else {
		m.flash = "saved " + path
	}
	m.rec.Reset()
}

func (m *App) canvasCells() (int, int) {
	cw := m.width - sidebarWidth - 8
	if cw < 30 {
		cw = 30
	}
	ch := m.height - 4
	if ch < 12 {
		ch = 12
	}
	return cw, ch
}

func (m *App) resizeStage() {
	if m.st == nil {
		return
	}
	cw, ch := m.canvasCells()
	m.st.SetSize(cw, ch)
	if m.lc != nil {
		m.lc.Resize()
	}
}

func (m App) View() string {
	switch m.state {
	case stateMenu:
		return m.menuView()
	case stateConfig:
		return m.configView()
	default:
		return m.sceneView()
	}
}

func (m App) menuView() string {
	var b strings.Builder
	b.WriteString(m.style.header.Render("PHYSVIZ - FORMULA LAB") + "\n\n")
	for i, e := range m.catalog {
		line := fmt.Sprintf("%-14s %s", e.Name, e.Blurb)
		if i == m.cursor {
			b.WriteString(m.style.activeParam.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + m.style.value.Render(line) + "\n")
		}
	}
	b.WriteString(m.style.help.Render("\n↑↓: select   enter: configure   q: quit"))
	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (m App) configView() string {
	var b strings.Builder
	b.WriteString(m.style.header.Render(strings.ToUpper(m.entry.Name)) + "\n")
	b.WriteString(m.style.value.Render(m.entry.Blurb) + "\n\n")
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-14s %8.3f", k, m.vars[k])
		if i == m.selected {
			if m.editing {
				line = fmt.Sprintf("%-14s %s_", k, m.editBuf)
			}
			b.WriteString(m.style.activeParam.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(m.style.help.Render("\n↑↓: select   ←→: nudge   e: type value   enter: run   esc: back"))
	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (m App) sceneView() string {
	if m.showHelp {
		return m.helpView()
	}
	canvas := ""
	if m.st != nil {
		canvas = m.st.Render()
	}
	canvasView := m.style.canvas.Render(canvas)
	sidebar := m.style.sidebar.Render(m.sidebarView())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, sidebar)
}

func (m App) sidebarView() string {
	var b strings.Builder
	b.WriteString(m.style.header.Render(strings.ToUpper(m.entry.Name)) + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	b.WriteString(status)
	if m.recording {
		b.WriteString("  " + m.style.recording.Render("● REC"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.style.label.Render("Elapsed") +
		m.style.value.Render(fmt.Sprintf("%.1fs", float64(m.frames)/float64(m.fps))) + "\n")
	if m.lc != nil {
		b.WriteString(m.style.label.Render("Scene") + m.style.value.Render(m.lc.ID()) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption(m.sample),
		)
		b.WriteString(m.style.graph.Render(chart) + "\n")
	}

	b.WriteString("\nVARIABLES\n")
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-13s %8.3f", k, m.vars[k])
		if i == m.selected {
			b.WriteString(m.style.activeParam.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.flash != "" {
		b.WriteString("\n" + m.style.warning.Render(m.flash) + "\n")
	}
	b.WriteString(m.style.help.Render("\n──────────────────\nSP:pause R:reset Tab:param ↑↓:tune\nT:theme G:record ?:help Esc:menu"))
	return b.String()
}

func (m App) helpView() string {
	help := `
  KEYBOARD

  Space    pause / resume
  R        reset the scene
  Tab      cycle variables
  Up/Down  tune selected variable (±5%)
  T        cycle themes
  G        toggle GIF recording
  Esc/B    back to the menu
  Q        quit
  ?        close this help
`
	return lipgloss.NewStyle().Padding(1, 3).Render(m.style.header.Render("PHYSVIZ") + "\n" + help)
}
