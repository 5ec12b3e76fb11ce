package tui

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/Mr-Dark-debug/polaroid/internal/imgterm"
	"github.com/Mr-Dark-debug/polaroid/internal/layout"
	"github.com/Mr-Dark-debug/polaroid/internal/lightbox"
	"github.com/Mr-Dark-debug/polaroid/internal/motion"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// wheelStep is how many rows one mouse wheel notch scrolls.
const wheelStep = 3

// Options configures a gallery model.
type Options struct {
	Photos    photo.Set
	Theme     theme.Theme
	GroupSize int
	Bulbs     int
	Decor     decor.Counts
	// Rand drives decoration generation, including regeneration when
	// the theme changes.
	Rand   *rand.Rand
	Logger *zap.Logger
	// ThemeUpdates, when set, repaints the gallery on every theme reload.
	ThemeUpdates <-chan theme.Update
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the gallery.
// State is organized by concern; rendering is delegated
// to component functions in separate files.
type Model struct {
	// Data
	photos     photo.Set
	placements []layout.Placement
	scene      decor.Scene
	theme      theme.Theme
	styles     styles
	bulbs      int
	counts     decor.Counts
	rng        *rand.Rand

	themeUpdates <-chan theme.Update

	// Images
	thumbs  map[int]*imgterm.Picture
	missing map[int]bool
	full    *imgterm.Picture
	fullID  int
	fullErr error

	// Interaction
	lightbox *lightbox.Controller
	scroll   *lightbox.FlagLock
	hovered  int
	hover    []motion.Hover

	// Layout
	geom     boardGeom
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	ready    bool

	// Animation
	mountedAt time.Time
	elapsed   float64

	log *zap.Logger
}

// NewModel creates a gallery over the given photos.
func NewModel(opts Options) (Model, error) {
	if opts.GroupSize == 0 {
		opts.GroupSize = layout.DefaultGroupSize
	}
	if opts.Rand == nil {
		opts.Rand = photo.NewRand(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	placements, err := layout.Assign(opts.Photos, opts.GroupSize, spacingPx)
	if err != nil {
		return Model{}, fmt.Errorf("laying out photos: %w", err)
	}

	hover := make([]motion.Hover, len(opts.Photos))
	for i, p := range opts.Photos {
		hover[i] = motion.NewHover(float64(p.RotationDegrees))
	}

	scroll := &lightbox.FlagLock{}
	m := Model{
		photos:     opts.Photos,
		placements: placements,
		bulbs:      opts.Bulbs,
		counts:     opts.Decor,
		rng:        opts.Rand,
		thumbs:     map[int]*imgterm.Picture{},
		missing:    map[int]bool{},
		lightbox:   lightbox.New(opts.Photos, scroll),
		scroll:     scroll,
		hovered:    -1,
		hover:      hover,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		log:        opts.Logger,

		themeUpdates: opts.ThemeUpdates,
	}
	m.setTheme(opts.Theme)
	return m, nil
}

// setTheme repaints the gallery and regenerates its decorations.
func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	m.styles = newStyles(th)
	m.scene = decor.Generate(m.rng, th, m.counts)

	m.help.Styles.ShortKey = m.styles.hintKey
	m.help.Styles.ShortDesc = m.styles.hintDesc
	m.help.Styles.ShortSeparator = m.styles.hintDesc
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(motion.Frame, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type themeReloadedMsg theme.Update

// waitForTheme blocks until the next theme reload. It returns nil once the
// channel is closed, which ends the wait loop.
func waitForTheme(updates <-chan theme.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return themeReloadedMsg(u)
	}
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadThumb(m.photos, 0, m.styles.paper),
		tick(),
		waitForTheme(m.themeUpdates),
	)
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			m.mountedAt = time.Now()
		}
		m.relayout()
		if sel, ok := m.lightbox.Selected(); ok {
			return m, m.openFull(sel)
		}
		return m, nil

	case tickMsg:
		if m.ready {
			m.elapsed = time.Time(msg).Sub(m.mountedAt).Seconds()
		}
		for i, p := range m.photos {
			m.hover[i].Step(i == m.hovered, float64(p.RotationDegrees))
		}
		return m, tick()

	case thumbLoadedMsg:
		if msg.err != nil {
			m.missing[msg.id] = true
			m.log.Warn("photo unavailable", zap.Int("id", msg.id), zap.Error(msg.err))
		} else {
			m.thumbs[msg.id] = msg.pic
		}
		if msg.index+1 == len(m.photos) {
			m.log.Info("all photos hung",
				zap.Int("photos", len(m.photos)), zap.Int("missing", len(m.missing)))
		}
		return m, loadThumb(m.photos, msg.index+1, m.styles.paper)

	case fullLoadedMsg:
		sel, ok := m.lightbox.Selected()
		cols, rows := lightboxBounds(m.width, m.height)
		if !ok || sel.ID != msg.id || cols != msg.cols || rows != msg.rows {
			return m, nil
		}
		m.full, m.fullErr, m.fullID = msg.pic, msg.err, msg.id
		if msg.err != nil {
			m.log.Warn("photo unavailable", zap.Int("id", msg.id), zap.Error(msg.err))
		}
		return m, nil

	case themeReloadedMsg:
		if msg.Err != nil {
			m.log.Warn("theme reload failed, keeping current theme", zap.Error(msg.Err))
		} else {
			m.setTheme(msg.Theme)
			m.log.Info("theme reloaded", zap.String("theme", msg.Theme.Name))
		}
		return m, waitForTheme(m.themeUpdates)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey routes keyboard input based on whether a photo is open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	// ── Lightbox ──

	if m.lightbox.IsOpen() {
		switch {
		case key.Matches(msg, keys.Close):
			m.closeLightbox()
		case key.Matches(msg, keys.Next):
			m.lightbox.Next()
			return m, m.afterStep()
		case key.Matches(msg, keys.Prev):
			m.lightbox.Prev()
			return m, m.afterStep()
		}
		return m, nil
	}

	// ── Board ──

	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, keys.Open):
		if m.hovered >= 0 {
			return m, m.openLightbox(m.hovered)
		}
	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
	}
	return m, nil
}

// handleMouse routes clicks, wheel and hover.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.lightbox.IsOpen() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			r := lightboxRect(&m)
			// The frame swallows clicks; only the button and the backdrop close.
			if r.onClose(msg.X, msg.Y) || !r.contains(msg.X, msg.Y) {
				m.closeLightbox()
			}
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	}

	idx, ok := m.boardHit(msg.X, msg.Y)
	if !ok {
		if msg.Action == tea.MouseActionMotion {
			m.hovered = -1
		}
		return m, nil
	}
	m.hovered = idx
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m, m.openLightbox(idx)
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Actions
// ────────────────────────────────────────────────────────────

func (m *Model) openLightbox(index int) tea.Cmd {
	if index < 0 || index >= len(m.photos) {
		return nil
	}
	p := m.photos[index]
	m.lightbox.Open(p)
	m.log.Debug("lightbox opened", zap.Int("id", p.ID))
	return m.openFull(p)
}

func (m *Model) closeLightbox() {
	if sel, ok := m.lightbox.Selected(); ok {
		m.log.Debug("lightbox closed", zap.Int("id", sel.ID))
	}
	m.lightbox.Close()
	m.full, m.fullErr, m.fullID = nil, nil, 0
}

// afterStep follows the lightbox to its new photo.
func (m *Model) afterStep() tea.Cmd {
	sel, ok := m.lightbox.Selected()
	if !ok {
		return nil
	}
	m.hovered = sel.ID - 1
	m.ensureVisible(m.hovered)
	return m.openFull(sel)
}

// openFull drops the current lightbox picture and requests p's.
func (m *Model) openFull(p photo.Photo) tea.Cmd {
	m.full, m.fullErr, m.fullID = nil, nil, p.ID
	cols, rows := lightboxBounds(m.width, m.height)
	return loadFull(p, cols, rows, m.styles.paper)
}

// moveCursor steps the hover cursor across strings (dStr) or along one (dPos).
func (m *Model) moveCursor(dStr, dPos int) {
	if len(m.geom.strings) == 0 {
		return
	}
	if m.hovered < 0 {
		m.hovered = 0
		m.ensureVisible(0)
		return
	}

	si, pos, ok := m.geom.locate(m.hovered)
	if !ok {
		return
	}
	last := len(m.geom.strings) - 1

	switch {
	case dStr != 0:
		si = clamp(si+dStr, 0, last)
	case pos+dPos < 0:
		// Off the top: last card of the string above in the grid.
		if si-m.geom.cols < 0 {
			return
		}
		si -= m.geom.cols
		pos = len(m.geom.strings[si].cards) - 1
	case pos+dPos >= len(m.geom.strings[si].cards):
		// Off the bottom: first card of the string below in the grid.
		if si+m.geom.cols > last {
			return
		}
		si += m.geom.cols
		pos = 0
	default:
		pos += dPos
	}

	cards := m.geom.strings[si].cards
	m.hovered = cards[clamp(pos, 0, len(cards)-1)].index
	m.ensureVisible(m.hovered)
}

// cycleTheme switches to the next built-in theme.
func (m *Model) cycleTheme() {
	names := theme.Names()
	next := names[0]
	if i := slices.Index(names, m.theme.Name); i >= 0 {
		next = names[(i+1)%len(names)]
	}
	th, err := theme.Builtin(next)
	if err != nil {
		return
	}
	m.setTheme(th)
	m.log.Debug("theme changed", zap.String("theme", th.Name))
}

// ────────────────────────────────────────────────────────────
// Scrolling
// ────────────────────────────────────────────────────────────

// scrollBy moves the board unless the scroll lock is held.
func (m *Model) scrollBy(rows int) {
	if m.scroll.Locked() {
		return
	}
	m.viewport.SetYOffset(m.viewport.YOffset + rows)
}

// ensureVisible scrolls the board so a card is fully on screen.
func (m *Model) ensureVisible(index int) {
	top, bottom, ok := m.geom.cardRect(index)
	if !ok || m.scroll.Locked() {
		return
	}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(max(0, top-topRows))
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// skyHeight is the decoration strip height at the current size.
func (m Model) skyHeight() int {
	if m.height < minHeightForSky {
		return 0
	}
	return skyRows
}

// bodyTop is the first screen row of the board.
func (m Model) bodyTop() int {
	return headerRows + m.skyHeight()
}

// boardHit maps a screen position to the photo under it.
func (m Model) boardHit(x, y int) (int, bool) {
	top := m.bodyTop()
	if y < top || y >= top+m.viewport.Height {
		return 0, false
	}
	return m.geom.hit(x, y-top+m.viewport.YOffset, m.hover)
}

// relayout recomputes the board for the current terminal size.
func (m *Model) relayout() {
	m.geom = layoutBoard(m.placements, m.width)

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-m.bodyTop()-footerRows)
	// Placeholder lines give the viewport the board's scroll height;
	// View fills in the visible rows.
	m.viewport.SetContent(strings.Repeat("\n", max(0, m.geom.height-1)))
	m.viewport.SetYOffset(m.viewport.YOffset)

	m.help.Width = m.width / 2
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.ready {
		return m.styles.loading.Render(m.theme.Loading)
	}

	if m.lightbox.IsOpen() {
		return renderLightbox(&m)
	}

	parts := []string{renderHeader(&m)}
	if h := m.skyHeight(); h > 0 {
		parts = append(parts, renderSky(&m, m.width, h))
	}

	vp := m.viewport
	vp.SetContent(renderBoard(&m, vp.YOffset, vp.YOffset+vp.Height))
	parts = append(parts, vp.View(), renderFooter(&m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
