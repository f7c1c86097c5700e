// Package teaui hosts the Bubble Tea program for the battery day view:
// a multi-day calendar where overlapping events sit side by side, local
// events move by mouse drag with 15-minute snapping, and empty slots
// click-to-create.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/store"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/tui/dayview"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeHelp
)

const (
	gutterWidth = 6
	headerRows  = 1
	footerRows  = 3
	// VisibleDays is how many day columns the view shows.
	VisibleDays = 3
)

// Model contains UI state. The layout engine is re-run on every render;
// nothing geometric is cached across updates.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	window  layout.Window
	thm     theme.Theme
	mode    mode
	anchor  time.Time // first visible day (local midnight)
	events  []*event.Event
	changes <-chan store.Change

	focusDay int
	selected string

	// Pointer drag state; dragID empty when no drag is active.
	dragID  string
	dragDay int
	drag    *layout.Drag

	// Pending click-to-create candidate while the title prompt is open.
	creating *layout.Drag

	input  textinput.Model
	status string

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
}

// New creates the UI model backed by the Service.
func New(svc *app.Service, w layout.Window) Model {
	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 128
	ti.Prompt = ""

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		window: w,
		thm:    theme.Default(),
		mode:   modeNormal,
		anchor: layout.DayStart(time.Now()),
		input:  ti,
		status: "NORMAL: h/l day, j/k select, J/K nudge, drag to move, click empty to add, ? help",
	}
	if ch, err := svc.Watch(m.ctx); err == nil {
		m.changes = ch
	}
	return m
}

// Init loads initial data.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEvents(), m.waitForChange())
}

// messages
type errMsg struct{ err error }
type eventsLoadedMsg struct{ events []*event.Event }
type storeChangedMsg struct{}

func (m *Model) loadEvents() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	from := m.anchor
	return func() tea.Msg {
		events, err := svc.Upcoming(ctx, from, VisibleDays*24)
		if err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{events}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case eventsLoadedMsg:
		m.events = msg.events
	case storeChangedMsg:
		cmds = append(cmds, m.loadEvents(), m.waitForChange())
	case tea.MouseClickMsg:
		m.onMouseDown(msg.Mouse(), &cmds)
	case tea.MouseMotionMsg:
		m.onMouseMove(msg.Mouse())
	case tea.MouseReleaseMsg:
		m.onMouseUp(&cmds)
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			m.updateInsert(msg, &cmds)
		case modeCommand:
			m.updateCommand(msg, &cmds)
		case modeNormal:
			m.updateNormal(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateInsert(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title != "" && m.creating != nil {
			if _, err := m.svc.Create(m.ctx, title, m.creating.Start, m.creating.End, event.Custom); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			} else {
				m.status = fmt.Sprintf("Added %s at %s", title, m.creating.Start.Local().Format("15:04"))
			}
		}
		m.leaveInsert(cmds)
	case "esc":
		m.status = "Add cancelled"
		m.leaveInsert(cmds)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) leaveInsert(cmds *[]tea.Cmd) {
	m.mode = modeNormal
	m.creating = nil
	m.input.Reset()
	m.input.Blur()
	*cmds = append(*cmds, m.loadEvents())
}

func (m *Model) updateCommand(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		switch input {
		case "q", "quit", "exit":
			*cmds = append(*cmds, tea.Quit)
		case "":
		default:
			m.status = fmt.Sprintf("Unknown command: %s", input)
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Command cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateNormal(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case ":":
		m.mode = modeCommand
		m.input.Reset()
		m.input.Placeholder = "command"
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "Use :q to quit"
	case "r":
		*cmds = append(*cmds, m.loadEvents())

	case "h", "left":
		if m.focusDay > 0 {
			m.focusDay--
		}
		m.selected = ""
	case "l", "right":
		if m.focusDay < VisibleDays-1 {
			m.focusDay++
		}
		m.selected = ""
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)

	case "J":
		m.nudgeSelected(15*time.Minute, cmds)
	case "K":
		m.nudgeSelected(-15*time.Minute, cmds)

	case "a":
		px := m.nextFreePx()
		cand := layout.CreateCandidate(m.focusedDay(), px, m.window)
		m.beginCreate(cand, cmds)

	case "d":
		if m.selected != "" {
			if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
				if err := m.svc.Delete(m.ctx, m.selected); err != nil {
					*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
				} else {
					m.status = "Deleted"
					m.selected = ""
					*cmds = append(*cmds, m.loadEvents())
				}
				m.awaitingDD = false
			} else {
				m.awaitingDD = true
				m.lastDTime = time.Now()
			}
		}

	case "esc":
		if m.dragID != "" {
			m.cancelDrag()
			m.status = "Drag cancelled"
		}
		m.selected = ""
	}
}

func (m *Model) beginCreate(cand layout.Drag, cmds *[]tea.Cmd) {
	if !cand.Valid {
		m.status = "That slot is outside the visible window"
		return
	}
	c := cand
	m.creating = &c
	m.mode = modeInsert
	m.input.Reset()
	m.input.Placeholder = fmt.Sprintf("Title for %s–%s",
		cand.Start.Local().Format("15:04"), cand.End.Local().Format("15:04"))
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

// nextFreePx picks a keyboard-add position: the slot after the last block
// of the focused day, or the top of the window when the day is empty.
func (m *Model) nextFreePx() float64 {
	blocks := layout.Blocks(m.focusedDay(), m.events, m.window)
	bottom := 0.0
	for _, b := range blocks {
		if end := b.Top + b.Height; end > bottom {
			bottom = end
		}
	}
	return bottom
}

func (m *Model) focusedDay() time.Time {
	return m.anchor.AddDate(0, 0, m.focusDay)
}

// dayEvents orders the focused day's blocks top to bottom for j/k cycling.
func (m *Model) dayEventIDs() []string {
	blocks := layout.Blocks(m.focusedDay(), m.events, m.window)
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.EventID)
	}
	return ids
}

func (m *Model) moveSelection(delta int) {
	ids := m.dayEventIDs()
	if len(ids) == 0 {
		m.selected = ""
		return
	}
	idx := -1
	for i, id := range ids {
		if id == m.selected {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(ids) - 1
	}
	if idx >= len(ids) {
		idx = 0
	}
	m.selected = ids[idx]
}

func (m *Model) nudgeSelected(delta time.Duration, cmds *[]tea.Cmd) {
	if m.selected == "" {
		return
	}
	e := m.eventByID(m.selected)
	if e == nil {
		return
	}
	if e.ReadOnly() {
		m.status = "Synced events are read-only"
		return
	}
	newStart := e.Start.Add(delta)
	startMin := m.window.MinuteOfDay(newStart)
	endMin := startMin + int(e.Duration().Minutes())
	if startMin < m.window.StartHour*60 || endMin > m.window.EndHour*60 {
		m.status = "Cannot move outside the visible window"
		return
	}
	if _, err := m.svc.Reschedule(m.ctx, e.ID, newStart); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.status = fmt.Sprintf("Moved to %s", newStart.Local().Format("15:04"))
	*cmds = append(*cmds, m.loadEvents())
}

func (m *Model) eventByID(id string) *event.Event {
	for _, e := range m.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// --- mouse ---

func (m *Model) gridSize() (dayWidth, gridHeight int) {
	dayWidth = (m.termWidth - gutterWidth) / VisibleDays
	gridHeight = m.termHeight - headerRows - footerRows
	if dayWidth < 10 {
		dayWidth = 10
	}
	if gridHeight < 5 {
		gridHeight = 5
	}
	return dayWidth, gridHeight
}

// hit maps a terminal coordinate to (day index, row, x within day).
func (m *Model) hit(x, y int) (day, row, dayX int, ok bool) {
	dayWidth, gridHeight := m.gridSize()
	row = y - headerRows
	if row < 0 || row >= gridHeight {
		return 0, 0, 0, false
	}
	x -= gutterWidth
	if x < 0 {
		return 0, 0, 0, false
	}
	day = x / dayWidth
	if day >= VisibleDays {
		return 0, 0, 0, false
	}
	return day, row, x % dayWidth, true
}

func (m *Model) onMouseDown(mouse tea.Mouse, cmds *[]tea.Cmd) {
	if m.mode != modeNormal || mouse.Button != tea.MouseLeft {
		return
	}
	dayIdx, row, dayX, ok := m.hit(mouse.X, mouse.Y)
	if !ok {
		return
	}
	m.focusDay = dayIdx

	dayWidth, gridHeight := m.gridSize()
	day := m.anchor.AddDate(0, 0, dayIdx)
	d := m.dayFor(day)
	opts := dayview.Options{Width: dayWidth, Height: gridHeight, Window: m.window, Theme: m.thm}

	if id, found := dayview.HitTest(d, row, dayX, opts); found {
		e := m.eventByID(id)
		m.selected = id
		if e != nil && e.ReadOnly() {
			// Never a drag source.
			m.status = "Synced events are read-only"
			return
		}
		m.dragID = id
		m.dragDay = dayIdx
		m.updateDrag(dayIdx, row, gridHeight)
		return
	}

	// Empty slot: click-to-create with the default 30-minute duration.
	px := dayview.PixelsForRow(row, gridHeight, m.window)
	cand := layout.CreateCandidate(day, px, m.window)
	m.beginCreate(cand, cmds)
}

func (m *Model) onMouseMove(mouse tea.Mouse) {
	if m.dragID == "" {
		return
	}
	dayIdx, row, _, ok := m.hit(mouse.X, mouse.Y)
	if !ok {
		return
	}
	_, gridHeight := m.gridSize()
	m.updateDrag(dayIdx, row, gridHeight)
}

func (m *Model) updateDrag(dayIdx, row, gridHeight int) {
	e := m.eventByID(m.dragID)
	if e == nil {
		m.cancelDrag()
		return
	}
	day := m.anchor.AddDate(0, 0, dayIdx)
	px := dayview.PixelsForRow(row, gridHeight, m.window)
	cand := layout.Candidate(day, px, e, m.window)
	m.dragDay = dayIdx
	m.drag = &cand
	if cand.Valid {
		m.status = fmt.Sprintf("Drop at %s–%s",
			cand.Start.Local().Format("15:04"), cand.End.Local().Format("15:04"))
	} else {
		m.status = "Cannot drop there: outside the visible window"
	}
}

func (m *Model) onMouseUp(cmds *[]tea.Cmd) {
	if m.dragID == "" {
		return
	}
	id, drag := m.dragID, m.drag
	m.cancelDrag()
	if drag == nil {
		return
	}
	if !drag.Valid {
		// Rendered for feedback, rejected at commit time.
		m.status = "Drop rejected: outside the visible window"
		return
	}
	if _, err := m.svc.Reschedule(m.ctx, id, drag.Start); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.status = fmt.Sprintf("Moved to %s", drag.Start.Local().Format("Mon 15:04"))
	*cmds = append(*cmds, m.loadEvents())
}

func (m *Model) cancelDrag() {
	m.dragID = ""
	m.drag = nil
}

// --- view ---

func (m *Model) dayFor(day time.Time) dayview.Day {
	byID := make(map[string]*event.Event, len(m.events))
	for _, e := range m.events {
		byID[e.ID] = e
	}
	return dayview.Day{
		Date:   day,
		Blocks: layout.Blocks(day, m.events, m.window),
		Events: byID,
	}
}

// View renders the gutter, the day columns, and the footer.
func (m Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "loading..."
	}
	dayWidth, gridHeight := m.gridSize()

	columns := []string{m.renderGutter(gridHeight)}
	today := layout.DayStart(time.Now())
	for i := 0; i < VisibleDays; i++ {
		day := m.anchor.AddDate(0, 0, i)

		headerStyle := m.thm.DayHeader
		if day.Equal(today) {
			headerStyle = m.thm.TodayHeader
		}
		name := day.Format("Mon Jan 2")
		if i == m.focusDay {
			name = "» " + name
		}
		header := headerStyle.Render(padTo(name, dayWidth))

		opts := dayview.Options{
			Width:    dayWidth,
			Height:   gridHeight,
			Window:   m.window,
			Selected: m.selected,
			Theme:    m.thm,
		}
		if m.drag != nil && m.dragDay == i {
			opts.Drag = m.drag
		}
		body := dayview.Render(m.dayFor(day), opts)
		columns = append(columns, header+"\n"+body)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	view += "\n" + m.renderFooter()
	return view
}

func (m *Model) renderGutter(gridHeight int) string {
	lines := make([]string, 0, gridHeight+headerRows)
	lines = append(lines, strings.Repeat(" ", gutterWidth))
	prevHour := -1
	for row := 0; row < gridHeight; row++ {
		minute := dayview.MinuteAtRow(row, gridHeight, m.window) + m.window.StartHour*60
		hour := minute / 60
		if minute%60 == 0 && hour != prevHour {
			lines = append(lines, m.thm.Gutter.Render(fmt.Sprintf("%02d:00 ", hour)))
			prevHour = hour
		} else {
			lines = append(lines, strings.Repeat(" ", gutterWidth))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	modeStr := map[mode]string{
		modeNormal:  "NORMAL",
		modeInsert:  "INSERT",
		modeCommand: "CMD",
		modeHelp:    "HELP",
	}[m.mode]
	footer := m.thm.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	if m.mode == modeInsert {
		footer = "Add: " + m.input.View() + "\n" + footer
	}
	if m.mode == modeCommand {
		footer = ":" + m.input.View() + "\n" + footer
	}
	if m.mode == modeHelp {
		help := "Keys: h/l day, j/k select, J/K nudge ±15m, a add, dd delete, r refresh, drag to move, click empty slot to create, :q quit"
		footer = m.thm.Help.Render(help) + "\n" + footer
	}
	return footer
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Run launches the program with mouse support enabled.
func Run(svc *app.Service, w layout.Window) error {
	p := tea.NewProgram(New(svc, w), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
