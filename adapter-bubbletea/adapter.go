package bubble_adapter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/calkeys/core"
	"github.com/ionut-t/calkeys/navigator"
)

const (
	messageDuration = 3 * time.Second
	// frameDelay stands in for "the next animation frame" before a boosted
	// link is followed.
	frameDelay   = 16 * time.Millisecond
	signalBuffer = 32
)

type Theme struct {
	InsertModeStyle     lipgloss.Style
	GotoModeStyle       lipgloss.Style
	SearchModeStyle     lipgloss.Style
	OverlayStyle        lipgloss.Style
	BufferStyle         lipgloss.Style
	HintStyle           lipgloss.Style
	CommandLineStyle    lipgloss.Style
	MessageStyle        lipgloss.Style
	ErrorStyle          lipgloss.Style
	HelpStyle           lipgloss.Style
	CalendarHeaderStyle lipgloss.Style
	CalendarDayStyle    lipgloss.Style
	CalendarTodayStyle  lipgloss.Style
}

var DefaultTheme = Theme{
	InsertModeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	GotoModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	SearchModeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	OverlayStyle:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	BufferStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	HintStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("238")),
	CommandLineStyle:    lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	HelpStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	CalendarHeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
	CalendarDayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Align(lipgloss.Center).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")),
	CalendarTodayStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Align(lipgloss.Center).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("220")),
}

type Model struct {
	editor      editor.Editor
	interpreter editor.Interpreter
	navigator   *navigator.Navigator
	calendar    *weekCalendar
	surface     *surface
	links       *linkQueue
	signals     <-chan editor.Signal
	field       textinput.Model
	keys        keyMap
	theme       Theme
	clipboard   Clipboard
	copyLinks   bool

	width, height int

	message        string
	err            error
	clearMsgCancel context.CancelFunc
}

type settings struct {
	theme        Theme
	clipboard    Clipboard
	copyLinks    bool
	calendar     bool
	firstWeekday time.Weekday
	basePath     string
	now          func() time.Time
}

type Option func(*settings)

// WithTheme allows setting a custom theme.
func WithTheme(theme Theme) Option {
	return func(s *settings) { s.theme = theme }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(s *settings) { s.clipboard = c }
}

// WithCopyLinks copies every followed link to the clipboard.
func WithCopyLinks(copyLinks bool) Option {
	return func(s *settings) { s.copyLinks = copyLinks }
}

// WithoutCalendar hides the calendar. Movement keys are then passed through.
func WithoutCalendar() Option {
	return func(s *settings) { s.calendar = false }
}

// WithWeekStart sets the first day of the calendar's weeks.
func WithWeekStart(day time.Weekday) Option {
	return func(s *settings) { s.firstWeekday = day }
}

// WithBasePath mounts generated links below p.
func WithBasePath(p string) Option {
	return func(s *settings) { s.basePath = p }
}

// WithClock replaces time.Now for the calendar.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

type messageMsg string

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

type clearMsg struct{}

type previewMsg struct {
	result editor.PreviewResult
}

type signalMsg struct {
	signal editor.Signal
}

type activateLinkMsg struct {
	nav navigator.Navigation
}

// New creates the terminal host. interp answers insert mode previews.
func New(interp editor.Interpreter, opts ...Option) Model {
	s := settings{
		theme:        DefaultTheme,
		clipboard:    &atottoClipboard{},
		calendar:     true,
		firstWeekday: time.Monday,
		basePath:     "/",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	m := Model{
		interpreter: interp,
		surface:     &surface{calendar: s.calendar},
		links:       &linkQueue{},
		field:       textinput.New(),
		keys:        defaultKeyMap,
		theme:       s.theme,
		clipboard:   s.clipboard,
		copyLinks:   s.copyLinks,
	}
	m.field.Placeholder = "notes"
	m.field.Prompt = "> "

	bus := editor.NewBus()
	m.signals, _ = bus.Subscribe(signalBuffer)
	m.editor = editor.New(bus, m.surface)

	var cal navigator.Calendar
	if s.calendar {
		m.calendar = newWeekCalendar(s.firstWeekday, s.now)
		cal = m.calendar
	}
	m.navigator = navigator.New(m.links, cal, navigator.WithBasePath(s.basePath))

	return m
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.field.Width = max(10, width-4)
}

// DispatchMessage shows message in the command line for duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil
	return m.dispatchClearMsg(duration)
}

// DispatchError shows err in the command line for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.message = ""
	m.err = err
	return m.dispatchClearMsg(duration)
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return m.listenForSignals()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case previewMsg:
		m.editor.ApplyPreview(msg.result)

	case signalMsg:
		if err := m.navigator.Handle(msg.signal); err != nil {
			cmds = append(cmds, m.DispatchError(err, messageDuration))
		}
		cmds = append(cmds, m.followLinks(), m.listenForSignals())

	case activateLinkMsg:
		cmds = append(cmds, m.activate(msg.nav))

	case messageMsg:
		cmds = append(cmds, m.DispatchMessage(string(msg), messageDuration))

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, messageDuration))

	case clearMsg:
		m.message = EmptyMessage
		m.err = nil
		m.clearMsgCancel = nil
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	res, err := m.editor.HandleKey(convertBubbleKey(msg))
	if err != nil {
		var editorErr *editor.Error
		id := editor.ErrInvalidModeId
		if errors.As(err, &editorErr) {
			id = editorErr.ID()
		}
		return func() tea.Msg {
			return ErrorMsg{ID: id, Error: err}
		}
	}

	if res.Handled {
		if res.Preview != nil {
			return m.fetchPreview(*res.Preview)
		}
		return nil
	}

	// Keys the editor passed through get their default handling. The overlay
	// keeps them while it is open.
	if !m.editor.IsNormalMode() {
		return nil
	}

	if m.field.Focused() {
		if key.Matches(msg, m.keys.BlurField) {
			m.blurField()
			return nil
		}
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.FocusField):
		return m.focusField()
	case key.Matches(msg, m.keys.QuitNormal):
		return tea.Quit
	}

	return nil
}

func (m *Model) focusField() tea.Cmd {
	m.surface.fieldFocused = true
	return m.field.Focus()
}

func (m *Model) blurField() {
	m.surface.fieldFocused = false
	m.field.Blur()
}

func (m Model) fetchPreview(req editor.PreviewRequest) tea.Cmd {
	interp := m.interpreter
	return func() tea.Msg {
		return previewMsg{result: editor.FetchPreview(context.Background(), interp, req)}
	}
}

func (m Model) listenForSignals() tea.Cmd {
	signals := m.signals
	return func() tea.Msg {
		signal, ok := <-signals
		if !ok {
			return nil
		}
		return signalMsg{signal: signal}
	}
}

// followLinks turns queued navigations into commands. Boosted links are
// followed one frame later.
func (m *Model) followLinks() tea.Cmd {
	var cmds []tea.Cmd
	for _, nav := range m.links.drain() {
		if nav.Boosted {
			cmds = append(cmds, tea.Tick(frameDelay, func(time.Time) tea.Msg {
				return activateLinkMsg{nav: nav}
			}))
			continue
		}
		cmds = append(cmds, m.activate(nav))
	}
	return tea.Batch(cmds...)
}

func (m *Model) activate(nav navigator.Navigation) tea.Cmd {
	if m.copyLinks {
		if err := m.clipboard.Write(nav.URL); err != nil {
			log.Printf("copying %s: %v", nav.URL, err)
			return m.DispatchError(editor.NewError(editor.ErrNavigationFailedId, fmt.Errorf("copy link: %w", err)), messageDuration)
		}
	}

	if nav.Kind == navigator.Redirect {
		return m.DispatchMessage(openLinkMessage(nav.URL), messageDuration)
	}

	target, ok := navigator.GotoTarget(nav.URL)
	if !ok || m.calendar == nil {
		return m.DispatchMessage(openLinkMessage(nav.URL), messageDuration)
	}

	if target == editor.GotoNow {
		m.calendar.Today()
		return m.DispatchMessage(TodayMessage, messageDuration)
	}

	day, err := parseGotoTarget(target)
	if err != nil {
		return m.DispatchError(editor.NewError(editor.ErrNavigationFailedId, err), messageDuration)
	}
	m.calendar.JumpTo(day)

	return m.DispatchMessage(weekMessage(m.calendar.Start()), messageDuration)
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	default:
		if isCtrlKey(msg.Type) {
			key.Modifiers |= editor.ModCtrl
			key.Rune = ctrlRune(msg.Type)
		}
	}

	return key
}

// isCtrlKey reports whether t is one of the control characters bubbletea
// reports for ctrl+letter combinations.
func isCtrlKey(t tea.KeyType) bool {
	return t >= tea.KeyCtrlAt && t <= tea.KeyCtrlUnderscore
}

func ctrlRune(t tea.KeyType) rune {
	if t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ {
		return 'a' + rune(t-tea.KeyCtrlA)
	}
	return 0
}
