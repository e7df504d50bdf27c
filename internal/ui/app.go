package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/turtlelog/internal/classify"
	"github.com/five82/turtlelog/internal/logsource"
	"github.com/five82/turtlelog/internal/state"
)

// LinkOpener opens a URL outside the terminal. Calls are fire-and-forget.
type LinkOpener interface {
	Open(url string)
}

// Session is the UI state remembered between runs.
type Session struct {
	SelectedLog classify.StreamKind
	DarkMode    bool
}

// Options configures the UI.
type Options struct {
	Context             context.Context
	Sources             map[classify.StreamKind]*logsource.Buffer
	Store               *state.Store
	Opener              LinkOpener
	Session             Session
	UseLocalDaemon      bool
	DaemonFailureMarker string
	PollTick            time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	sources  map[classify.StreamKind]*logsource.Buffer
	subs     map[classify.StreamKind]*logsource.Subscription
	store    *state.Store
	opener   LinkOpener
	keys     keyMap
	pollTick time.Duration

	// Daemon tab visibility
	useLocalDaemon   bool
	failureMarker    string
	daemonFailedInit bool

	// UI state
	session  Session
	theme    Theme
	width    int
	height   int
	ready    bool
	showMenu bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Log state
	logViewport viewport.Model
	logState    logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	session := opts.Session
	if _, err := classify.ParseStream(string(session.SelectedLog)); err != nil {
		session.SelectedLog = classify.StreamBackend
	}

	m := Model{
		ctx:            ctx,
		sources:        opts.Sources,
		store:          opts.Store,
		opener:         opts.Opener,
		keys:           DefaultKeyMap(),
		pollTick:       pollTick,
		useLocalDaemon: opts.UseLocalDaemon,
		failureMarker:  strings.TrimSpace(opts.DaemonFailureMarker),
		session:        session,
		theme:          ThemeFor(session.DarkMode),
		logViewport:    viewport.New(0, 0),
		logState:       newLogState(),
	}
	m.checkDaemonFailure()
	return m
}

// Session returns the current session state.
func (m Model) Session() Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		revealMenuCmd(MenuRevealDelay),
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	for stream, sub := range m.subs {
		cmds = append(cmds, waitForChange(stream, sub))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshLogContent()
		return m, nil

	case showMenuMsg:
		m.showMenu = true
		m.resizeLogViewport()
		return m, nil

	case linesChangedMsg:
		if msg.stream == classify.StreamBackend {
			m.checkDaemonFailure()
		}
		if msg.stream == m.activeStream() {
			m.refreshLogContent()
		}
		return m, waitForChange(msg.stream, m.subs[msg.stream])

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.session.DarkMode = !m.session.DarkMode
		m.theme = ThemeFor(m.session.DarkMode)
		m.refreshLogContent()
		return m, nil

	case key.Matches(msg, m.keys.NextLog):
		m.cycleLog()
		return m, nil

	case key.Matches(msg, m.keys.WalletLog):
		m.selectLog(classify.StreamBackend)
		return m, nil

	case key.Matches(msg, m.keys.DaemonLog):
		m.selectLog(classify.StreamDaemon)
		return m, nil
	}

	return m.handleLogsKey(msg)
}

// daemonVisible reports whether the TurtleCoind entry is offered.
func (m Model) daemonVisible() bool {
	return m.useLocalDaemon || m.daemonFailedInit
}

// visibleLogs returns the menu entries in order.
func (m Model) visibleLogs() []classify.StreamKind {
	if m.daemonVisible() {
		return classify.Streams()
	}
	return []classify.StreamKind{classify.StreamBackend}
}

// activeStream is the stream being displayed. A remembered daemon selection
// falls back to the backend while the daemon entry is hidden.
func (m Model) activeStream() classify.StreamKind {
	if m.session.SelectedLog == classify.StreamDaemon && !m.daemonVisible() {
		return classify.StreamBackend
	}
	return m.session.SelectedLog
}

// selectLog switches the displayed stream and jumps to its bottom.
func (m *Model) selectLog(stream classify.StreamKind) {
	if stream == classify.StreamDaemon && !m.daemonVisible() {
		return
	}
	m.session.SelectedLog = stream
	m.logState.follow = true
	m.logState.focusedLink = -1
	m.refreshLogContent()
}

// cycleLog moves to the next visible stream.
func (m *Model) cycleLog() {
	logs := m.visibleLogs()
	active := m.activeStream()
	for i, stream := range logs {
		if stream == active {
			m.selectLog(logs[(i+1)%len(logs)])
			return
		}
	}
	m.selectLog(logs[0])
}

// checkDaemonFailure latches daemonFailedInit once the backend reports that
// the remote daemon could not be initialised.
func (m *Model) checkDaemonFailure() {
	if m.daemonFailedInit || m.failureMarker == "" {
		return
	}
	buf := m.sources[classify.StreamBackend]
	if buf == nil {
		return
	}
	for _, line := range buf.Lines() {
		if strings.Contains(line, m.failureMarker) {
			m.daemonFailedInit = true
			return
		}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type showMenuMsg struct{}

type linesChangedMsg struct {
	stream classify.StreamKind
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func revealMenuCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return showMenuMsg{}
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForChange blocks until sub signals and reports which stream changed. It
// returns nil once the subscription is closed.
func waitForChange(stream classify.StreamKind, sub *logsource.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-sub.C(); !ok {
			return nil
		}
		return linesChangedMsg{stream: stream}
	}
}

// Run starts the Bubble Tea program and returns the session to persist. The
// source subscriptions live exactly as long as the program.
func Run(opts Options) (Session, error) {
	m := New(opts)
	m.subs = make(map[classify.StreamKind]*logsource.Subscription, len(opts.Sources))
	for stream, buf := range opts.Sources {
		sub := buf.Subscribe()
		defer sub.Close()
		m.subs[stream] = sub
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		err = nil
	}
	return m.session, err
}
