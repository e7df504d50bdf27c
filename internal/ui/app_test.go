package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/turtlelog/internal/classify"
	"github.com/five82/turtlelog/internal/logsource"
	"github.com/five82/turtlelog/internal/state"
)

const testFailureMarker = "Failed to connect to daemon"

type fakeOpener struct {
	urls []string
}

func (f *fakeOpener) Open(url string) {
	f.urls = append(f.urls, url)
}

type testModelOpts struct {
	useLocalDaemon bool
	selected       classify.StreamKind
	backend        []string
	daemon         []string
	opener         LinkOpener
	limit          int
}

func newTestModel(t *testing.T, o testModelOpts) (Model, map[classify.StreamKind]*logsource.Buffer) {
	t.Helper()

	limit := o.limit
	if limit == 0 {
		limit = 100
	}
	sources := map[classify.StreamKind]*logsource.Buffer{
		classify.StreamBackend: logsource.NewBuffer(limit),
		classify.StreamDaemon:  logsource.NewBuffer(limit),
	}
	sources[classify.StreamBackend].Append(o.backend...)
	sources[classify.StreamDaemon].Append(o.daemon...)

	selected := o.selected
	if selected == "" {
		selected = classify.StreamBackend
	}

	m := New(Options{
		Sources:             sources,
		Store:               &state.Store{},
		Opener:              o.opener,
		Session:             Session{SelectedLog: selected, DarkMode: true},
		UseLocalDaemon:      o.useLocalDaemon,
		DaemonFailureMarker: testFailureMarker,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, sources
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_LoadingUntilSized(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestNew_InvalidSelectedLogFallsBack(t *testing.T) {
	m := New(Options{Session: Session{SelectedLog: "bogus"}})
	assert.Equal(t, classify.StreamBackend, m.Session().SelectedLog)
}

func TestDaemonHiddenWithoutLocalDaemon(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})

	assert.False(t, m.daemonVisible())
	assert.Equal(t, []classify.StreamKind{classify.StreamBackend}, m.visibleLogs())

	m = update(t, m, runeKey("d"))
	assert.Equal(t, classify.StreamBackend, m.activeStream())
	assert.Equal(t, classify.StreamBackend, m.Session().SelectedLog)
}

func TestDaemonVisibleWithLocalDaemon(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{useLocalDaemon: true})

	assert.True(t, m.daemonVisible())
	assert.Equal(t, classify.Streams(), m.visibleLogs())
}

func TestDaemonVisibleAfterInitFailure(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{
		backend: []string{"starting", "ERROR: " + testFailureMarker + " at 127.0.0.1:11898"},
	})
	assert.True(t, m.daemonVisible())
}

func TestDaemonFailureLatchesOnChange(t *testing.T) {
	m, sources := newTestModel(t, testModelOpts{backend: []string{"starting"}})
	require.False(t, m.daemonVisible())

	sources[classify.StreamBackend].Append(testFailureMarker)
	m = update(t, m, linesChangedMsg{stream: classify.StreamBackend})
	assert.True(t, m.daemonVisible())

	// Stays visible once latched.
	m = update(t, m, linesChangedMsg{stream: classify.StreamBackend})
	assert.True(t, m.daemonVisible())
}

func TestRememberedDaemonSelectionFallsBackWhileHidden(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{
		selected: classify.StreamDaemon,
		backend:  []string{"backend line"},
		daemon:   []string{"daemon line"},
	})

	assert.Equal(t, classify.StreamBackend, m.activeStream())
	assert.Equal(t, classify.StreamDaemon, m.Session().SelectedLog)
	require.Len(t, m.logState.lines, 1)
	assert.Equal(t, "backend line", m.logState.lines[0].Text)
}

func TestLogSelectionKeys(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{useLocalDaemon: true})

	m = update(t, m, runeKey("d"))
	assert.Equal(t, classify.StreamDaemon, m.Session().SelectedLog)

	m = update(t, m, runeKey("w"))
	assert.Equal(t, classify.StreamBackend, m.Session().SelectedLog)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, classify.StreamDaemon, m.Session().SelectedLog)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, classify.StreamBackend, m.Session().SelectedLog)
}

func TestTabWithSingleLogStaysOnBackend(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, classify.StreamBackend, m.Session().SelectedLog)
}

func TestToggleTheme(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})
	require.Equal(t, "Dark", m.theme.Name)

	m = update(t, m, runeKey("T"))
	assert.False(t, m.Session().DarkMode)
	assert.Equal(t, "Light", m.theme.Name)

	m = update(t, m, runeKey("T"))
	assert.True(t, m.Session().DarkMode)
	assert.Equal(t, "Dark", m.theme.Name)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})

	m = update(t, m, runeKey("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Any key closes help without acting on it.
	m = update(t, m, runeKey("T"))
	assert.False(t, m.showHelp)
	assert.True(t, m.Session().DarkMode)
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuRevealedByTick(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{useLocalDaemon: true})
	require.False(t, m.menuShown())
	narrow, _ := m.logBoxSize()

	m = update(t, m, showMenuMsg{})
	assert.True(t, m.menuShown())
	wide, _ := m.logBoxSize()
	assert.Equal(t, narrow-menuWidth, wide)

	view := m.View()
	assert.Contains(t, view, "turtlelog")
	assert.Contains(t, view, "WalletBackend")
	assert.Contains(t, view, "TurtleCoind")
}

func TestMenuHiddenWhenCompact(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})
	m = update(t, m, showMenuMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: LayoutCompactWidth - 1, Height: 20})
	assert.False(t, m.menuShown())
}

func TestSnapshotMsgUpdatesHealth(t *testing.T) {
	m, _ := newTestModel(t, testModelOpts{})

	store := &state.Store{}
	store.Register(classify.StreamBackend, "/tmp/wallet-backend.log")
	store.Update(classify.StreamBackend, assert.AnError)
	store.Update(classify.StreamBackend, assert.AnError)

	m = update(t, m, snapshotMsg(store.Snapshot()))
	assert.True(t, m.snapshot.Source(classify.StreamBackend).IsFailing())
}

func TestWaitForChange(t *testing.T) {
	buf := logsource.NewBuffer(10)
	sub := buf.Subscribe()

	cmd := waitForChange(classify.StreamDaemon, sub)
	require.NotNil(t, cmd)

	buf.Append("line")
	assert.Equal(t, linesChangedMsg{stream: classify.StreamDaemon}, cmd())

	sub.Close()
	assert.Nil(t, cmd())

	assert.Nil(t, waitForChange(classify.StreamDaemon, nil))
}
