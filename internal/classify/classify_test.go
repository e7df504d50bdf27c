package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrub(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"daemon tag", "[daemon] Node started", " Node started"},
		{"all tags", "[protocol][Core][daemon][node_server][RocksDBWrapper]x", "x"},
		{"tag mid line", "Sync [Core] progress", "Sync  progress"},
		{"chat url", "Say hi at http://chat.turtlecoin.lol", "Say hi at "},
		{"repeated tag", "[Core] a [Core] b", " a  b"},
		{"nested tag", "[dae[daemon]mon] x", " x"},
		{"no markers", "  plain line  ", "  plain line  "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scrub(tt.input))
		})
	}
}

func TestScrub_Idempotent(t *testing.T) {
	inputs := []string{
		"[daemon] Node started",
		"[Co[protocol]re] nested",
		"[dae[daemon]mon]",
		"http://chat.turhttp://chat.turtlecoin.loltlecoin.lol",
		"nothing to remove",
		"",
	}
	for _, in := range inputs {
		once := Scrub(in)
		assert.Equal(t, once, Scrub(once), "input %q", in)
	}
}

func TestDetectLinks(t *testing.T) {
	assert.Equal(t, Links{}, DetectLinks("just text"))
	assert.Equal(t, Links{License: true}, DetectLinks("see "+LicenseURL))
	assert.Equal(t, Links{Chat: true}, DetectLinks("chat "+ChatURL))
	assert.Equal(t, Links{License: true, Chat: true}, DetectLinks(LicenseURL+" "+ChatURL))
}

func TestResolve_ColorLadder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ColorTag
	}{
		{"default", "Node started", Default},
		{"turtlecoin", "TurtleCoin v1.0", Success},
		{"checkpoints", "[checkpoints] loaded", Success},
		{"main chain", "Block 12 added to main chain", Success},
		{"stop signal", "Stop signal sent", Primary},
		{"stop over success", "TurtleCoin Stop signal sent", Primary},
		{"error", "ERROR failed to bind", Danger},
		{"error over primary", "Stop signal sent ERROR", Danger},
		{"violet", "=== SYNCHRONIZED ===", Violet},
		{"violet over error", "ERROR === boom", Violet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, Scrub(tt.raw))
			require.Equal(t, Colored, got.Kind)
			assert.Equal(t, tt.want, got.Color)
		})
	}
}

func TestResolve_GlyphsSuppressEverything(t *testing.T) {
	lines := []string{
		"████ banner",
		"═══",
		"some_identifier",
		"a | b",
		"ERROR | failed",
		"=== | ===",
		"see " + LicenseURL + " |",
		"chat_room " + ChatURL,
	}
	for _, raw := range lines {
		got := Resolve(raw, Scrub(raw))
		assert.Equal(t, Suppressed, got.Kind, "raw %q", raw)
	}
}

func TestResolve_LicenseLinkUsesScrubbedLine(t *testing.T) {
	raw := "[daemon] License: " + LicenseURL
	got := Classify(raw, StreamDaemon)

	require.Equal(t, Link, got.Kind)
	assert.Equal(t, " License: "+LicenseURL, got.Label)
	assert.Equal(t, got.Text, got.Label)
	assert.Equal(t, got.Label, got.URL)
}

func TestResolve_LicenseWinsOverChat(t *testing.T) {
	raw := LicenseURL + " " + ChatURL
	got := Classify(raw, StreamDaemon)

	require.Equal(t, Link, got.Kind)
	assert.Equal(t, LicenseURL+" ", got.Label)
}

func TestResolve_ChatLink(t *testing.T) {
	got := Classify("Say hi at http://chat.turtlecoin.lol", StreamDaemon)

	require.Equal(t, CompoundLink, got.Kind)
	assert.Equal(t, "Say hi at ", got.Prefix)
	assert.Equal(t, ChatURL, got.URL)
	assert.Equal(t, ChatURL, got.Label)
	assert.Equal(t, []string{ChatURL}, got.Links())
}

func TestResolve_LinkOverridesColor(t *testing.T) {
	got := Classify("ERROR see "+LicenseURL, StreamDaemon)
	assert.Equal(t, Link, got.Kind)
}

func TestClassify_Daemon(t *testing.T) {
	got := Classify("[daemon] Node started", StreamDaemon)
	assert.Equal(t, " Node started", got.Text)
	assert.Equal(t, Colored, got.Kind)
	assert.Equal(t, Default, got.Color)
	assert.Nil(t, got.Links())
}

func TestClassify_BlankDaemonLinesSuppressed(t *testing.T) {
	for _, raw := range []string{"", " ", "\t", "  \t  "} {
		assert.Equal(t, Suppressed, Classify(raw, StreamDaemon).Kind, "raw %q", raw)
	}
}

func TestClassify_BackendAlwaysPlain(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"ERROR something broke",
		"████ ═══ | _",
		"[daemon] tagged",
		"see " + LicenseURL,
		"=== sync ===",
	}
	for _, raw := range inputs {
		got := Classify(raw, StreamBackend)
		assert.Equal(t, Plain, got.Kind, "raw %q", raw)
		assert.Equal(t, raw, got.Text)
	}
}

func TestClassify_Pure(t *testing.T) {
	raw := "[Core] TurtleCoin ERROR === done"
	first := Classify(raw, StreamDaemon)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Classify(raw, StreamDaemon))
	}
}

func TestClassifyAllAndVisible(t *testing.T) {
	lines := []string{
		"[daemon] Node started",
		"",
		"████",
		"ERROR boom",
	}

	all := ClassifyAll(lines, StreamDaemon)
	require.Len(t, all, 4)

	visible := Visible(all)
	require.Len(t, visible, 2)
	assert.Equal(t, " Node started", visible[0].Text)
	assert.Equal(t, Danger, visible[1].Color)

	assert.Nil(t, ClassifyAll(nil, StreamDaemon))
	assert.Len(t, Visible(ClassifyAll(lines, StreamBackend)), 4)
}

func TestParseStream(t *testing.T) {
	got, err := ParseStream("daemon")
	require.NoError(t, err)
	assert.Equal(t, StreamDaemon, got)

	got, err = ParseStream(" wallet-backend ")
	require.NoError(t, err)
	assert.Equal(t, StreamBackend, got)

	_, err = ParseStream("node")
	assert.ErrorIs(t, err, ErrUnknownStream)
}

func TestStreamLabels(t *testing.T) {
	assert.Equal(t, "TurtleCoind", StreamDaemon.Label())
	assert.Equal(t, "WalletBackend", StreamBackend.Label())
	assert.Equal(t, []StreamKind{StreamBackend, StreamDaemon}, Streams())
}
