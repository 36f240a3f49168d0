package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/marquee/internal/config"
	"github.com/riordanpawley/marquee/internal/ui/boundary"
)

// newTestApp returns an App isolated from the user's files and environment
func newTestApp(t *testing.T, args ...string) (*App, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	dir := t.TempDir()
	for _, key := range []string{"MARQUEE_MAX_UPLOAD_BYTES", "MARQUEE_ACCEPT", "MARQUEE_LOG_LEVEL", "MARQUEE_NOTICE_TTL_MS"} {
		t.Setenv(key, "")
	}
	t.Setenv("MARQUEE_LOG_FILE", filepath.Join(dir, "marquee.log"))

	a := NewApp()
	var out bytes.Buffer
	a.SetOutput(&out, &out)
	base := []string{"--config", filepath.Join(dir, "config.toml"), "--project", dir}
	a.SetArgs(append(args[:len(args):len(args)], base...))
	return a, &out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	a, out := newTestApp(t, "version")
	require.NoError(t, a.Execute())
	assert.Equal(t, "marquee dev (commit: none)\n", out.String())
}

func TestEvents(t *testing.T) {
	a, out := newTestApp(t, "events")
	require.NoError(t, a.Execute())

	s := out.String()
	assert.Contains(t, s, "Corporate Gala")
	assert.Contains(t, s, "120000")
	// Date order by default
	assert.Less(t, strings.Index(s, "Patel Engagement Party"), strings.Index(s, "Winter Charity Gala"))
}

func TestEvents_Query(t *testing.T) {
	a, out := newTestApp(t, "events", "--query", "GALA")
	require.NoError(t, a.Execute())

	s := out.String()
	assert.Contains(t, s, "Corporate Gala")
	assert.Contains(t, s, "Winter Charity Gala")
	assert.NotContains(t, s, "Sarah & John Wedding")
}

func TestEvents_CategoryAndSort(t *testing.T) {
	a, out := newTestApp(t, "events", "--category", "wedding", "--sort", "guests", "--desc")
	require.NoError(t, a.Execute())

	s := out.String()
	assert.NotContains(t, s, "Corporate Gala")
	assert.Less(t, strings.Index(s, "Sarah & John Wedding"), strings.Index(s, "Patel Engagement Party"))
}

func TestEvents_Status(t *testing.T) {
	a, out := newTestApp(t, "events", "--status", "planning,Cancelled", "--format", "csv")
	require.NoError(t, a.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "7,Q3 Sales Kickoff"))
	assert.True(t, strings.HasPrefix(lines[2], "2,Corporate Gala"))
	assert.True(t, strings.HasPrefix(lines[3], "4,Winter Charity Gala"))
}

func TestEvents_StatusRepeatedAndCombined(t *testing.T) {
	a, out := newTestApp(t, "events", "--status", "confirmed", "--status", "confirmed",
		"--category", "conference", "--format", "csv")
	require.NoError(t, a.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "5,DevSummit 2026"))
}

func TestEvents_NoMatches(t *testing.T) {
	a, out := newTestApp(t, "events", "-q", "zzz")
	require.NoError(t, a.Execute())
	assert.Equal(t, "No events match.\n", out.String())
}

func TestEvents_CSV(t *testing.T) {
	a, out := newTestApp(t, "events", "--format", "csv", "--query", "devsummit")
	require.NoError(t, a.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Name,Date"))
	assert.True(t, strings.HasPrefix(lines[1], "5,DevSummit 2026,2026-10-08"))
}

func TestEvents_BadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"category", []string{"events", "--category", "picnic"}, "unknown category"},
		{"sort", []string{"events", "--sort", "budget"}, "unknown sort field"},
		{"status", []string{"events", "--status", "postponed"}, "unknown status"},
		{"format", []string{"events", "--format", "xml"}, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t, tt.args...)
			err := a.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVendors(t *testing.T) {
	a, out := newTestApp(t, "vendors", "--query", "portland")
	require.NoError(t, a.Execute())

	s := out.String()
	assert.Contains(t, s, "Bloom & Petal")
	assert.Contains(t, s, "Lumen Photo Co.")
	assert.NotContains(t, s, "Silver Spoon Catering")
	assert.Contains(t, s, "4.8")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "contract.pdf", "%PDF-1.4 test")
	txt := writeFile(t, dir, "notes.txt", "plain words")
	missing := filepath.Join(dir, "missing.pdf")

	t.Run("accepted", func(t *testing.T) {
		a, out := newTestApp(t, "check", pdf)
		require.NoError(t, a.Execute())
		assert.Contains(t, out.String(), "PASS "+pdf)
		assert.Contains(t, out.String(), "application/pdf")
	})

	t.Run("wrong type", func(t *testing.T) {
		a, out := newTestApp(t, "check", pdf, txt)
		err := a.Execute()
		require.Error(t, err)
		assert.Equal(t, "1 of 2 files rejected", err.Error())
		assert.Contains(t, out.String(), "PASS "+pdf)
		assert.Contains(t, out.String(), "FAIL "+txt)
		assert.Contains(t, out.String(), "not a supported file type")
	})

	t.Run("missing", func(t *testing.T) {
		a, out := newTestApp(t, "check", missing)
		require.Error(t, a.Execute())
		assert.Contains(t, out.String(), "File not found.")
	})

	t.Run("accept override", func(t *testing.T) {
		a, out := newTestApp(t, "check", "--accept", ".txt", txt)
		require.NoError(t, a.Execute())
		assert.Contains(t, out.String(), "PASS "+txt)
	})

	t.Run("size override", func(t *testing.T) {
		a, out := newTestApp(t, "check", "--max-size", "4", pdf)
		require.Error(t, a.Execute())
		assert.Contains(t, out.String(), "larger than")
	})

	t.Run("env override", func(t *testing.T) {
		a, out := newTestApp(t, "check", txt)
		t.Setenv("MARQUEE_ACCEPT", "text/plain")
		require.NoError(t, a.Execute())
		assert.Contains(t, out.String(), "PASS "+txt)
	})

	t.Run("needs a file", func(t *testing.T) {
		a, _ := newTestApp(t, "check")
		require.Error(t, a.Execute())
	})
}

func TestConfig(t *testing.T) {
	a, out := newTestApp(t, "config")
	require.NoError(t, a.Execute())

	s := out.String()
	assert.Contains(t, s, "# user file:")
	assert.Contains(t, s, "[upload]")
	assert.Contains(t, s, "max_size_bytes = 10485760")
}

func TestConfig_Init(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	a, out := newTestApp(t, "config", "--init")
	a.SetArgs([]string{"config", "--init", "--config", path, "--project", dir})
	require.NoError(t, a.Execute())
	assert.Contains(t, out.String(), "Created "+path)
	assert.FileExists(t, path)

	a, out = newTestApp(t)
	a.SetArgs([]string{"config", "--init", "--config", path, "--project", dir})
	require.NoError(t, a.Execute())
	assert.Contains(t, out.String(), "already exists")
}

func TestConfig_InitProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ProjectFile)
	args := []string{"config", "--init-project", "--config", filepath.Join(dir, "none.toml"), "--project", dir}

	a, out := newTestApp(t)
	a.SetArgs(args)
	require.NoError(t, a.Execute())
	assert.Contains(t, out.String(), "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version"`)
	assert.Contains(t, string(data), `"maxSizeBytes": 10485760`)

	// The written file loads and leaves the other settings alone
	cfg, err := config.LoadConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Upload.Accept, cfg.Upload.Accept)
	assert.Equal(t, config.DefaultConfig().Log.Level, cfg.Log.Level)

	a, out = newTestApp(t)
	a.SetArgs(args)
	require.NoError(t, a.Execute())
	assert.Contains(t, out.String(), "already exists")
}

func TestConfig_InvalidProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".marquee.json", "{not json")

	a, _ := newTestApp(t)
	a.SetArgs([]string{"config", "--config", filepath.Join(dir, "none.toml"), "--project", dir})
	err := a.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".marquee.json")
}

func TestInteractive_ExitsWithoutReload(t *testing.T) {
	a, _ := newTestApp(t)
	calls := 0
	a.runProgram = func(m tea.Model) error {
		calls++
		require.IsType(t, &boundary.Boundary{}, m)
		return nil
	}

	require.NoError(t, a.Execute())
	assert.Equal(t, 1, calls)
}

func TestInteractive_ReloadAfterFault(t *testing.T) {
	a, _ := newTestApp(t, "--debug")
	calls := 0
	a.runProgram = func(m tea.Model) error {
		calls++
		if calls > 1 {
			return nil
		}
		// Raise the diagnostic fault, then choose reload on the fallback screen
		b := m.(*boundary.Boundary)
		b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
		require.Contains(t, b.View(), "Something went wrong")
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		return nil
	}

	require.NoError(t, a.Execute())
	assert.Equal(t, 2, calls)
}

func TestInteractive_ReloadRebuildsLogger(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	a, _ := newTestApp(t, "--debug")
	t.Setenv("MARQUEE_LOG_FILE", first)
	calls := 0
	a.runProgram = func(m tea.Model) error {
		calls++
		if calls > 1 {
			return nil
		}
		b := m.(*boundary.Boundary)
		b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
		b.View()
		// The next bootstrap must pick up the changed log file
		t.Setenv("MARQUEE_LOG_FILE", second)
		b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		return nil
	}

	require.NoError(t, a.Execute())
	require.Equal(t, 2, calls)

	firstLog, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(firstLog), "reloading marquee")

	secondLog, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(secondLog), "starting marquee")
	assert.NotContains(t, string(secondLog), "reloading marquee")
}

func TestTermWidth_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, termWidth(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Zero(t, termWidth(f))
}
