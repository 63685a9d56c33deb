package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const manor = "../../boards/manor.board"

const walledCellar = `---
suspects:
  s: Miss Scarlett #ff2400
rooms:
  A: Attic
  C: Cellar
passages:
weapons:
-----
A/s..|
.....|
CC...|
C_...|
-----
`

func init() {
	color.NoColor = true
}

// quietConfig writes a config that keeps the logger out of test output.
func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boardcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n  format: json\n"), 0644))
	return path
}

func runCheck(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-config", quietConfig(t)}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Manor(t *testing.T) {
	code, out, errOut := runCheck(t, "-board", manor, "-seed", "3")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "manor.board: 14x10, 4 rooms, 4 suspects, 3 weapons")
	assert.Contains(t, out, "Dining Room")
	assert.Contains(t, out, "v(12,6)")
	assert.Contains(t, out, "Miss Scarlett at (5,1) reaches all 4 rooms")
	assert.Contains(t, out, "Mrs White at (5,9) reaches all 4 rooms")
	assert.NotContains(t, out, "FAIL")
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(manor)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.board"), data, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.board"), []byte(walledCellar), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	code, out, _ := runCheck(t, "-board", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "a.board: 14x10")
	assert.Contains(t, out, "b.board: 5x4")
	assert.Contains(t, out, "FAIL Miss Scarlett at (2,0) cannot reach Cellar")
}

func TestRun_Summary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manor.yaml")
	code, out, errOut := runCheck(t, "-board", manor, "-summary", path, "-seed", "11")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "summary written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got struct {
		Width int `yaml:"width"`
		Rooms []struct {
			Name    string `yaml:"name"`
			Passage string `yaml:"passage"`
			Weapon  string `yaml:"weapon"`
		} `yaml:"rooms"`
	}
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 14, got.Width)
	require.Len(t, got.Rooms, 4)
	weapons := 0
	passages := make(map[string]string)
	for _, r := range got.Rooms {
		if r.Weapon != "" {
			weapons++
		}
		passages[r.Name] = r.Passage
	}
	assert.Equal(t, 3, weapons)
	assert.Equal(t, "Kitchen", passages["Dining Room"])
	assert.Equal(t, "Dining Room", passages["Kitchen"])
	assert.Empty(t, passages["Ballroom"])
}

func TestRun_PlanToRoom(t *testing.T) {
	code, out, errOut := runCheck(t, "-board", manor, "-plan", "s:Lounge", "-roll", "d6+20", "-seed", "5")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "(Miss Scarlett) rolls d6+20")
	assert.Contains(t, out, "(Miss Scarlett) moves")
	assert.Contains(t, out, "to Lounge")
}

func TestRun_PlanToPoint(t *testing.T) {
	code, out, errOut := runCheck(t, "-board", manor, "-plan", "m:0,5", "-roll", "1d2+10")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "(Colonel Mustard) moves")
	assert.Contains(t, out, "to (0,5)")
}

func TestRun_PlanOutOfReach(t *testing.T) {
	code, out, errOut := runCheck(t, "-board", manor, "-plan", "m:13,9", "-roll", "1d2-1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "no move reaches 13,9")
}

func TestRun_PlanErrors(t *testing.T) {
	cases := map[string][]string{
		"bad syntax":      {"-plan", "Kitchen"},
		"unknown suspect": {"-plan", "z:1,1"},
		"unknown target":  {"-plan", "s:Attic"},
		"bad roll":        {"-plan", "s:1,1", "-roll", "many"},
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, _ := runCheck(t, append([]string{"-board", manor}, extra...)...)
			assert.Equal(t, 1, code)
			assert.Contains(t, out, "FAIL")
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	code, _, errOut := runCheck(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "usage: boardcheck")

	code, _, errOut = runCheck(t, "-board", filepath.Join(t.TempDir(), "missing.board"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "reading board path")

	code, _, _ = runCheck(t, "-nope")
	assert.Equal(t, 2, code)
}

func TestRun_EmptyDirectory(t *testing.T) {
	code, _, errOut := runCheck(t, "-board", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no .board files")
}

func TestRun_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.board")
	require.NoError(t, os.WriteFile(path, []byte("---\nrooms:\n"), 0644))
	code, _, errOut := runCheck(t, "-board", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "loading board file")
}

func TestParsePlan(t *testing.T) {
	id, target, err := parsePlan("s: Dining Room")
	require.NoError(t, err)
	assert.Equal(t, 's', id)
	assert.Equal(t, "Dining Room", target)

	for _, bad := range []string{"", "s", "sm:1,1", "s:", "s:  "} {
		_, _, err := parsePlan(bad)
		assert.ErrorIs(t, err, errPlanSyntax, bad)
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 4, p.Y)

	_, err = parsePoint("3")
	assert.ErrorIs(t, err, errPlanSyntax)
	_, err = parsePoint("a,4")
	assert.Error(t, err)
	_, err = parsePoint("3,b")
	assert.Error(t, err)
}
