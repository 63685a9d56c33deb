// Package boardfile reads the text board description format into a
// board.Definition and exports loaded boards as YAML summaries.
//
// A description starts with a "---" header, declares its suspects, rooms,
// passages and weapons in indented groups, then draws the grid between two
// lines of dashes:
//
//	---
//	suspects:
//	  s: Miss Scarlett #ff2400
//	rooms:
//	  K: Kitchen
//	passages:
//	weapons:
//	  - Rope
//	-----
//	KKK..|
//	K_.s.|
//	-----
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/cory-johannsen/cluedo/internal/game/board"
)

// DefaultDelimiter terminates every grid row.
const DefaultDelimiter = '|'

// FileExt is the extension LoadDir looks for.
const FileExt = ".board"

// Grid characters with a fixed meaning. None of them may be used as a room
// or suspect identifier.
const (
	cellVoid           = ' '
	cellCorridor       = '.'
	cellDoorHorizontal = '_'
	cellDoorVertical   = '/'
)

const reservedIDs = " ._/-#"

const (
	groupSuspects = "suspects"
	groupRooms    = "rooms"
	groupPassages = "passages"
	groupWeapons  = "weapons"
)

var requiredGroups = []string{groupRooms, groupSuspects, groupWeapons, groupPassages}

const namePattern = `[A-Za-z0-9.'\-][A-Za-z0-9.'\- ]*?`

var (
	commentRe     = regexp.MustCompile(`^\s*#`)
	groupHeaderRe = regexp.MustCompile(`^([a-z]+):$`)
	dashesRe      = regexp.MustCompile(`^-+$`)
	suspectRe     = regexp.MustCompile(`^\s+(\S)\s*:\s*(` + namePattern + `)\s+\[?(#[0-9A-Fa-f]{6})\]?\s*$`)
	roomRe        = regexp.MustCompile(`^\s+(\S)\s*:\s*(` + namePattern + `)\s*$`)
	passageRe     = regexp.MustCompile(`^\s+(` + namePattern + `)\s*:\s*(` + namePattern + `)\s*$`)
	weaponRe      = regexp.MustCompile(`^\s+-\s+(` + namePattern + `)\s*$`)
)

// Option configures the parser.
type Option func(*parser)

// WithDelimiter sets the character that ends every grid row.
func WithDelimiter(r rune) Option {
	return func(p *parser) { p.delimiter = r }
}

// WithLogger sets the logger parse progress is reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(p *parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

type line struct {
	text string
	no   int
}

type parser struct {
	sc        *bufio.Scanner
	lineNo    int
	pushed    *line
	delimiter rune
	logger    *zap.Logger

	seen      map[string]bool
	ids       map[rune]string
	rooms     map[string]*board.Room
	roomByID  map[rune]*board.Room
	suspects  []*board.Suspect
	suspectBy map[rune]*board.Suspect
	weapons   []*board.Weapon
	passages  int
}

// Parse reads a board description from r.
//
// Postcondition: Returns a validated Definition, a *SyntaxError for a
// malformed description, or a wrapped read error.
func Parse(r io.Reader, opts ...Option) (*board.Definition, error) {
	p := &parser{
		sc:        bufio.NewScanner(r),
		delimiter: DefaultDelimiter,
		logger:    zap.NewNop(),
		seen:      make(map[string]bool),
		ids:       make(map[rune]string),
		rooms:     make(map[string]*board.Room),
		roomByID:  make(map[rune]*board.Room),
		suspectBy: make(map[rune]*board.Suspect),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

// ParseString reads a board description held in a string.
func ParseString(s string, opts ...Option) (*board.Definition, error) {
	return Parse(strings.NewReader(s), opts...)
}

// LoadFile reads a board description from the file at path.
//
// Precondition: path must name a readable file.
// Postcondition: Returns a validated Definition or a non-nil error.
func LoadFile(path string, opts ...Option) (*board.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file %s: %w", path, err)
	}
	defer f.Close()
	def, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading board file %s: %w", path, err)
	}
	return def, nil
}

// LoadDir loads every *.board file in dir, keyed by file name.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all definitions or the first error encountered.
func LoadDir(dir string, opts ...Option) (map[string]*board.Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading board directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != FileExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make(map[string]*board.Definition, len(names))
	for _, name := range names {
		def, err := LoadFile(filepath.Join(dir, name), opts...)
		if err != nil {
			return nil, err
		}
		out[name] = def
	}
	return out, nil
}

func (p *parser) parse() (*board.Definition, error) {
	header, ok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !ok || header.text != "---" {
		return nil, p.errorAt(header, ok, `expected the header line "---"`)
	}

	var gridStart line
	for {
		l, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, syntaxErrorf(0, "no board definition found")
		}
		if dashesRe.MatchString(l.text) {
			gridStart = l
			break
		}
		if err := p.readGroup(l); err != nil {
			return nil, err
		}
	}
	for _, g := range requiredGroups {
		if !p.seen[g] {
			return nil, syntaxErrorf(gridStart.no, "no %s definition found before the board grid", g)
		}
	}
	return p.readGrid(gridStart)
}

// next returns the next non-blank, non-comment line.
func (p *parser) next() (line, bool, error) {
	if p.pushed != nil {
		l := *p.pushed
		p.pushed = nil
		return l, true, nil
	}
	for p.sc.Scan() {
		p.lineNo++
		text := strings.TrimRight(p.sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || commentRe.MatchString(text) {
			continue
		}
		return line{text: text, no: p.lineNo}, true, nil
	}
	if err := p.sc.Err(); err != nil {
		return line{}, false, fmt.Errorf("reading board description: %w", err)
	}
	return line{}, false, nil
}

func (p *parser) pushBack(l line) {
	p.pushed = &l
}

func (p *parser) errorAt(l line, ok bool, msg string) *SyntaxError {
	if !ok {
		return syntaxErrorf(0, "%s", msg)
	}
	return syntaxErrorf(l.no, "%s", msg)
}

func (p *parser) readGroup(header line) error {
	m := groupHeaderRe.FindStringSubmatch(header.text)
	if m == nil {
		return syntaxErrorf(header.no, "expected a group header or the board grid, got %q", header.text)
	}
	name := m[1]
	var entry func(line) error
	switch name {
	case groupSuspects:
		entry = p.suspectEntry
	case groupRooms:
		entry = p.roomEntry
	case groupPassages:
		if !p.seen[groupRooms] {
			return syntaxErrorf(header.no, "passages must be declared after rooms")
		}
		entry = p.passageEntry
	case groupWeapons:
		entry = p.weaponEntry
	default:
		return syntaxErrorf(header.no, "unrecognized group %q", name)
	}
	if p.seen[name] {
		return syntaxErrorf(header.no, "group %q appears more than once", name)
	}
	p.seen[name] = true

	n := 0
	for {
		l, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if l.text[0] != ' ' && l.text[0] != '\t' {
			p.pushBack(l)
			break
		}
		if err := entry(l); err != nil {
			return err
		}
		n++
	}
	p.logger.Debug("group parsed", zap.String("group", name), zap.Int("entries", n))
	return nil
}

func (p *parser) claimID(l line, id rune, owner string) error {
	if strings.ContainsRune(reservedIDs, id) {
		return syntaxErrorf(l.no, "%s cannot use the reserved character %q", owner, id)
	}
	if prev, ok := p.ids[id]; ok {
		return syntaxErrorf(l.no, "%s reuses the identifier %q of %s", owner, id, prev)
	}
	p.ids[id] = owner
	return nil
}

func (p *parser) suspectEntry(l line) error {
	m := suspectRe.FindStringSubmatch(l.text)
	if m == nil {
		return syntaxErrorf(l.no, "couldn't parse suspect entry %q", strings.TrimSpace(l.text))
	}
	id := []rune(m[1])[0]
	name := m[2]
	for _, s := range p.suspects {
		if s.Name == name {
			return syntaxErrorf(l.no, "suspect %q is declared more than once", name)
		}
	}
	if err := p.claimID(l, id, fmt.Sprintf("suspect %q", name)); err != nil {
		return err
	}
	c, err := colorful.Hex(strings.ToLower(m[3]))
	if err != nil {
		return syntaxErrorf(l.no, "suspect %q has an invalid colour %q", name, m[3])
	}
	s := board.NewSuspect(id, name, c)
	p.suspects = append(p.suspects, s)
	p.suspectBy[id] = s
	return nil
}

func (p *parser) roomEntry(l line) error {
	m := roomRe.FindStringSubmatch(l.text)
	if m == nil {
		return syntaxErrorf(l.no, "couldn't parse room entry %q", strings.TrimSpace(l.text))
	}
	id := []rune(m[1])[0]
	name := m[2]
	if _, ok := p.rooms[name]; ok {
		return syntaxErrorf(l.no, "room %q is declared more than once", name)
	}
	if err := p.claimID(l, id, fmt.Sprintf("room %q", name)); err != nil {
		return err
	}
	r := board.NewRoom(id, name)
	p.rooms[name] = r
	p.roomByID[id] = r
	return nil
}

func (p *parser) passageEntry(l line) error {
	m := passageRe.FindStringSubmatch(l.text)
	if m == nil {
		return syntaxErrorf(l.no, "couldn't parse passage entry %q", strings.TrimSpace(l.text))
	}
	from, okFrom := p.rooms[m[1]]
	to, okTo := p.rooms[m[2]]
	if !okFrom || !okTo {
		return syntaxErrorf(l.no, "passage from %q to %q names an unknown room", m[1], m[2])
	}
	if from == to {
		return syntaxErrorf(l.no, "passage from %q leads back to itself", m[1])
	}
	if exit := from.PassageExit(); exit != nil {
		return syntaxErrorf(l.no, "room %q already has a secret passage to %q", from.Name, exit.Name)
	}
	from.SetPassageExit(to)
	p.passages++
	return nil
}

func (p *parser) weaponEntry(l line) error {
	m := weaponRe.FindStringSubmatch(l.text)
	if m == nil {
		return syntaxErrorf(l.no, "couldn't parse weapon entry %q", strings.TrimSpace(l.text))
	}
	for _, w := range p.weapons {
		if w.Name == m[1] {
			return syntaxErrorf(l.no, "weapon %q is declared more than once", m[1])
		}
	}
	p.weapons = append(p.weapons, &board.Weapon{Name: m[1]})
	return nil
}

func (p *parser) readGrid(start line) (*board.Definition, error) {
	width := len(start.text)
	closing := start.text
	delim := string(p.delimiter)

	var corridors []board.Point
	y := 0
	for {
		l, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, syntaxErrorf(0, "board grid is never closed: expected a line of exactly %d dashes", width)
		}
		if l.text == closing {
			break
		}
		if dashesRe.MatchString(l.text) {
			return nil, syntaxErrorf(l.no, "the board must be closed by exactly %d dashes", width)
		}
		if !strings.HasSuffix(l.text, delim) {
			return nil, syntaxErrorf(l.no, "each row of the board must end with %q", p.delimiter)
		}
		row := []rune(strings.TrimSuffix(l.text, delim))
		if len(row) != width {
			return nil, syntaxErrorf(l.no, "each row of the board must be exactly %d characters long, got %d", width, len(row))
		}
		for x, c := range row {
			pt := board.Point{X: x, Y: y}
			switch c {
			case cellVoid:
			case cellCorridor:
				corridors = append(corridors, pt)
			case cellDoorHorizontal, cellDoorVertical:
				r := p.doorRoom(row, x)
				if r == nil {
					return nil, syntaxErrorf(l.no, "couldn't find room connected to door at %s", pt)
				}
				r.AddDoor(pt, c == cellDoorVertical)
			default:
				if r, ok := p.roomByID[c]; ok {
					r.AddPoint(pt)
					continue
				}
				s, ok := p.suspectBy[c]
				if !ok {
					return nil, syntaxErrorf(l.no, "unknown character %q on board at %s", c, pt)
				}
				if prev, placed := s.Start(); placed {
					return nil, syntaxErrorf(l.no, "suspect %q appears on the board at %s and %s", s.Name, prev, pt)
				}
				s.SetStart(pt)
				corridors = append(corridors, pt)
			}
		}
		y++
	}
	if y == 0 {
		return nil, syntaxErrorf(start.no, "the board grid has no rows")
	}
	if l, ok, err := p.next(); err != nil {
		return nil, err
	} else if ok {
		return nil, syntaxErrorf(l.no, "unexpected content after the board grid: %q", l.text)
	}

	def := board.NewDefinition(width, y)
	for _, pt := range corridors {
		def.Corridors.Add(pt)
	}
	for _, r := range p.rooms {
		def.AddRoom(r)
	}
	for _, s := range p.suspects {
		def.AddSuspect(s)
	}
	for _, w := range p.weapons {
		def.AddWeapon(w)
	}
	if err := def.Validate(); err != nil {
		return nil, syntaxErrorf(0, "%v", err)
	}
	p.logger.Debug("board parsed",
		zap.Int("width", def.Width),
		zap.Int("height", def.Height),
		zap.Int("rooms", len(def.Rooms)),
		zap.Int("suspects", len(def.Suspects)),
		zap.Int("weapons", len(def.Weapons)),
		zap.Int("passages", p.passages),
		zap.Int("corridors", def.Corridors.Len()),
	)
	return def, nil
}

// doorRoom returns the room whose identifier is left of x on the row, or
// failing that right of it.
func (p *parser) doorRoom(row []rune, x int) *board.Room {
	if x > 0 {
		if r, ok := p.roomByID[row[x-1]]; ok {
			return r
		}
	}
	if x+1 < len(row) {
		if r, ok := p.roomByID[row[x+1]]; ok {
			return r
		}
	}
	return nil
}
