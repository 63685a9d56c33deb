// Command boardcheck loads board descriptions, reports their geometry and
// checks that every room can be reached from every starting square.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"

	"github.com/cory-johannsen/cluedo/internal/config"
	"github.com/cory-johannsen/cluedo/internal/game/board"
	"github.com/cory-johannsen/cluedo/internal/game/boardfile"
	"github.com/cory-johannsen/cluedo/internal/game/dice"
	"github.com/cory-johannsen/cluedo/internal/game/pathfind"
	"github.com/cory-johannsen/cluedo/internal/game/session"
	"github.com/cory-johannsen/cluedo/internal/observability"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
	header    = color.New(color.FgWhite, color.Bold)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	boardPath  string
	summary    string
	plan       string
	roll       string
	seed       uint64
}

// run executes boardcheck and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	var opts options
	fs := flag.NewFlagSet("boardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to configuration file (optional)")
	fs.StringVar(&opts.boardPath, "board", "", "board file or directory; overrides board.path")
	fs.StringVar(&opts.summary, "summary", "", "write a YAML summary of the board to this file")
	fs.StringVar(&opts.plan, "plan", "", "preview a move: <suspect>:<x>,<y> or <suspect>:<room name>")
	fs.StringVar(&opts.roll, "roll", "", "dice expression for the previewed move; defaults to planner.default_roll")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for dice and weapon placement; 0 uses crypto/rand")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}
	if opts.boardPath != "" {
		cfg.Board.Path = opts.boardPath
	}
	if opts.roll == "" {
		opts.roll = cfg.Planner.DefaultRoll
	}
	if cfg.Board.Path == "" {
		fmt.Fprintln(stderr, "usage: boardcheck -board <file|dir> [-config <file>] [-summary <file>] [-plan <suspect>:<target>] [-roll <expr>] [-seed <n>]")
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	defs, err := loadBoards(cfg.Board, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if len(defs) == 0 {
		fmt.Fprintf(stderr, "error: no %s files in %s\n", boardfile.FileExt, cfg.Board.Path)
		return 1
	}
	if (opts.summary != "" || opts.plan != "") && len(defs) > 1 {
		fmt.Fprintln(stderr, "error: -summary and -plan need a single board file")
		return 1
	}

	var src dice.Source = dice.NewCryptoSource()
	if opts.seed != 0 {
		src = dice.NewSeededSource(opts.seed)
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := false
	for _, name := range names {
		c := &checker{
			name:   name,
			def:    defs[name],
			cfg:    cfg,
			src:    src,
			out:    stdout,
			logger: logger,
		}
		if !c.check(opts) {
			failed = true
		}
	}

	logger.Info("boardcheck finished",
		zap.Int("boards", len(defs)),
		zap.Bool("failed", failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failed {
		return 1
	}
	return 0
}

// loadBoards reads cfg.Path as a single file or a directory of boards.
func loadBoards(cfg config.BoardConfig, logger *zap.Logger) (map[string]*board.Definition, error) {
	opts := []boardfile.Option{
		boardfile.WithDelimiter(cfg.DelimiterRune()),
		boardfile.WithLogger(logger),
	}
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("reading board path: %w", err)
	}
	if info.IsDir() {
		return boardfile.LoadDir(cfg.Path, opts...)
	}
	def, err := boardfile.LoadFile(cfg.Path, opts...)
	if err != nil {
		return nil, err
	}
	return map[string]*board.Definition{filepath.Base(cfg.Path): def}, nil
}

type checker struct {
	name   string
	def    *board.Definition
	cfg    config.Config
	src    dice.Source
	out    io.Writer
	logger *zap.Logger
}

func (c *checker) check(opts options) bool {
	header.Fprintf(c.out, "%s: %dx%d, %d rooms, %d suspects, %d weapons\n",
		c.name, c.def.Width, c.def.Height, len(c.def.Rooms), len(c.def.Suspects), len(c.def.Weapons))

	ok := true
	if err := c.def.PlaceWeapons(c.src); err != nil {
		failColor.Fprintf(c.out, "  FAIL %v\n", err)
		ok = false
	}
	c.renderRooms()

	b := board.New(c.def,
		board.WithOccupancyBlocking(c.cfg.Movement.BlockOccupied),
		board.WithLogger(c.logger),
	)
	if !c.checkReachability(b) {
		ok = false
	}

	if opts.summary != "" {
		if err := c.writeSummary(opts.summary); err != nil {
			failColor.Fprintf(c.out, "  FAIL %v\n", err)
			ok = false
		} else {
			infoColor.Fprintf(c.out, "  summary written to %s\n", opts.summary)
		}
	}
	if opts.plan != "" {
		if err := c.preview(b, opts.plan, opts.roll); err != nil {
			failColor.Fprintf(c.out, "  FAIL %v\n", err)
			ok = false
		}
	}
	c.def.ClearWeapons()
	return ok
}

func (c *checker) renderRooms() {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetTitle(c.name)
	t.AppendHeader(table.Row{"ID", "Room", "Cells", "Box", "Doors", "Passage", "Weapon"})
	for _, r := range c.def.RoomList() {
		box := r.BoundingBox()
		doors := make([]string, 0, len(r.Doors()))
		for _, d := range r.Doors() {
			kind := "h"
			if d.Vertical {
				kind = "v"
			}
			doors = append(doors, kind+d.Location.String())
		}
		passage := ""
		if exit := r.PassageExit(); exit != nil {
			passage = exit.Name
		}
		weapon := ""
		if w := r.Weapon(); w != nil {
			weapon = w.Name
		}
		t.AppendRow(table.Row{
			string(r.ID),
			r.Name,
			r.Size(),
			fmt.Sprintf("%dx%d at (%d,%d)", box.Width(), box.Height(), box.MinX, box.MinY),
			strings.Join(doors, " "),
			passage,
			weapon,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// checkReachability reports, per suspect, the rooms its start cannot reach.
func (c *checker) checkReachability(b *board.Board) bool {
	ok := true
	rooms := c.def.RoomList()
	for _, s := range c.def.SuspectList() {
		start, placed := s.Start()
		if !placed {
			failColor.Fprintf(c.out, "  FAIL %s has no starting square\n", s.Name)
			ok = false
			continue
		}
		reached := pathfind.ReachableRooms(b, start)
		if len(reached) == len(rooms) {
			okColor.Fprintf(c.out, "  ok   %s at %s reaches all %d rooms\n", s.Name, start, len(rooms))
			continue
		}
		ok = false
		failColor.Fprintf(c.out, "  FAIL %s at %s cannot reach %s\n", s.Name, start, strings.Join(missing(rooms, reached), ", "))
	}
	return ok
}

func missing(all, reached []*board.Room) []string {
	have := make(map[*board.Room]bool, len(reached))
	for _, r := range reached {
		have[r] = true
	}
	var out []string
	for _, r := range all {
		if !have[r] {
			out = append(out, r.Name)
		}
	}
	return out
}

func (c *checker) writeSummary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary: %w", err)
	}
	if err := boardfile.WriteSummary(f, c.def); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing summary: %w", err)
	}
	return f.Close()
}

// preview rolls for a move, plans it and replays it through the board.
func (c *checker) preview(b *board.Board, arg, roll string) error {
	suspect, target, err := parsePlan(arg)
	if err != nil {
		return err
	}
	if _, ok := c.def.SuspectsByID[suspect]; !ok {
		return fmt.Errorf("no suspect %q on %s", suspect, c.name)
	}

	roster := session.NewManager()
	for i, s := range c.def.SuspectList() {
		if _, placed := s.Start(); !placed {
			return fmt.Errorf("%s has no starting square", s.Name)
		}
		if _, err := roster.Add(fmt.Sprintf("Player %d", i+1), s); err != nil {
			return err
		}
	}
	roster.PlaceAll(b)
	defer b.ClearPlayers()
	mover, _ := roster.BySuspect(suspect)

	moves, res, err := dice.NewRoller(c.src, c.logger).Movement(roll)
	if err != nil {
		return err
	}
	infoColor.Fprintf(c.out, "  %s rolls %s\n", mover, res)

	from, _ := b.PlayerLocation(mover)
	planner := pathfind.NewPlanner(b, c.logger)
	var path *pathfind.MovePath
	if room, ok := c.def.Rooms[target]; ok {
		path = planner.CalculateToRoom(from, mover.Room(), room, moves)
	} else {
		goal, err := parsePoint(target)
		if err != nil {
			return err
		}
		path = planner.Calculate(from, mover.Room(), goal, moves)
	}
	if path == nil {
		infoColor.Fprintf(c.out, "  no move reaches %s with %d moves\n", target, moves)
		return nil
	}

	if err := path.Apply(b, mover); err != nil {
		return fmt.Errorf("replaying planned move: %w", err)
	}
	end, _ := b.PlayerLocation(mover)
	where := end.String()
	if r := mover.Room(); r != nil {
		where = r.Name
	}
	okColor.Fprintf(c.out, "  ok   %s moves %s (%d of %d) to %s\n",
		mover, board.FormatDirections(path.Directions()), path.Cost(), moves, where)
	return nil
}

var errPlanSyntax = errors.New("-plan must look like s:3,4 or s:Kitchen")

func parsePlan(arg string) (rune, string, error) {
	id, target, ok := strings.Cut(arg, ":")
	if !ok || len([]rune(id)) != 1 || strings.TrimSpace(target) == "" {
		return 0, "", errPlanSyntax
	}
	return []rune(id)[0], strings.TrimSpace(target), nil
}

func parsePoint(s string) (board.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return board.Point{}, fmt.Errorf("unknown room or point %q: %w", s, errPlanSyntax)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Point{}, fmt.Errorf("parsing x of %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Point{}, fmt.Errorf("parsing y of %q: %w", s, err)
	}
	return board.Point{X: x, Y: y}, nil
}
