// Package shell is a line-oriented front end for the waypoint editor. Each
// input line is one user action, executed to completion before the next.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philipparndt/windpath/internal/editor"
	"github.com/philipparndt/windpath/internal/positions"
	"github.com/philipparndt/windpath/pkg/analysis"
	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/viewer"
	"github.com/philipparndt/windpath/pkg/waypoint"
)

const helpText = `Commands:
  list                       list points in creation order
  add <x> <y> <z>            add a point
  place                      add a point in front of the camera
  camera <x> <y> <z> [<tx> <ty> <tz>]
                             move the camera, optionally setting its target
  move <id> <x> <y> <z>      move a point
  rm <id>                    delete a point (recomputes the path)
  select <id>|none           select a point or clear the selection
  path                       generate/update the path
  show                       show the last generated path
  help                       show this help
  quit                       leave the editor`

// Shell reads commands and applies them to an editor
type Shell struct {
	editor  *editor.Editor
	camera  *viewer.Camera
	out     io.Writer
	logger  *slog.Logger
	reloads <-chan positions.Reload
}

// Option configures a Shell
type Option func(*Shell)

// WithReloads makes the shell re-initialize the editor whenever the shared
// position file changes.
func WithReloads(reloads <-chan positions.Reload) Option {
	return func(s *Shell) {
		s.reloads = reloads
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a shell writing to out. A nil camera uses viewer.DefaultCamera.
func New(ed *editor.Editor, cam *viewer.Camera, out io.Writer, opts ...Option) *Shell {
	if cam == nil {
		cam = viewer.DefaultCamera()
	}
	s := &Shell{
		editor: ed,
		camera: cam,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes commands from in until EOF, "quit" or ctx is done. Position
// file reloads are applied between commands.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case r := <-s.reloads:
			s.ApplyReload(r)

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := s.Execute(line); quit {
				return nil
			}
		}
	}
}

// ApplyReload re-initializes the editor from externally changed positions
func (s *Shell) ApplyReload(r positions.Reload) {
	if r.Err != nil {
		s.warning("Ignoring changed position file: %v", r.Err)
		return
	}
	if err := s.editor.Load(r.Positions); err != nil {
		s.failure("Could not reload positions: %v", err)
		return
	}
	s.success("Reloaded %d positions from file", len(r.Positions))
}

// Execute runs a single command line and reports whether the shell should stop
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug("command", "name", cmd, "args", args)

	var err error
	switch cmd {
	case "list", "ls":
		s.list()
	case "add":
		err = s.add(args)
	case "place":
		err = s.place()
	case "camera":
		err = s.setCamera(args)
	case "move", "mv":
		err = s.move(args)
	case "rm", "delete":
		err = s.remove(args)
	case "select":
		err = s.selectPoint(args)
	case "path":
		s.header("Path")
		writePath(s.out, s.editor.RecomputePath())
	case "show":
		s.header("Path")
		writePath(s.out, s.editor.Path())
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit":
		return true
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}

	switch {
	case err == nil:
	case errors.Is(err, waypoint.ErrNotFound):
		s.warning("%v", err)
	default:
		s.failure("%v", err)
	}
	return false
}

func (s *Shell) list() {
	points := s.editor.Points()
	selected, _ := s.editor.Selected()
	s.header(fmt.Sprintf("Points (%d)", len(points)))
	writePoints(s.out, points, selected)
}

func (s *Shell) add(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: add <x> <y> <z>")
	}
	pos, err := parseVector(args)
	if err != nil {
		return err
	}
	id, err := s.editor.Add(pos)
	if id != "" {
		s.success("Added %s at %s", id, analysis.FormatVectorShort(pos))
	}
	return err
}

func (s *Shell) place() error {
	id, err := s.editor.Place(s.camera)
	if point, ok := findPoint(s.editor.Points(), id); ok {
		s.success("Placed %s at %s", id, analysis.FormatVectorShort(point.Position))
	}
	return err
}

func (s *Shell) setCamera(args []string) error {
	if len(args) != 3 && len(args) != 6 {
		return fmt.Errorf("usage: camera <x> <y> <z> [<tx> <ty> <tz>]")
	}
	pos, err := parseVector(args[:3])
	if err != nil {
		return err
	}
	target := s.camera.Target
	if len(args) == 6 {
		if target, err = parseVector(args[3:]); err != nil {
			return err
		}
	}
	s.camera.MoveTo(pos)
	s.camera.LookAt(target)
	s.success("Camera at %s looking at %s",
		analysis.FormatVectorShort(s.camera.Position), analysis.FormatVectorShort(s.camera.Target))
	return nil
}

func (s *Shell) move(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: move <id> <x> <y> <z>")
	}
	pos, err := parseVector(args[1:])
	if err != nil {
		return err
	}
	if err := s.editor.Move(args[0], pos); err != nil {
		return err
	}
	s.success("Moved %s to %s", args[0], analysis.FormatVectorShort(pos))
	return nil
}

func (s *Shell) remove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rm <id>")
	}
	if err := s.editor.Delete(args[0]); err != nil {
		return err
	}
	s.success("Deleted %s", args[0])
	writePath(s.out, s.editor.Path())
	return nil
}

func (s *Shell) selectPoint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select <id>|none")
	}
	if strings.EqualFold(args[0], "none") {
		s.editor.Select("")
		s.success("Selection cleared")
		return nil
	}

	s.editor.Select(args[0])
	if _, ok := findPoint(s.editor.Points(), args[0]); !ok {
		s.warning("Selected %s, which does not exist", args[0])
		return nil
	}
	s.success("Selected %s", args[0])
	return nil
}

func findPoint(points []waypoint.PathPoint, id string) (waypoint.PathPoint, bool) {
	for _, p := range points {
		if p.ID == id {
			return p, true
		}
	}
	return waypoint.PathPoint{}, false
}

func parseVector(args []string) (geometry.Vector3, error) {
	components := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q", a)
		}
		components[i] = v
	}
	return geometry.FromSlice(components)
}
