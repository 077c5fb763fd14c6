package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/windpath/internal/editor"
	"github.com/philipparndt/windpath/internal/positions"
	"github.com/philipparndt/windpath/internal/shell"
	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/viewer"
	"github.com/philipparndt/windpath/pkg/waypoint"
	"github.com/spf13/cobra"
)

var (
	editScript  string
	editNoWatch bool
)

var editCmd = &cobra.Command{
	Use:   "edit [positions.json]",
	Short: "Edit waypoints interactively",
	Long: `Open a line-oriented editor on a positions file. Every add, place, move or
delete is written back to the file, and changes made to the file by other
programs are reloaded while the editor runs. Type "help" for the commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editScript, "script", "", "read commands from a file instead of stdin")
	editCmd.Flags().BoolVar(&editNoWatch, "no-watch", false, "do not reload external changes to the positions file")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	shared, err := positions.OpenFile(args[0], logger)
	if err != nil {
		return err
	}
	defer shared.Close()

	store := waypoint.NewStore(waypoint.NewSessionIDGenerator(), logger)
	ed := editor.New(store, shared,
		editor.WithLogger(logger),
		editor.WithPlaceDistance(cfg.Editor.PlaceDistance),
	)
	if err := ed.LoadShared(); err != nil {
		return err
	}

	opts := []shell.Option{shell.WithLogger(logger)}
	if cfg.Watch.Enabled && !editNoWatch {
		reloads, err := shared.Watch(cfg.Watch.Debounce)
		if err != nil {
			return err
		}
		opts = append(opts, shell.WithReloads(reloads))
	}

	var in io.Reader = cmd.InOrStdin()
	if editScript != "" {
		f, err := os.Open(editScript)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	cam := initialCamera(ed.Points())
	sh := shell.New(ed, cam, cmd.OutOrStdout(), opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("editing", "file", shared.Path(), "points", len(ed.Points()))
	if err := sh.Run(ctx, in); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// initialCamera frames the loaded waypoints, or returns the default pose.
func initialCamera(points []waypoint.PathPoint) *viewer.Camera {
	bbox, ok := geometry.BoundsOf(waypoint.Positions(points))
	if !ok {
		return viewer.DefaultCamera()
	}
	return viewer.NewCamera(bbox)
}
