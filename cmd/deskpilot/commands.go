// Package main runs the DeskPilot server and its one-shot commands.
package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frudas24/deskpilot/internal/app"
	"github.com/frudas24/deskpilot/internal/command"
	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/sequence"
)

// withApp bootstraps a system App for a one-shot command.
func withApp(fn func(a *app.App) error) error {
	a, _, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	return fn(a)
}

// newClickCmd clicks once at a screen position.
func newClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click X Y",
		Short: "Move to X,Y and left-click",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseInts(args)
			if err != nil {
				return err
			}
			return withApp(func(a *app.App) error {
				msg, err := a.Sequencer().ClickPosition(xy[0], xy[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
}

// newMoveCmd performs a piece move between two squares.
func newMoveCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "move FX FY TX TY",
		Short: "Move a piece by drag or two clicks",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			var gesture sequence.GestureMode
			if mode != "" {
				if gesture, err = sequence.ParseMode(mode); err != nil {
					return err
				}
			}
			move := geom.MoveCommand{
				From: geom.Position{X: v[0], Y: v[1]},
				To:   geom.Position{X: v[2], Y: v[3]},
			}
			return withApp(func(a *app.App) error {
				msg, err := a.Sequencer().ExecuteMoveWithMode(move, gesture)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "gesture mode: drag or two_click (default from GESTURE_MODE)")
	return cmd
}

// newPositionCmd prints the current pointer position.
func newPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position",
		Short: "Print the pointer position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app.App) error {
				pos, err := a.Sequencer().MousePosition()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), pos)
				return nil
			})
		},
	}
}

// newCaptureCmd groups the screenshot subcommands.
func newCaptureCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture the screen as base64 PNG (or a file with --out)",
	}
	cmd.PersistentFlags().StringVarP(&out, "out", "o", "", "write the decoded PNG to this path instead of printing base64")

	cmd.AddCommand(&cobra.Command{
		Use:   "region X1 Y1 X2 Y2",
		Short: "Capture the rectangle between two corners",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			area := geom.BoardArea{
				TopLeft:     geom.Position{X: v[0], Y: v[1]},
				BottomRight: geom.Position{X: v[2], Y: v[3]},
			}
			return withApp(func(a *app.App) error {
				data, err := a.Capture().CaptureRegion(area)
				if err != nil {
					return err
				}
				return emitCapture(cmd.OutOrStdout(), data, out)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "full",
		Short: "Capture the full screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app.App) error {
				data, err := a.Capture().CaptureFullScreen()
				if err != nil {
					return err
				}
				return emitCapture(cmd.OutOrStdout(), data, out)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "board",
		Short: "Capture the calibrated board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app.App) error {
				area, ok := a.Session().Board()
				if !ok {
					return errors.New("no board calibrated; POST /api/board first")
				}
				data, err := a.Capture().CaptureRegion(area)
				if err != nil {
					return err
				}
				return emitCapture(cmd.OutOrStdout(), data, out)
			})
		},
	})
	return cmd
}

// newClipboardCmd prints the clipboard text.
func newClipboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clipboard",
		Short: "Print the clipboard text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app.App) error {
				resp := a.Dispatcher().Handle(command.Request{Op: command.OpGetClipboardText})
				if !resp.OK {
					return fmt.Errorf("%s: %s", resp.Error.Kind, resp.Error.Message)
				}
				text, _ := resp.Result.(string)
				_, err := io.WriteString(cmd.OutOrStdout(), text)
				return err
			})
		},
	}
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) must be an integer", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}

// emitCapture prints base64 or writes the decoded PNG to path.
func emitCapture(w io.Writer, data, path string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, data)
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %d bytes to %s\n", len(raw), path)
	return nil
}
