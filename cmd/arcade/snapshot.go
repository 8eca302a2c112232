package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

var (
	flagFrames uint64
	flagPress  string
	flagTrace  bool
	flagYAML   bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <game>",
	Short: "Run a game headless and print the panel",
	Long: `Run a game for a fixed number of frames without waiting and print the
final panel. The same seed, frames and presses always give the same panel.

--press takes comma separated entries of frame:buttons or from-to:buttons,
with buttons joined by '+', counting frames from 0:

  arcade snapshot racing --frames 300 --press 1:action,40-45:action
  arcade snapshot platformer --frames 400 --press 1:action,100-180:right
  arcade snapshot beatem --frames 120 --press 2:action --trace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := applyConfig(args[0]); err != nil {
			return err
		}
		return runSnapshot(cmd.Context(), cmd.OutOrStdout(), logger, snapshotRequest{
			GameID:  args[0],
			Runtime: runtimeConfig(),
			Frames:  flagFrames,
			Press:   flagPress,
			Trace:   flagTrace,
			YAML:    flagYAML,
		})
	},
}

func init() {
	snapshotCmd.Flags().Uint64Var(&flagFrames, "frames", 100, "Number of frames to run")
	snapshotCmd.Flags().StringVar(&flagPress, "press", "", "Button script, e.g. 1:action,10-20:left")
	snapshotCmd.Flags().BoolVar(&flagTrace, "trace", false, "Also print every command and data byte sent")
	snapshotCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print a YAML report instead of text")
}

type snapshotRequest struct {
	GameID  string
	Runtime core.RuntimeConfig
	Frames  uint64
	Press   string
	Trace   bool
	YAML    bool
}

// snapshotReport is the YAML form of a headless run.
type snapshotReport struct {
	Game     string   `yaml:"game"`
	Frames   uint64   `yaml:"frames"`
	Phase    string   `yaml:"phase"`
	Score    int      `yaml:"score"`
	Health   int      `yaml:"health"`
	Won      bool     `yaml:"won"`
	Commands int      `yaml:"commands"`
	Data     int      `yaml:"data"`
	Panel    []string `yaml:"panel"`
	Trace    string   `yaml:"trace,omitempty"`
}

func runSnapshot(ctx context.Context, w io.Writer, logger *log.Logger, req snapshotRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if req.Frames == 0 {
		// a zero limit would never stop
		return fmt.Errorf("--frames must be positive")
	}

	game, err := registry.Create(req.GameID)
	if err != nil {
		return err
	}
	script, err := core.ParseScript(req.Press)
	if err != nil {
		return fmt.Errorf("--press: %w", err)
	}

	game.Reset(req.Runtime)
	ctrl := oled.NewController()
	var bus oled.Bus = ctrl
	var rec *oled.Recorder
	if req.Trace {
		rec = oled.NewRecorder(ctrl)
		bus = rec
	}

	loop := engine.NewLoop(game, oled.NewDisplay(bus, oled.WithLogger(logger)), script,
		engine.WithPacer(engine.NewPacer(0)),
		engine.WithMaxFrames(req.Frames),
		engine.WithLoopLogger(logger),
	)
	if err := loop.Run(ctx); err != nil {
		return err
	}

	st := loop.Last().State
	screen := core.NewScreenFor(ctrl)
	screen.Plot(0, 0, ctrl)
	commands, data := ctrl.Stats()

	report := snapshotReport{
		Game:     game.ID(),
		Frames:   loop.Frames(),
		Phase:    st.Phase.String(),
		Score:    st.Score,
		Health:   st.Health,
		Won:      st.Won,
		Commands: commands,
		Data:     data,
	}
	for y := 0; y < screen.Height(); y++ {
		report.Panel = append(report.Panel, screen.Row(y))
	}
	if rec != nil {
		report.Trace = rec.Trace()
	}

	if req.YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s after %d frames: %s, score %d, health %d, won %t\n",
		report.Game, report.Frames, report.Phase, report.Score, report.Health, report.Won)
	fmt.Fprintf(w, "bus: %d commands, %d data bytes\n", commands, data)
	framed := core.NewScreen(screen.Width()+2, screen.Height()+2)
	framed.DrawBox(core.NewRect(0, 0, framed.Width(), framed.Height()))
	framed.DrawText(2, 0, " "+game.Title()+" ")
	framed.Plot(1, 1, ctrl)
	fmt.Fprintln(w, framed.String())
	if rec != nil {
		fmt.Fprintln(w, report.Trace)
	}
	return nil
}
