package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/internal/editor"
	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/internal/script"
	"github.com/philipparndt/gogeo/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	replayOut    string
	replayWidth  int
	replayHeight int
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay an input script headlessly and render the result to PNG",
	Long: `Replay feeds the events of a YAML input script into a fresh editor session
and renders the final scene with the software rasterizer.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "scene.png", "PNG file to write")
	replayCmd.Flags().IntVar(&replayWidth, "width", 0, "image width in pixels (default: script viewport, then window size)")
	replayCmd.Flags().IntVar(&replayHeight, "height", 0, "image height in pixels (default: script viewport, then window size)")
	rootCmd.AddCommand(replayCmd)
}

// replayScript runs the script at path in a new session built from cfg
func replayScript(cfg config.Config, path string) (*editor.Editor, viewer.Viewport, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, viewer.Viewport{}, err
	}
	vp := s.ViewportOr(cfg.Viewport())

	e := editor.New(editor.WithCamera(cfg.NewCamera()))
	changes := script.Replay(e, s, vp, applog.WithComponent("script"))
	applog.L().Debug("script replayed",
		slog.String("file", path),
		slog.Int("events", len(s.Events)),
		slog.Int("changes", changes))
	return e, vp, nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer applog.Close()
	gg.SetLogger(applog.WithComponent("gg"))

	style, err := cfg.ViewerStyle()
	if err != nil {
		return err
	}

	e, vp, err := replayScript(cfg, args[0])
	if err != nil {
		return err
	}
	if replayWidth > 0 {
		vp.Width = replayWidth
	}
	if replayHeight > 0 {
		vp.Height = replayHeight
	}

	r := viewer.NewRasterRenderer(vp.Width, vp.Height)
	defer r.Close()
	r.Clear(style.Background)
	if err := viewer.DrawScene(r, e.Camera, e.Points, e.Lines, style); err != nil {
		return err
	}
	if err := r.SavePNG(replayOut); err != nil {
		return err
	}

	size := r.Viewport()
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d point(s) and %d line(s) to %s (%dx%d)\n",
		e.Points.Len(), e.Lines.Len(), replayOut, size.Width, size.Height)
	return nil
}
