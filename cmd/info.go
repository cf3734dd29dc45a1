package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/gogeo/internal/editor"
	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [script]",
	Short: "Replay an input script and print the resulting scene",
	Long:  "Show every point and every line (implicit and parametric form) the script produces.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer applog.Close()

	e, _, err := replayScript(cfg, args[0])
	if err != nil {
		return err
	}
	printScene(cmd.OutOrStdout(), args[0], e)
	return nil
}

func printScene(w io.Writer, name string, e *editor.Editor) {
	fmt.Fprintln(w, "Scene Information")
	fmt.Fprintln(w, "=================")
	fmt.Fprintf(w, "Script: %s\n", name)
	fmt.Fprintf(w, "Mode: %s\n\n", e.Mode())

	fmt.Fprintf(w, "Points (%d):\n", e.Points.Len())
	for i, p := range e.Points.All() {
		fmt.Fprintf(w, "  #%d (%.4f, %.4f)\n", i, p.X, p.Y)
	}

	fmt.Fprintf(w, "\nLines (%d):\n", e.Lines.Len())
	for i, l := range e.Lines.All() {
		fmt.Fprintf(w, "  #%d %s\n", i, l.Implicit())
		fmt.Fprintf(w, "     %s\n", l.Parametric())
	}

	w2, h2 := e.Camera.Window()
	off := e.Camera.Offset()
	fmt.Fprintf(w, "\nCamera: window %.4f x %.4f, offset (%.4f, %.4f)\n", w2, h2, off.X, off.Y)
}
