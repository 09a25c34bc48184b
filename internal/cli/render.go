package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/ftmap/internal/config"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config.Options
	resource string // TOML resource file with colours and limits
}

// newRenderCmd creates the render command. The data file is read from the
// named file, or from stdin when the name is omitted or "-".
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a data file to a map image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name := cmd.InOrStdin(), "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open data file: %w", err)
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return runRender(cmd.Context(), in, name, &opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.Resample, "resample", "a", false, "filter sprites when scaling and rotating")
	f.BoolVarP(&opts.Bitonal, "bitonal", "b", false, "black on white map without background image")
	f.BoolVarP(&opts.Debug, "debug", "d", false, "outline every registered clash box")
	f.StringVarP(&opts.Output, "output", "f", imaging.DefaultOutput, "output file; the extension selects gif, png or jpg")
	f.BoolVarP(&opts.Grid, "grid", "g", false, "draw grid lines every ten map units")
	f.StringVarP(&opts.ImageDir, "image-dir", "i", "", "directory sprite and background images are read from")
	f.BoolVarP(&opts.Legend, "legend", "l", false, "draw the class legend")
	f.StringVarP(&opts.resource, "resource", "r", "", "TOML resource file with map colours and limits")
	f.BoolVarP(&opts.RealThrust, "real-thrust", "t", false, "headings in degrees with a single forward course leg")
	f.BoolVarP(&opts.Wallpaper, "wallpaper", "w", false, "tile the background image instead of stretching it")

	return cmd
}

func runRender(ctx context.Context, in io.Reader, name string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res, err := config.LoadResource(opts.resource)
	if err != nil {
		return err
	}

	s, result, err := render.RenderData(ctx, in, res, render.Options{
		Options: opts.Options,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("rendered", "title", s.Title, "classes", len(s.Classes), "objects", len(s.Objects), "clash_boxes", len(result.Boxes))

	if err := imaging.Save(opts.Output, result.Image, result.Quantizer); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d objects to %s", len(s.Objects), outputName(opts.Output)))
	return nil
}

func outputName(name string) string {
	if name == "" {
		return imaging.DefaultOutput
	}
	return name
}
