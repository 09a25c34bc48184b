package render

import (
	"context"
	"fmt"
	"io"

	"github.com/ironsheep/ftmap/internal/config"
	"github.com/ironsheep/ftmap/internal/scenario"
)

// RenderData parses a data file from r and renders it with the colours and
// limits of res, replacing opts.Palette and opts.Limits. A nil res uses the
// defaults.
func RenderData(ctx context.Context, r io.Reader, res *config.Resource, opts Options) (*scenario.Scenario, *Result, error) {
	if res == nil {
		res = &config.Resource{}
	}
	pal, err := res.Palette(opts.Bitonal)
	if err != nil {
		return nil, nil, fmt.Errorf("resource: %w", err)
	}
	lim := res.Limits.WithDefaults()

	s, err := scenario.Parse(r, scenario.Limits{Classes: lim.Classes, Objects: lim.Objects})
	if err != nil {
		return nil, nil, fmt.Errorf("data file: %w", err)
	}

	opts.Palette = pal
	opts.Limits = lim
	result, err := Render(ctx, s, opts)
	if err != nil {
		return s, nil, err
	}
	return s, result, nil
}
