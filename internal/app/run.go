package app

import (
	"context"
	"fmt"

	"github.com/vk/cube2sphere/internal/ctxlog"
	"github.com/vk/cube2sphere/internal/grid"
	"github.com/vk/cube2sphere/internal/stitch"
)

// Run executes the configured conversion(s): one ad-hoc request, or every
// job in a grid file, serially and in declaration order. The first failure
// aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.GridPath != "" {
		return a.runGrid(ctx)
	}
	return a.convert(ctx, "", a.config.Request)
}

func (a *App) runGrid(ctx context.Context) error {
	jobs, err := grid.Load(ctx, a.config.GridPath, a.config.Request)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Info("Grid loaded.", "jobs", len(jobs))

	for _, job := range jobs {
		if err := a.convert(ctx, job.Name, job.Request); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}
	return nil
}

// convert validates one request and runs it through the renderer. Validation
// happens here, immediately before the subprocess launch, so face existence
// reflects the filesystem at that moment.
func (a *App) convert(ctx context.Context, name string, req stitch.Request) error {
	validated, err := stitch.NewRequest(req)
	if err != nil {
		return err
	}

	logger := a.logger
	if name != "" {
		logger = logger.With("job", name)
	}
	logger.Info("Starting conversion.",
		"output", validated.Output,
		"resolution", fmt.Sprintf("%dx%d", validated.Width, validated.Height),
	)

	result, err := a.renderer.Convert(ctx, validated)
	if err != nil {
		return err
	}

	logger.Info("Conversion finished.", "output", result.OutputPath)
	fmt.Fprintln(a.outW, result.OutputPath)
	return nil
}
