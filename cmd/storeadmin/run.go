package main

import (
	"context"
	"fmt"
	"os"
)

type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts app and blocks until ctx is cancelled or app requests shutdown.
func run(ctx context.Context, app lifecycle) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start storeadmin: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("stop storeadmin: %w", err)
	}
	return nil
}
