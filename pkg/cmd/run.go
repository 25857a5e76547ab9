package cmd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

type Job func(context.Context) error

var errJobCompleted = errors.New("job completed")

func MustRun(ctx context.Context, logger log.Logger, jobs ...Job) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run starts the jobs and waits until the first of them returns, then cancels the others.
func Run(ctx context.Context, logger log.Logger, jobs ...Job) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		group.Go(func() error {
			err := job(groupCtx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errJobCompleted
			}

			logger.WithError(err).Error(groupCtx, "running job completed with error")
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, errJobCompleted) {
		return nil
	}

	return err
}
