package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/farm-expense-tracker/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

func TestRun_StopsOtherJobsWhenOneCompletes(t *testing.T) {
	blockingJobCancelled := false
	err := cmd.Run(context.Background(), log.NewStub(),
		func(ctx context.Context) error {
			<-ctx.Done()
			blockingJobCancelled = true
			return ctx.Err()
		},
		func(context.Context) error {
			return nil
		},
	)

	assert.NoError(t, err)
	assert.True(t, blockingJobCancelled)
}

func TestRun_ReturnsJobError(t *testing.T) {
	expected := errors.New("listener failed")
	err := cmd.Run(context.Background(), log.NewStub(),
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		func(context.Context) error {
			return expected
		},
	)

	assert.ErrorIs(t, err, expected)
}

func TestHandleAppPanic(t *testing.T) {
	caught := func() (caught bool) {
		defer func() { caught = cmd.HandleAppPanic(context.Background(), log.NewStub(), recover()) }()
		panic("unexpected")
	}()

	assert.True(t, caught)
	assert.False(t, cmd.HandleAppPanic(context.Background(), log.NewStub(), nil))
}
