package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

// HandleAppPanic logs the value returned by recover, which must be called by the deferred function itself.
func HandleAppPanic(ctx context.Context, logger log.Logger, recovered any) (panicCaught bool) {
	if recovered == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", recovered),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
