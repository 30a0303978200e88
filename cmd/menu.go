package cmd

import (
	"context"
	"io"

	"flight-seating/internal/adaptor"

	"go.uber.org/zap"
)

// RunMenu drives the interactive session until the passenger quits or input ends.
func RunMenu(ctx context.Context, menu *adaptor.MenuHandler, in io.Reader, out io.Writer, logger *zap.Logger) error {
	logger.Info("Menu session started")
	if err := menu.Run(ctx, in, out); err != nil {
		logger.Error("Menu session ended with error", zap.Error(err))
		return err
	}
	logger.Info("Menu session ended")
	return nil
}
