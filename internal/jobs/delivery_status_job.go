package jobs

import (
	"context"
	"log/slog"

	"cherry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryStatusJob manages the nightly delivery status sweep.
// Runs every day at midnight to complete shipped orders the carrier has
// delivered.
type DeliveryStatusJob struct {
	handler commands.CompleteDeliveredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStatusJob creates a new job for the delivery status sweep.
// Uses CompleteDeliveredOrdersCommandHandler to check every shipped order
// against the carrier once a day.
func NewDeliveryStatusJob(handler commands.CompleteDeliveredOrdersCommandHandler, logger *slog.Logger) *DeliveryStatusJob {
	return &DeliveryStatusJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_status_job"),
	}
}

// Start schedules the sweep to run daily at midnight.
func (j *DeliveryStatusJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewCompleteDeliveredOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery status sweep failed", "error", cmdErr)
			return
		}

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery status sweep failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Delivery status sweep finished",
			"checked", report.Checked,
			"updated", report.Updated,
			"errors", report.Failed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery status job started (running daily at midnight)")
	return nil
}

// Stop stops the delivery status job.
func (j *DeliveryStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery status job stopped")
}
