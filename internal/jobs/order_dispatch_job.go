package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled assignment of couriers to orders.
// Runs every second to match the oldest pending order with an available
// courier, covering orders placed while the whole fleet was busy.
type OrderDispatchJob struct {
	handler commands.DispatchOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for dispatching pending orders.
// Uses DispatchOrdersCommandHandler to process one order per tick.
func NewOrderDispatchJob(handler commands.DispatchOrdersCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the order dispatch job to run every second.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoAvailableCouriers) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the order dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
