package jobs

import (
	"context"
	"errors"
	"log/slog"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DispatchableOrders reads the next order waiting for a driver.
type DispatchableOrders interface {
	// GetOldestDispatchable returns the oldest unassigned order that has a
	// source address, or nil when none is waiting.
	GetOldestDispatchable(ctx context.Context) (*order.Order, error)
}

// DispatchJob periodically assigns the oldest waiting order to the nearest
// idle driver. An empty queue and an empty driver pool are expected business
// outcomes, not failures.
type DispatchJob struct {
	orders  DispatchableOrders
	handler commands.AssignDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a job that dispatches waiting orders every five seconds.
func NewDispatchJob(
	orders DispatchableOrders,
	handler commands.AssignDriverCommandHandler,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		orders:  orders,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("dispatch job stopped")
}

func (j *DispatchJob) runOnce(ctx context.Context) {
	waiting, err := j.orders.GetOldestDispatchable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "could not read dispatchable orders", "error", err)
		return
	}
	if waiting == nil {
		return
	}

	cmd, err := commands.NewAssignDriverCommand(waiting.ID())
	if err != nil {
		j.logger.ErrorContext(ctx, "invalid dispatch command", "orderId", waiting.ID(), "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		if !errors.Is(err, services.ErrNoAvailableDrivers) {
			j.logger.ErrorContext(ctx, "dispatch failed", "orderId", waiting.ID(), "error", err)
		}
		return
	}

	j.logger.InfoContext(ctx, "order dispatched",
		"orderId", result.OrderID,
		"driverId", result.DriverID,
		"distanceMeters", result.DistanceMeters,
	)
}
