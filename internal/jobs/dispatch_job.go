package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs a dispatch every five seconds.
const DefaultDispatchSchedule = "*/5 * * * * *"

// Dispatcher pairs one assignable order with an idle rider.
// commands.DispatchOrderCommandHandler implements it.
type Dispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchOrderCommand) (commands.DispatchResult, error)
}

// DispatchJob assigns riders to waiting orders on a cron schedule.
type DispatchJob struct {
	handler  Dispatcher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchJob creates a dispatch job. An empty schedule falls back to
// DefaultDispatchSchedule; schedules carry a seconds field.
func NewDispatchJob(handler Dispatcher, schedule string, logger *slog.Logger) *DispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	return &DispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_job"),
	}
}

// Start schedules the job. It fails on an unparsable schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single dispatch. It reports whether an order was assigned.
func (j *DispatchJob) RunOnce(ctx context.Context) bool {
	res, err := j.handler.Handle(ctx, commands.NewDispatchOrderCommand())
	if err != nil {
		// Nothing to do or a lost race with a manual accept.
		if isExpected(err) {
			j.logger.DebugContext(ctx, "Nothing dispatched", "reason", err)
			return false
		}
		j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
		return false
	}

	j.logger.InfoContext(ctx, "Order dispatched", "orderID", res.OrderID, "riderID", res.RiderID)
	return true
}

// Stop stops scheduling and waits for a running dispatch to finish.
func (j *DispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

func isExpected(err error) bool {
	return errors.Is(err, commands.ErrNoOrderFound) ||
		errors.Is(err, commands.ErrNoFreeRidersFound) ||
		errors.Is(err, errs.ErrVersionIsInvalid)
}
