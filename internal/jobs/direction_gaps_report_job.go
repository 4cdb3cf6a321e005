package jobs

import (
	"context"
	"log/slog"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DirectionGapsHandler answers the average gaps per direction query.
type DirectionGapsHandler interface {
	Handle(ctx context.Context, query queries.GetAverageGapsPerDirectionQuery) ([]services.AverageGapsInfo, error)
}

// DirectionGapsReportJob periodically logs the average travel time per route.
type DirectionGapsReportJob struct {
	handler  DirectionGapsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDirectionGapsReportJob(handler DirectionGapsHandler, schedule string, logger *slog.Logger) *DirectionGapsReportJob {
	return &DirectionGapsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "direction_gaps_report_job"),
	}
}

// Run logs one line per route.
func (j *DirectionGapsReportJob) Run(ctx context.Context) {
	gaps, err := j.handler.Handle(ctx, queries.NewGetAverageGapsPerDirectionQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Direction gaps report failed", "error", err)
		return
	}

	for _, g := range gaps {
		j.logger.InfoContext(ctx, "Average travel time",
			"from", g.StartCity,
			"to", g.EndCity,
			"average_minutes", g.AverageGap,
			"deliveries", g.Deliveries,
		)
	}
	j.logger.DebugContext(ctx, "Direction gaps report done", "routes", len(gaps))
}

// Start schedules Run.
func (j *DirectionGapsReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Direction gaps report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running report to finish.
func (j *DirectionGapsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Direction gaps report job stopped")
}
