package jobs

import (
	"context"
	"log/slog"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
)

// StatisticsHandler answers the delivery statistics query.
type StatisticsHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryStatisticsQuery) (queries.GetDeliveryStatisticsQueryResponse, error)
}

// StatisticsReportJob periodically logs delivery counters.
type StatisticsReportJob struct {
	handler  StatisticsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatisticsReportJob(handler StatisticsHandler, schedule string, logger *slog.Logger) *StatisticsReportJob {
	return &StatisticsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "statistics_report_job"),
	}
}

// Run produces one report.
func (j *StatisticsReportJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetDeliveryStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Statistics report failed", "error", err)
		return
	}

	byStatus := make([]any, 0, len(stats.ByStatus))
	for _, status := range delivery.Statuses() {
		if count, ok := stats.ByStatus[status]; ok {
			byStatus = append(byStatus, slog.Int(status.String(), count))
		}
	}

	j.logger.InfoContext(ctx, "Delivery statistics",
		"total", stats.Total,
		"paid", stats.Paid,
		"active", stats.Active,
		"unique_cargo_types", stats.UniqueCargoTypes,
		slog.Group("by_status", byStatus...),
	)
}

// Start schedules Run.
func (j *StatisticsReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running report to finish.
func (j *StatisticsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Statistics report job stopped")
}
