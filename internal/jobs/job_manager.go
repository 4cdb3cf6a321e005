package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled report together.
type JobManager struct {
	statisticsJob    *StatisticsReportJob
	directionGapsJob *DirectionGapsReportJob
}

func NewJobManager(
	statisticsHandler StatisticsHandler,
	directionGapsHandler DirectionGapsHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statisticsJob:    NewStatisticsReportJob(statisticsHandler, schedule, logger),
		directionGapsJob: NewDirectionGapsReportJob(directionGapsHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statisticsJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics report job: %w", err)
	}

	if err := jm.directionGapsJob.Start(); err != nil {
		jm.statisticsJob.Stop()
		return fmt.Errorf("failed to start direction gaps report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.directionGapsJob.Stop()
	jm.statisticsJob.Stop()
}
