// Package jobs runs scheduled delivery reports in the background.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and write their results to
// the structured logger, so the current state of the delivery book shows up in
// the service logs without anyone calling the HTTP API.
//
// # Available Jobs
//
//  1. StatisticsReportJob logs totals, counts by status and unique cargo types
//  2. DirectionGapsReportJob logs the average travel time of every route
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statisticsHandler, gapsHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule uses the standard five-field cron syntax or a descriptor such
// as "@hourly" or "@every 30s". Both jobs share it.
//
// # Error Handling
//
// A failing run is logged and the job keeps its schedule. If a job cannot be
// started, the jobs already started are stopped again.
package jobs
