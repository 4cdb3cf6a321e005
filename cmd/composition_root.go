package cmd

import (
	"log/slog"

	"deliveryquery/internal/adapters/in/http"
	"deliveryquery/internal/adapters/out/postgres"
	"deliveryquery/internal/adapters/out/postgres/deliveryrepo"
	"deliveryquery/internal/core/application/usecases/commands"
	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/ports"
	"deliveryquery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	repository ports.DeliveryRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		repository: deliveryrepo.NewGormDeliveryRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetClientDeliveriesQueryHandler() queries.GetClientDeliveriesQueryHandler {
	return queries.NewGetClientDeliveriesQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateFindDeliveriesByCityAndTypeQueryHandler() queries.FindDeliveriesByCityAndTypeQueryHandler {
	return queries.NewFindDeliveriesByCityAndTypeQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetDeliveriesPageQueryHandler() queries.GetDeliveriesPageQueryHandler {
	return queries.NewGetDeliveriesPageQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetDeliveryStatisticsQueryHandler() queries.GetDeliveryStatisticsQueryHandler {
	return queries.NewGetDeliveryStatisticsQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetAverageGapsPerDirectionQueryHandler() queries.GetAverageGapsPerDirectionQueryHandler {
	return queries.NewGetAverageGapsPerDirectionQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetOrderedDeliveriesQueryHandler() queries.GetOrderedDeliveriesQueryHandler {
	return queries.NewGetOrderedDeliveriesQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		GetDelivery:          c.CreateGetDeliveryQueryHandler(),
		GetClientDeliveries:  c.CreateGetClientDeliveriesQueryHandler(),
		FindByCityAndType:    c.CreateFindDeliveriesByCityAndTypeQueryHandler(),
		GetDeliveriesPage:    c.CreateGetDeliveriesPageQueryHandler(),
		GetStatistics:        c.CreateGetDeliveryStatisticsQueryHandler(),
		GetAverageGaps:       c.CreateGetAverageGapsPerDirectionQueryHandler(),
		GetOrderedDeliveries: c.CreateGetOrderedDeliveriesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDeliveryStatisticsQueryHandler(),
		c.CreateGetAverageGapsPerDirectionQueryHandler(),
		c.config.ReportSchedule,
		c.logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
