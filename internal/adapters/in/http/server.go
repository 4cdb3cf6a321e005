package http

import (
	"errors"
	"log/slog"
	"net/http"

	"deliveryquery/internal/core/application/usecases/commands"
	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/paging"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server exposes the delivery reports over HTTP.
// It translates requests into application queries and their results into JSON.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler

	// Query handlers
	getDeliveryHandler          queries.GetDeliveryQueryHandler
	getClientDeliveriesHandler  queries.GetClientDeliveriesQueryHandler
	findByCityAndTypeHandler    queries.FindDeliveriesByCityAndTypeQueryHandler
	getDeliveriesPageHandler    queries.GetDeliveriesPageQueryHandler
	getStatisticsHandler        queries.GetDeliveryStatisticsQueryHandler
	getAverageGapsHandler       queries.GetAverageGapsPerDirectionQueryHandler
	getOrderedDeliveriesHandler queries.GetOrderedDeliveriesQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateDelivery       commands.CreateDeliveryCommandHandler
	GetDelivery          queries.GetDeliveryQueryHandler
	GetClientDeliveries  queries.GetClientDeliveriesQueryHandler
	FindByCityAndType    queries.FindDeliveriesByCityAndTypeQueryHandler
	GetDeliveriesPage    queries.GetDeliveriesPageQueryHandler
	GetStatistics        queries.GetDeliveryStatisticsQueryHandler
	GetAverageGaps       queries.GetAverageGapsPerDirectionQueryHandler
	GetOrderedDeliveries queries.GetOrderedDeliveriesQueryHandler
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createDeliveryHandler:       handlers.CreateDelivery,
		getDeliveryHandler:          handlers.GetDelivery,
		getClientDeliveriesHandler:  handlers.GetClientDeliveries,
		findByCityAndTypeHandler:    handlers.FindByCityAndType,
		getDeliveriesPageHandler:    handlers.GetDeliveriesPage,
		getStatisticsHandler:        handlers.GetStatistics,
		getAverageGapsHandler:       handlers.GetAverageGaps,
		getOrderedDeliveriesHandler: handlers.GetOrderedDeliveries,
		logger:                      logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetDeliveries handles GET /api/v1/deliveries - one filtered, sorted page.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	params, err := bindGetDeliveriesParams(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid page request")
	}

	filter, filterErr := queries.ParseStatusFilter(valueOr(params.Status, ""))
	sortOrder, sortErr := queries.ParseSortOrder(valueOr(params.Sort, ""))
	if err = errors.Join(filterErr, sortErr); err != nil {
		return s.fail(ctx, err, "Invalid page request")
	}

	countOnPage := valueOr(params.Count, paging.DefaultCountOnPage)
	pageNumber := valueOr(params.Page, paging.DefaultPageNumber)

	query, err := queries.NewGetDeliveriesPageQuery(filter, sortOrder, countOnPage, pageNumber)
	if err != nil {
		return s.fail(ctx, err, "Invalid page request")
	}

	page, err := s.getDeliveriesPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveryPage(page))
}

// GetOrderedDeliveries handles GET /api/v1/deliveries/ordered.
func (s *Server) GetOrderedDeliveries(ctx echo.Context) error {
	infos, err := s.getOrderedDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderedDeliveriesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveries(infos))
}

// SearchDeliveries handles GET /api/v1/deliveries/search?city=&type=.
func (s *Server) SearchDeliveries(ctx echo.Context) error {
	params, err := bindSearchDeliveriesParams(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid search request")
	}

	deliveryType, err := delivery.ParseType(params.Type)
	if err != nil {
		return s.fail(ctx, err, "Invalid search request")
	}

	query, err := queries.NewFindDeliveriesByCityAndTypeQuery(valueOr(params.City, ""), deliveryType)
	if err != nil {
		return s.fail(ctx, err, "Invalid search request")
	}

	infos, err := s.findByCityAndTypeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to search deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveries(infos))
}

// GetDelivery handles GET /api/v1/deliveries/:deliveryId.
func (s *Server) GetDelivery(ctx echo.Context) error {
	var deliveryID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err), "Invalid delivery ID")
	}

	id, err := kernel.UUIDFromBytes(deliveryID[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err), "Invalid delivery ID")
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery ID")
	}

	info, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve delivery")
	}

	return ctx.JSON(http.StatusOK, toDelivery(info))
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newCreateDeliveryCommand(body)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create delivery")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DeliveryID().Bytes()})
}

// GetClientDeliveries handles GET /api/v1/clients/:clientId/deliveries.
func (s *Server) GetClientDeliveries(ctx echo.Context) error {
	var clientID string
	err := runtime.BindStyledParameterWithOptions("simple", "clientId", ctx.Param("clientId"), &clientID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("clientId", err), "Invalid client ID")
	}

	query, err := queries.NewGetClientDeliveriesQuery(clientID)
	if err != nil {
		return s.fail(ctx, err, "Invalid client ID")
	}

	infos, err := s.getClientDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve client deliveries")
	}

	return ctx.JSON(http.StatusOK, toDeliveries(infos))
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryStatisticsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to compute statistics")
	}

	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// GetAverageGaps handles GET /api/v1/directions/average-gaps.
func (s *Server) GetAverageGaps(ctx echo.Context) error {
	gaps, err := s.getAverageGapsHandler.Handle(ctx.Request().Context(), queries.NewGetAverageGapsPerDirectionQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to compute average gaps")
	}

	return ctx.JSON(http.StatusOK, toAverageGaps(gaps))
}

// fail writes the error response. Caller errors carry their detail; server
// errors are logged and answered with message only.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
		)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}

	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func bindGetDeliveriesParams(ctx echo.Context) (GetDeliveriesParams, error) {
	var params GetDeliveriesParams
	query := ctx.QueryParams()
	err := errors.Join(
		runtime.BindQueryParameter("form", true, false, "status", query, &params.Status),
		runtime.BindQueryParameter("form", true, false, "sort", query, &params.Sort),
		runtime.BindQueryParameter("form", true, false, "count", query, &params.Count),
		runtime.BindQueryParameter("form", true, false, "page", query, &params.Page),
	)
	if err != nil {
		return GetDeliveriesParams{}, errs.NewValueIsInvalidErrorWithCause("query parameters", err)
	}
	return params, nil
}

func bindSearchDeliveriesParams(ctx echo.Context) (SearchDeliveriesParams, error) {
	var params SearchDeliveriesParams
	query := ctx.QueryParams()
	err := errors.Join(
		runtime.BindQueryParameter("form", true, false, "city", query, &params.City),
		runtime.BindQueryParameter("form", true, true, "type", query, &params.Type),
	)
	if err != nil {
		return SearchDeliveriesParams{}, errs.NewValueIsInvalidErrorWithCause("query parameters", err)
	}
	return params, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newCreateDeliveryCommand(body NewDelivery) (commands.CreateDeliveryCommand, error) {
	id := kernel.NewUUID()
	var idErr error
	if body.ID != nil {
		id, idErr = kernel.UUIDFromBytes(body.ID[:])
	}

	status := delivery.Created
	var statusErr error
	if body.Status != "" {
		status, statusErr = delivery.ParseStatus(body.Status)
	}

	deliveryType, typeErr := delivery.ParseType(body.Type)
	client, clientErr := delivery.NewClient(body.ClientID, body.ClientName)
	origin, originErr := kernel.NewAddress(body.Origin.City, body.Origin.Street)
	destination, destinationErr := kernel.NewAddress(body.Destination.City, body.Destination.Street)
	loading, loadingErr := kernel.NewPeriodFromPointers(body.Loading.Start, body.Loading.End)
	arrival, arrivalErr := kernel.NewPeriodFromPointers(body.Arrival.Start, body.Arrival.End)
	if err := errors.Join(
		idErr, statusErr, typeErr, clientErr, originErr, destinationErr, loadingErr, arrivalErr,
	); err != nil {
		return commands.CreateDeliveryCommand{}, err
	}

	direction, err := delivery.NewDirection(origin, destination)
	if err != nil {
		return commands.CreateDeliveryCommand{}, err
	}

	return commands.NewCreateDeliveryCommand(
		id, client, direction, body.CargoType, deliveryType, status, loading, arrival,
	)
}
