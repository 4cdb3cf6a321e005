package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "deliveryquery/internal/adapters/in/http"
	"deliveryquery/internal/core/application/usecases/commands"
	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/delivery/deliverytest"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/core/ports"
	"deliveryquery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if ds := args.Get(0); ds != nil {
		return ds.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type ServerTestSuite struct {
	suite.Suite
	repo    *MockDeliveryRepository
	uow     *MockDeliveryUoW
	factory *MockDeliveryUoWFactory
	server  *httpin.Server
	router  *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.repo = new(MockDeliveryRepository)
	s.uow = new(MockDeliveryUoW)
	s.factory = new(MockDeliveryUoWFactory)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.server = httpin.NewServer(httpin.Handlers{
		CreateDelivery:       commands.NewCreateDeliveryCommandHandler(s.factory),
		GetDelivery:          queries.NewGetDeliveryQueryHandler(s.repo),
		GetClientDeliveries:  queries.NewGetClientDeliveriesQueryHandler(s.repo),
		FindByCityAndType:    queries.NewFindDeliveriesByCityAndTypeQueryHandler(s.repo),
		GetDeliveriesPage:    queries.NewGetDeliveriesPageQueryHandler(s.repo),
		GetStatistics:        queries.NewGetDeliveryStatisticsQueryHandler(s.repo),
		GetAverageGaps:       queries.NewGetAverageGapsPerDirectionQueryHandler(s.repo),
		GetOrderedDeliveries: queries.NewGetOrderedDeliveriesQueryHandler(s.repo),
	}, logger)
	router, err := httpin.NewRouter(s.server, logger)
	s.Require().NoError(err)
	s.router = router
}

func (s *ServerTestSuite) do(method string, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *ServerTestSuite) withDeliveries(deliveries ...*delivery.Delivery) {
	s.repo.On("GetAll", mock.Anything).Return(deliveries, nil)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestGetDeliveries_FiltersAndPages() {
	t := s.T()
	s.withDeliveries(
		deliverytest.NewBuilder().WithStatus(delivery.Confirmed).Build(t),
		deliverytest.NewBuilder().WithStatus(delivery.Done).Build(t),
		deliverytest.NewBuilder().WithStatus(delivery.Confirmed).Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/deliveries?status=paid&count=1&page=2", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var page httpin.DeliveryPage
	s.decode(rec, &page)
	s.Equal(2, page.Total)
	s.Equal(2, page.Page)
	s.Equal(1, page.CountOnPage)
	s.Equal(2, page.PageCount)
	s.Require().Len(page.Items, 1)
	s.Equal("Confirmed", page.Items[0].Status)
}

func (s *ServerTestSuite) TestGetDeliveries_Defaults() {
	s.withDeliveries(deliverytest.NewBuilder().Build(s.T()))

	rec := s.do(http.MethodGet, "/api/v1/deliveries", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var page httpin.DeliveryPage
	s.decode(rec, &page)
	s.Equal(1, page.Total)
	s.Equal(1, page.Page)
	s.Equal(100, page.CountOnPage)
}

func (s *ServerTestSuite) TestGetDeliveries_InvalidArguments() {
	for _, target := range []string{
		"/api/v1/deliveries?count=abc",
		"/api/v1/deliveries?count=0",
		"/api/v1/deliveries?page=-1",
		"/api/v1/deliveries?status=lost",
		"/api/v1/deliveries?sort=price",
	} {
		rec := s.do(http.MethodGet, target, "")

		s.Equal(http.StatusBadRequest, rec.Code, target)
		var body httpin.Error
		s.decode(rec, &body)
		s.Equal(http.StatusBadRequest, body.Code, target)
	}
	s.repo.AssertNotCalled(s.T(), "GetAll", mock.Anything)
}

func (s *ServerTestSuite) TestGetDeliveries_RepositoryFailure() {
	s.repo.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := s.do(http.MethodGet, "/api/v1/deliveries", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body httpin.Error
	s.decode(rec, &body)
	s.NotContains(body.Message, "connection refused")
}

func (s *ServerTestSuite) TestGetOrderedDeliveries() {
	t := s.T()
	s.withDeliveries(
		deliverytest.NewBuilder().WithStatus(delivery.Done).Build(t),
		deliverytest.NewBuilder().WithStatus(delivery.Created).Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/deliveries/ordered", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var items []httpin.Delivery
	s.decode(rec, &items)
	s.Require().Len(items, 2)
	s.Equal("Created", items[0].Status)
	s.Equal("Done", items[1].Status)
}

func (s *ServerTestSuite) TestSearchDeliveries() {
	t := s.T()
	s.withDeliveries(
		deliverytest.NewBuilder().WithRoute("Kyiv", "Lviv").WithType(delivery.Express).Build(t),
		deliverytest.NewBuilder().WithRoute("Odesa", "Kyiv").WithType(delivery.Express).Build(t),
		deliverytest.NewBuilder().WithRoute("Kyiv", "Lviv").WithType(delivery.Standard).Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/deliveries/search?city=Kyiv&type=express", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var items []httpin.Delivery
	s.decode(rec, &items)
	s.Require().Len(items, 1)
	s.Equal("Kyiv", items[0].StartCity.City)
	s.Equal("Express", items[0].Type)
}

func (s *ServerTestSuite) TestSearchDeliveries_BlankCityIsEmpty() {
	s.withDeliveries(deliverytest.NewBuilder().WithType(delivery.Express).Build(s.T()))

	rec := s.do(http.MethodGet, "/api/v1/deliveries/search?type=express", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *ServerTestSuite) TestSearchDeliveries_InvalidArguments() {
	for _, target := range []string{
		"/api/v1/deliveries/search?city=Kyiv",
		"/api/v1/deliveries/search?city=Kyiv&type=teleport",
	} {
		rec := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, rec.Code, target)
	}
}

func (s *ServerTestSuite) TestGetDelivery() {
	d := deliverytest.NewBuilder().WithClient("client-7", "Globex").Build(s.T())
	s.repo.On("Get", mock.Anything, d.ID()).Return(d, nil)

	rec := s.do(http.MethodGet, "/api/v1/deliveries/"+d.ID().String(), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var item httpin.Delivery
	s.decode(rec, &item)
	s.Equal(d.ID().Bytes(), item.ID)
	s.Equal("Globex", item.ClientName)
	s.Require().NotNil(item.Loading.Start)
	s.True(deliverytest.BaseTime.Equal(*item.Loading.Start))
}

func (s *ServerTestSuite) TestGetDelivery_NotFound() {
	id := kernel.NewUUID()
	s.repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("delivery", id))

	rec := s.do(http.MethodGet, "/api/v1/deliveries/"+id.String(), "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGetDelivery_InvalidID() {
	rec := s.do(http.MethodGet, "/api/v1/deliveries/not-a-uuid", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.repo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestGetClientDeliveries() {
	t := s.T()
	s.withDeliveries(
		deliverytest.NewBuilder().WithClient("client-1", "Acme").Build(t),
		deliverytest.NewBuilder().WithClient("client-2", "Globex").Build(t),
		deliverytest.NewBuilder().WithClient("client-1", "Acme").Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/clients/client-1/deliveries", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var items []httpin.Delivery
	s.decode(rec, &items)
	s.Len(items, 2)
	for _, item := range items {
		s.Equal("client-1", item.ClientID)
	}
}

func (s *ServerTestSuite) TestGetClientDeliveries_Unknown() {
	s.withDeliveries(deliverytest.NewBuilder().Build(s.T()))

	rec := s.do(http.MethodGet, "/api/v1/clients/nobody/deliveries", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *ServerTestSuite) TestGetStatistics() {
	t := s.T()
	s.withDeliveries(
		deliverytest.NewBuilder().WithStatus(delivery.Confirmed).WithCargo("Food").Build(t),
		deliverytest.NewBuilder().WithStatus(delivery.Done).WithCargo("Food").Build(t),
		deliverytest.NewBuilder().WithStatus(delivery.Loading).WithCargo("Steel").Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/statistics", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var stats httpin.Statistics
	s.decode(rec, &stats)
	s.Equal(3, stats.Total)
	s.Equal(1, stats.Paid)
	s.Equal(2, stats.Active)
	s.Equal(2, stats.UniqueCargoTypes)
	s.Equal(map[string]int{"Confirmed": 1, "Done": 1, "Loading": 1}, stats.ByStatus)
}

func (s *ServerTestSuite) TestGetAverageGaps() {
	t := s.T()
	start := deliverytest.BaseTime
	s.withDeliveries(
		deliverytest.NewBuilder().WithRoute("Kyiv", "Lviv").
			WithLoading(start, start).WithArrival(start, start.Add(60*time.Minute)).Build(t),
		deliverytest.NewBuilder().WithRoute("Kyiv", "Lviv").
			WithLoading(time.Time{}, time.Time{}).Build(t),
	)

	rec := s.do(http.MethodGet, "/api/v1/directions/average-gaps", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var gaps []httpin.AverageGap
	s.decode(rec, &gaps)
	s.Require().Len(gaps, 1)
	s.Equal("Kyiv", gaps[0].StartCity)
	s.Equal("Lviv", gaps[0].EndCity)
	s.InDelta(30.0, gaps[0].AverageGapMinutes, 1e-9)
	s.Equal(2, gaps[0].Deliveries)
}

const newDeliveryBody = `{
	"id": "0b8e5f1c-1f7e-4a4e-9a55-0a4f6c9f2f10",
	"clientId": "client-9",
	"clientName": "Initech",
	"origin": {"city": "Kyiv", "street": "Khreshchatyk"},
	"destination": {"city": "Lviv"},
	"cargoType": "Furniture",
	"type": "pickup",
	"loading": {"start": "2024-01-15T08:00:00Z", "end": null},
	"arrival": {"start": null, "end": null}
}`

func (s *ServerTestSuite) expectWrite(addErr error) {
	s.factory.On("Create").Return(s.uow).Once()
	s.uow.On("Begin", mock.Anything).Return(nil).Once()
	s.uow.On("DeliveryRepository").Return(s.repo).Once()
	s.repo.On("Add", mock.Anything, mock.MatchedBy(func(d *delivery.Delivery) bool {
		return d.ID().String() == "0b8e5f1c-1f7e-4a4e-9a55-0a4f6c9f2f10" &&
			d.Status() == delivery.Created &&
			d.Type() == delivery.Pickup &&
			d.Origin().Street() == "Khreshchatyk" &&
			!d.ArrivalPeriod().HasStart()
	})).Return(addErr).Once()
	s.uow.On("Commit", mock.Anything).Return(nil).Maybe()
	s.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
}

func (s *ServerTestSuite) TestCreateDelivery() {
	s.expectWrite(nil)

	rec := s.do(http.MethodPost, "/api/v1/deliveries", newDeliveryBody)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"id": "0b8e5f1c-1f7e-4a4e-9a55-0a4f6c9f2f10"}`, rec.Body.String())
	s.repo.AssertExpectations(s.T())
	s.uow.AssertCalled(s.T(), "Commit", mock.Anything)
}

func (s *ServerTestSuite) TestCreateDelivery_Duplicate() {
	s.expectWrite(errs.NewObjectExistsError("delivery", "0b8e5f1c-1f7e-4a4e-9a55-0a4f6c9f2f10"))

	rec := s.do(http.MethodPost, "/api/v1/deliveries", newDeliveryBody)

	s.Equal(http.StatusConflict, rec.Code)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *ServerTestSuite) TestCreateDelivery_InvalidData() {
	for name, body := range map[string]string{
		"missing city":    `{"clientId": "c", "clientName": "n", "origin": {}, "destination": {"city": "Lviv"}, "cargoType": "x", "type": "standard"}`,
		"unknown type":    `{"clientId": "c", "clientName": "n", "origin": {"city": "Kyiv"}, "destination": {"city": "Lviv"}, "cargoType": "x", "type": "drone"}`,
		"unknown status":  `{"clientId": "c", "clientName": "n", "origin": {"city": "Kyiv"}, "destination": {"city": "Lviv"}, "cargoType": "x", "type": "standard", "status": "lost"}`,
		"missing cargo":   `{"clientId": "c", "clientName": "n", "origin": {"city": "Kyiv"}, "destination": {"city": "Lviv"}, "type": "standard"}`,
		"malformed json":  `{"clientId":`,
		"reversed period": `{"clientId": "c", "clientName": "n", "origin": {"city": "Kyiv"}, "destination": {"city": "Lviv"}, "cargoType": "x", "type": "standard", "loading": {"start": "2024-01-15T10:00:00Z", "end": "2024-01-15T08:00:00Z"}}`,
	} {
		rec := s.do(http.MethodPost, "/api/v1/deliveries", body)
		s.Equal(http.StatusBadRequest, rec.Code, name)
	}
	s.factory.AssertNotCalled(s.T(), "Create")
}
