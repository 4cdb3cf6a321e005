package http_test

import (
	"net/http"

	httpin "deliveryquery/internal/adapters/in/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func (s *ServerTestSuite) TestGetSwagger_DescribesEveryRoute() {
	doc, err := httpin.GetSwagger()

	s.Require().NoError(err)
	s.Empty(doc.Servers)
	for _, path := range []string{
		"/health",
		"/api/v1/deliveries",
		"/api/v1/deliveries/ordered",
		"/api/v1/deliveries/search",
		"/api/v1/deliveries/{deliveryId}",
		"/api/v1/clients/{clientId}/deliveries",
		"/api/v1/statistics",
		"/api/v1/directions/average-gaps",
	} {
		s.NotNil(doc.Paths.Value(path), path)
	}
}

func (s *ServerTestSuite) TestOpenAPIJSON() {
	rec := s.do(http.MethodGet, "/openapi.json", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	s.Require().NoError(err)
	s.Equal("3.0.3", doc.OpenAPI)
	s.NotNil(doc.Paths.Value("/api/v1/deliveries"))
}

func (s *ServerTestSuite) TestSwaggerDocJSON() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/api/v1/statistics"`)
}

func (s *ServerTestSuite) TestRequestValidator_RejectsQueryOutsideDocument() {
	for target, param := range map[string]string{
		"/api/v1/deliveries?status=PAID":   `"status"`,
		"/api/v1/deliveries?sort=price":    `"sort"`,
		"/api/v1/deliveries?count=0":       `"count"`,
		"/api/v1/deliveries?page=x":        `"page"`,
		"/api/v1/deliveries/search?city=A": `"type"`,
	} {
		rec := s.do(http.MethodGet, target, "")

		s.Equal(http.StatusBadRequest, rec.Code, target)
		var body httpin.Error
		s.decode(rec, &body)
		s.Contains(body.Message, "Invalid request", target)
		s.Contains(body.Message, param, target)
	}
	s.repo.AssertNotCalled(s.T(), "GetAll", mock.Anything)
}

func (s *ServerTestSuite) TestRequestValidator_RejectsBodyOutsideDocument() {
	rec := s.do(http.MethodPost, "/api/v1/deliveries",
		`{"clientName": "n", "origin": {"city": "Kyiv"}, "destination": {"city": "Lviv"}, "cargoType": "x", "type": "standard"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	var body httpin.Error
	s.decode(rec, &body)
	s.Contains(body.Message, "clientId")
	s.factory.AssertNotCalled(s.T(), "Create")
}

func (s *ServerTestSuite) TestRegisterRoutes_BindsParametersWithoutValidator() {
	s.router = echo.New()
	httpin.RegisterRoutes(s.router, s.server)

	for _, target := range []string{
		"/api/v1/deliveries?count=abc",
		"/api/v1/deliveries?status=lost",
		"/api/v1/deliveries/search?city=Kyiv",
		"/api/v1/deliveries/not-a-uuid",
	} {
		rec := s.do(http.MethodGet, target, "")

		s.Equal(http.StatusBadRequest, rec.Code, target)
		var body httpin.Error
		s.decode(rec, &body)
		s.NotContains(body.Message, "Invalid request:", target)
	}
	s.repo.AssertNotCalled(s.T(), "GetAll", mock.Anything)
}
