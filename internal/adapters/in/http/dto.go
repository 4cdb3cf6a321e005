package http

import (
	"time"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	City   string `json:"city"`
	Street string `json:"street,omitempty"`
}

// Period carries RFC 3339 timestamps; null marks an unset side.
type Period struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type Delivery struct {
	ID         openapi_types.UUID `json:"id"`
	ClientID   string             `json:"clientId"`
	ClientName string             `json:"clientName"`
	StartCity  Address            `json:"startCity"`
	EndCity    Address            `json:"endCity"`
	Type       string             `json:"type"`
	CargoType  string             `json:"cargoType"`
	Status     string             `json:"status"`
	Loading    Period             `json:"loading"`
	Arrival    Period             `json:"arrival"`
}

type DeliveryPage struct {
	Items       []Delivery `json:"items"`
	Total       int        `json:"total"`
	Page        int        `json:"page"`
	CountOnPage int        `json:"count"`
	PageCount   int        `json:"pageCount"`
}

type Statistics struct {
	Total            int            `json:"total"`
	Paid             int            `json:"paid"`
	Active           int            `json:"active"`
	UniqueCargoTypes int            `json:"uniqueCargoTypes"`
	ByStatus         map[string]int `json:"byStatus"`
}

type AverageGap struct {
	StartCity         string  `json:"startCity"`
	EndCity           string  `json:"endCity"`
	AverageGapMinutes float64 `json:"averageGapMinutes"`
	Deliveries        int     `json:"deliveries"`
}

// NewDelivery is the request body of POST /api/v1/deliveries. ID is optional;
// Status defaults to Created.
type NewDelivery struct {
	ID          *openapi_types.UUID `json:"id"`
	ClientID    string              `json:"clientId"`
	ClientName  string              `json:"clientName"`
	Origin      Address             `json:"origin"`
	Destination Address             `json:"destination"`
	CargoType   string              `json:"cargoType"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	Loading     Period              `json:"loading"`
	Arrival     Period              `json:"arrival"`
}

// GetDeliveriesParams are the query parameters of GET /api/v1/deliveries.
// Unset parameters stay nil.
type GetDeliveriesParams struct {
	Status *string
	Sort   *string
	Count  *int
	Page   *int
}

// SearchDeliveriesParams are the query parameters of GET /api/v1/deliveries/search.
type SearchDeliveriesParams struct {
	City *string
	Type string
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

func toAddress(a kernel.Address) Address {
	return Address{City: a.City(), Street: a.Street()}
}

func toPeriod(p kernel.Period) Period {
	return Period{Start: p.StartPtr(), End: p.EndPtr()}
}

func toDelivery(info services.DeliveryShortInfo) Delivery {
	return Delivery{
		ID:         info.ID.Bytes(),
		ClientID:   info.ClientID,
		ClientName: info.ClientName,
		StartCity:  toAddress(info.StartCity),
		EndCity:    toAddress(info.EndCity),
		Type:       info.Type.String(),
		CargoType:  info.CargoType.String(),
		Status:     info.Status.String(),
		Loading:    toPeriod(info.LoadingPeriod),
		Arrival:    toPeriod(info.ArrivalPeriod),
	}
}

func toDeliveries(infos []services.DeliveryShortInfo) []Delivery {
	response := make([]Delivery, len(infos))
	for i, info := range infos {
		response[i] = toDelivery(info)
	}
	return response
}

func toDeliveryPage(page queries.GetDeliveriesPageQueryResponse) DeliveryPage {
	return DeliveryPage{
		Items:       toDeliveries(page.Items),
		Total:       page.Total,
		Page:        page.PageNumber,
		CountOnPage: page.CountOnPage,
		PageCount:   page.PageCount,
	}
}

func toStatistics(stats queries.GetDeliveryStatisticsQueryResponse) Statistics {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}
	return Statistics{
		Total:            stats.Total,
		Paid:             stats.Paid,
		Active:           stats.Active,
		UniqueCargoTypes: stats.UniqueCargoTypes,
		ByStatus:         byStatus,
	}
}

func toAverageGaps(gaps []services.AverageGapsInfo) []AverageGap {
	response := make([]AverageGap, len(gaps))
	for i, g := range gaps {
		response[i] = AverageGap{
			StartCity:         g.StartCity,
			EndCity:           g.EndCity,
			AverageGapMinutes: g.AverageGap,
			Deliveries:        g.Deliveries,
		}
	}
	return response
}
