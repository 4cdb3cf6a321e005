package services

import (
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
)

// DeliveryShortInfo is a flattened, read-only projection of a delivery.
type DeliveryShortInfo struct {
	ID            kernel.UUID
	StartCity     kernel.Address
	EndCity       kernel.Address
	ClientID      string
	ClientName    string
	Type          delivery.Type
	LoadingPeriod kernel.Period
	ArrivalPeriod kernel.Period
	CargoType     delivery.CargoType
	Status        delivery.Status
}

// AverageGapsInfo is the average time, in minutes, between the start of loading
// and the end of arrival for all deliveries between two cities.
type AverageGapsInfo struct {
	StartCity  string
	EndCity    string
	AverageGap float64
	// Deliveries is the number of deliveries the average was taken over.
	Deliveries int
}

// ToShortInfo projects a delivery onto DeliveryShortInfo.
func ToShortInfo(d *delivery.Delivery) DeliveryShortInfo {
	return DeliveryShortInfo{
		ID:            d.ID(),
		StartCity:     d.Origin(),
		EndCity:       d.Destination(),
		ClientID:      d.ClientID(),
		ClientName:    d.ClientName(),
		Type:          d.Type(),
		LoadingPeriod: d.LoadingPeriod(),
		ArrivalPeriod: d.ArrivalPeriod(),
		CargoType:     d.CargoType(),
		Status:        d.Status(),
	}
}

// ToShortInfos projects every delivery, keeping input order.
func ToShortInfos(deliveries []*delivery.Delivery) []DeliveryShortInfo {
	infos := make([]DeliveryShortInfo, 0, len(deliveries))
	for _, d := range deliveries {
		infos = append(infos, ToShortInfo(d))
	}
	return infos
}
