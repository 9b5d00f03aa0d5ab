package dto

import "github.com/jhoicas/logistics-panel-api/internal/domain/entity"

// CenterDTO representación completa de un centro de distribución.
type CenterDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
	Capacity  int     `json:"capacity"`
	MaxCap    int     `json:"max_capacity"`
	Orders    int     `json:"orders"`
	Issues    int     `json:"issues"`
	Address   string  `json:"address"`
	Manager   string  `json:"manager"`
}

// ToCenterDTOs mapea la red de centros.
func ToCenterDTOs(list []entity.DistributionCenter) []CenterDTO {
	out := make([]CenterDTO, 0, len(list))
	for _, dc := range list {
		out = append(out, CenterDTO{
			ID:        dc.ID,
			Name:      dc.Name,
			Code:      dc.Code,
			Latitude:  dc.Latitude,
			Longitude: dc.Longitude,
			Status:    dc.Status,
			Capacity:  dc.Details.Capacity,
			MaxCap:    dc.Details.MaxCapacity,
			Orders:    dc.Details.Orders,
			Issues:    dc.Details.Issues,
			Address:   dc.Details.Address,
			Manager:   dc.Details.Manager,
		})
	}
	return out
}
