package models

import (
	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/geo"
)

// TollGate - контролируемая точка (пункт оплаты, блокпост), где предполагается наблюдение
type TollGate struct {
	ID        uuid.UUID `json:"id" yaml:"-"`
	Latitude  float64   `json:"lat" yaml:"lat"`
	Longitude float64   `json:"lng" yaml:"lng"`
	Name      string    `json:"name" yaml:"name"`
	Monitored bool      `json:"monitored" yaml:"monitored"`
}

func (g TollGate) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: g.Latitude, Lng: g.Longitude}
}
