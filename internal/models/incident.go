package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/geo"
)

// Минимальная тяжесть инцидента, при которой зона считается зоной повышенного риска
const HighRiskSeverity = 4

type Incident struct {
	ID          uuid.UUID `json:"id" yaml:"-"`
	Latitude    float64   `json:"lat" yaml:"lat"`
	Longitude   float64   `json:"lng" yaml:"lng"`
	Type        string    `json:"incident_type" yaml:"incident_type"`
	Severity    int       `json:"severity" yaml:"severity"`
	Description string    `json:"description,omitempty" yaml:"description"`
	CreatedAt   time.Time `json:"timestamp" yaml:"-"`
	Anonymous   bool      `json:"anonymous" yaml:"-"`
}

func (i Incident) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: i.Latitude, Lng: i.Longitude}
}

// IsHighRisk сообщает, может ли инцидент повлиять на построение обходного пути
func (i Incident) IsHighRisk() bool {
	return i.Severity >= HighRiskSeverity
}
