package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate возвращается для NaN, бесконечных и выходящих за диапазон координат
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate - точка в десятичных градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinate создает координату и проверяет ее
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lng: lng}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate проверяет, что широта в [-90, 90], долгота в [-180, 180]
func (c Coordinate) Validate() error {
	if !isFinite(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, c.Lat)
	}
	if !isFinite(c.Lng) || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Lat, c.Lng)
}

// Midpoint - среднее арифметическое двух координат (не геодезическая середина)
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (a.Lng + b.Lng) / 2,
	}
}

// Lerp линейно интерполирует от a к b на шаге step из steps
func Lerp(a, b Coordinate, step, steps int) Coordinate {
	return Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*float64(step)/float64(steps),
		Lng: a.Lng + (b.Lng-a.Lng)*float64(step)/float64(steps),
	}
}

// Offset сдвигает координату на заданное число градусов
func (c Coordinate) Offset(dLat, dLng float64) Coordinate {
	return Coordinate{Lat: c.Lat + dLat, Lng: c.Lng + dLng}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
