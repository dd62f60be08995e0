package utils

import (
	"time"
)

// NowUnixMilli retorna el timestamp actual en milisegundos desde Unix epoch.
//
// Example:
//
//	ts := utils.NowUnixMilli()
//	// => 1698345601234
func NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// UnixMilliToTime convierte un timestamp Unix en milisegundos a time.Time.
//
// El resultado queda en UTC para que dos decodes del mismo wire value sean
// comparables con igualdad estructural.
//
// Example:
//
//	t := utils.UnixMilliToTime(1609459200000)
//	// => 2021-01-01T00:00:00Z
func UnixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// UnixMilliToTimePtr es UnixMilliToTime pero retorna puntero.
//
// Útil para campos opcionales de timestamps.
func UnixMilliToTimePtr(ms int64) *time.Time {
	t := UnixMilliToTime(ms)
	return &t
}

// TimeToUnixMilli convierte un time.Time a timestamp Unix en milisegundos.
//
// La precisión sub-milisegundo se trunca; es la única pérdida admitida en el
// round-trip runtime → wire → runtime.
func TimeToUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// TruncateToMilli trunca un time.Time a precisión de milisegundos en UTC.
//
// Equivale a un round-trip por el wire format.
func TruncateToMilli(t time.Time) time.Time {
	return UnixMilliToTime(t.UnixMilli())
}
