// Package domain provee los tipos de dominio runtime y su codec wire para
// trading-core-types.
package domain

import (
	"time"
)

// OrderType representa el tipo de ejecución de una orden.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// OrderStatus representa el estado de una orden en el sistema.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // Aceptada, aún no en mercado
	OrderStatusOpen      OrderStatus = "OPEN"      // Trabajando en mercado
	OrderStatusPartial   OrderStatus = "PARTIAL"   // Parcialmente llena
	OrderStatusFilled    OrderStatus = "FILLED"    // Completamente llena
	OrderStatusCancelled OrderStatus = "CANCELLED" // Cancelada
	OrderStatusReject    OrderStatus = "REJECT"    // Rechazada
)

// BarInterval representa el intervalo de un MarketBar.
type BarInterval string

const (
	Bar1m  BarInterval = "1m"
	Bar5m  BarInterval = "5m"
	Bar15m BarInterval = "15m"
	Bar30m BarInterval = "30m"
	Bar1h  BarInterval = "1h"
	Bar2h  BarInterval = "2h"
	Bar4h  BarInterval = "4h"
	Bar1d  BarInterval = "1d"
	Bar1w  BarInterval = "1w"
	Bar1M  BarInterval = "1M"
)

// String implementa fmt.Stringer para OrderType.
func (t OrderType) String() string {
	return string(t)
}

// String implementa fmt.Stringer para OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// String implementa fmt.Stringer para BarInterval.
func (i BarInterval) String() string {
	return string(i)
}

// IsTerminal indica si un OrderStatus es terminal (no cambiará más).
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled || s == OrderStatusReject
}

// Asset representa un instrumento operable.
//
// validFrom/validUntil son independientes; el orden validFrom <= validUntil es
// semántica del caller, no del esquema (ver ValidityWellOrdered).
type Asset struct {
	Symbol     string
	Currency   string
	Type       *string
	Name       *string
	Exchange   *string
	LotSize    *float64
	TickSize   *float64
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// ValidityWellOrdered indica si validFrom <= validUntil cuando ambos existen.
//
// Chequeo semántico para callers; el esquema wire no lo impone.
func (a *Asset) ValidityWellOrdered() bool {
	if a.ValidFrom == nil || a.ValidUntil == nil {
		return true
	}
	return !a.ValidFrom.After(*a.ValidUntil)
}

// MarketSnapshot representa los últimos precios conocidos por símbolo.
type MarketSnapshot struct {
	// Price mapea símbolo → último precio. Claves únicas, orden irrelevante.
	Price     map[string]float64
	Timestamp time.Time
}

// MarketQuote representa una cotización puntual de un símbolo.
type MarketQuote struct {
	Symbol      string
	Price       float64
	Timestamp   time.Time
	Volume      *float64
	TotalVolume *float64
	Bid         *float64
	BidVol      *float64
	Ask         *float64
	AskVol      *float64
	PreClose    *float64
}

// MarketBar representa un registro OHLCV de un intervalo fijo.
type MarketBar struct {
	Symbol    string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Interval  BarInterval
	Timestamp time.Time
}

// Order representa una orden.
//
// Side/Effect viajan embebidos como OrderAction; ver action.go por el
// invariante del pairing.
type Order struct {
	ID     string
	Symbol string
	OrderAction
	Type      OrderType
	Quantity  float64
	Price     *float64
	StopPrice *float64
	Created   *time.Time
}

// PartialOrder representa un patch de modificación sobre una Order.
//
// Todos los campos salvo ID son opcionales; ausente significa "sin cambio".
// Side y Effect deben venir juntos o no venir (el pairing es inseparable).
type PartialOrder struct {
	ID        string
	Symbol    *string
	Side      *Side
	Effect    *Effect
	Type      *OrderType
	Quantity  *float64
	Price     *float64
	StopPrice *float64
	Created   *time.Time
}

// OrderState representa una Order más su estado de ejecución.
//
// Invariante esperado (no impuesto por el esquema):
// FilledQuantity + RemainingQuantity == Quantity, y Status consistente con el
// fill ratio. Ver QuantityConsistent.
type OrderState struct {
	Order
	FilledQuantity    float64
	RemainingQuantity float64
	Status            OrderStatus
	Modified          time.Time
}

// QuantityConsistent indica si filled + remaining == quantity.
//
// Responsabilidad del caller; el esquema wire no lo valida.
func (s *OrderState) QuantityConsistent() bool {
	return s.FilledQuantity+s.RemainingQuantity == s.Quantity
}

// Fill representa una ejecución (total o parcial) de una Order.
//
// OrderID es referencia por valor al id de la Order; no hay ownership.
type Fill struct {
	ID      string
	OrderID string
	Symbol  string
	OrderAction
	Quantity   float64
	Price      float64
	Commission float64
	Created    time.Time
}

// LongLot representa un lote de adquisición dentro de una LongPosition.
type LongLot struct {
	Quantity  float64
	Price     float64
	TotalCost float64
}

// LongPosition representa la posición larga de un símbolo.
//
// Lots preserva el orden de adquisición (cost-basis); puede estar vacío.
type LongPosition struct {
	Quantity    float64
	TotalCost   float64
	RealisedPnL float64
	Lots        []LongLot
	Modified    time.Time
}

// ShortLot representa un lote de venta en corto dentro de una ShortPosition.
type ShortLot struct {
	Quantity      float64
	Price         float64
	TotalProceeds float64
}

// ShortPosition representa la posición corta de un símbolo.
//
// Espejo de LongPosition con totalProceeds en lugar de totalCost.
type ShortPosition struct {
	Quantity      float64
	TotalProceeds float64
	RealisedPnL   float64
	Lots          []ShortLot
	Modified      time.Time
}

// Position representa el estado agregado de cartera.
//
// Long/Short mapean símbolo → posición; nil cuando el wire value no trae la
// clave, map vacío cuando trae un objeto vacío. Ambos estados round-trippean
// distinto.
type Position struct {
	Cash            float64
	TotalCommission float64
	RealisedPnL     float64
	Long            map[string]LongPosition
	Short           map[string]ShortPosition
	Modified        time.Time
}
