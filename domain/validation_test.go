package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderWire() map[string]interface{} {
	return map[string]interface{}{
		"id":       "order-12345",
		"symbol":   "TSLA",
		"side":     "BUY",
		"effect":   "OPEN_LONG",
		"type":     "LIMIT",
		"quantity": float64(100),
		"price":    250.5,
		"created":  float64(1609459200000),
	}
}

func validLongPositionWire() map[string]interface{} {
	return map[string]interface{}{
		"quantity":    float64(10),
		"totalCost":   2505.0,
		"realisedPnL": float64(0),
		"lots": []interface{}{
			map[string]interface{}{"quantity": float64(10), "price": 250.5, "totalCost": 2505.0},
		},
		"modified": float64(1609459200000),
	}
}

func TestValidateAssetWire(t *testing.T) {
	valid := map[string]interface{}{
		"symbol":   "BTCUSDT",
		"currency": "USDT",
		"type":     "crypto",
		"lotSize":  0.001,
		"validFrom": float64(1609459200000),
	}
	assert.NoError(t, ValidateAssetWire(valid))

	// Opcionales ausentes no son error
	assert.NoError(t, ValidateAssetWire(map[string]interface{}{
		"symbol":   "TSLA",
		"currency": "USD",
	}))

	// Claves desconocidas se toleran
	assert.NoError(t, ValidateAssetWire(map[string]interface{}{
		"symbol":   "TSLA",
		"currency": "USD",
		"isin":     "US88160R1014",
	}))
}

func TestValidateAssetWire_AllViolationsInOnePass(t *testing.T) {
	err := ValidateAssetWire(map[string]interface{}{
		"currency": 42,             // tipo incorrecto
		"lotSize":  "not a number", // opcional con tipo incorrecto
		"validFrom": "2021-01-01",  // timestamp como string
	})
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// symbol faltante + currency + lotSize + validFrom, todos en una pasada
	assert.Len(t, verrs.Violations, 4)
	assert.True(t, verrs.Has("symbol"))
	assert.True(t, verrs.Has("currency"))
	assert.True(t, verrs.Has("lotSize"))
	assert.True(t, verrs.Has("validFrom"))
}

func TestValidateMarketSnapshotWire(t *testing.T) {
	assert.NoError(t, ValidateMarketSnapshotWire(map[string]interface{}{
		"price":     map[string]interface{}{"BTCUSDT": float64(50000), "ETHUSDT": float64(3000)},
		"timestamp": float64(1609459200000),
	}))

	// price vacío es válido: el campo es obligatorio, sus entradas no
	assert.NoError(t, ValidateMarketSnapshotWire(map[string]interface{}{
		"price":     map[string]interface{}{},
		"timestamp": float64(1609459200000),
	}))

	err := ValidateMarketSnapshotWire(map[string]interface{}{
		"price":     map[string]interface{}{"BTCUSDT": "50000"},
		"timestamp": float64(1609459200000),
	})
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("price.BTCUSDT"))
}

func TestValidateMarketBarWire_IntervalEnum(t *testing.T) {
	bar := map[string]interface{}{
		"symbol":    "BTCUSDT",
		"open":      float64(50000),
		"high":      float64(50500),
		"low":       float64(49800),
		"close":     float64(50200),
		"volume":    float64(1234),
		"interval":  "1h",
		"timestamp": float64(1609459200000),
	}
	assert.NoError(t, ValidateMarketBarWire(bar))

	// "3h" no pertenece a la enumeración
	bar["interval"] = "3h"
	err := ValidateMarketBarWire(bar)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("interval"))

	// case-sensitive: "1H" tampoco
	bar["interval"] = "1H"
	assert.Error(t, ValidateMarketBarWire(bar))
}

func TestValidateOrderWire_DiscriminantEnforcement(t *testing.T) {
	valid := validOrderWire()
	assert.NoError(t, ValidateOrderWire(valid))

	// BUY con CLOSE_LONG debe fallar aunque CLOSE_LONG sea un token conocido
	illegal := validOrderWire()
	illegal["effect"] = "CLOSE_LONG"
	err := ValidateOrderWire(illegal)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("effect"))

	// SELL con OPEN_LONG también
	illegal = validOrderWire()
	illegal["side"] = "SELL"
	assert.Error(t, ValidateOrderWire(illegal))

	// El par legal de SELL pasa
	legal := validOrderWire()
	legal["side"] = "SELL"
	legal["effect"] = "CLOSE_LONG"
	assert.NoError(t, ValidateOrderWire(legal))
}

func TestValidateOrderWire_NegativeAndFractionalNumbers(t *testing.T) {
	// Sin restricciones de rango: precios y cantidades negativas pasan
	order := validOrderWire()
	order["quantity"] = -100.5
	order["price"] = -1.25
	assert.NoError(t, ValidateOrderWire(order))
}

func TestValidateOrderWire_NonFiniteRejected(t *testing.T) {
	order := validOrderWire()
	order["quantity"] = math.NaN()
	err := ValidateOrderWire(order)
	require.Error(t, err)

	order = validOrderWire()
	order["price"] = math.Inf(1)
	err = ValidateOrderWire(order)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("price"))
}

func TestValidateOrderWire_TimestampMustBeIntegral(t *testing.T) {
	order := validOrderWire()
	order["created"] = 1609459200000.5
	err := ValidateOrderWire(order)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("created"))

	// Negativos e implausibles pasan: sin validación de rango
	order["created"] = float64(-1000)
	assert.NoError(t, ValidateOrderWire(order))
}

func TestValidatePartialOrderWire(t *testing.T) {
	// Solo id: patch vacío válido
	assert.NoError(t, ValidatePartialOrderWire(map[string]interface{}{
		"id": "order-12345",
	}))

	// Pairing completo válido
	assert.NoError(t, ValidatePartialOrderWire(map[string]interface{}{
		"id":     "order-12345",
		"side":   "SELL",
		"effect": "OPEN_SHORT",
	}))

	// Medio pairing: side sin effect
	err := ValidatePartialOrderWire(map[string]interface{}{
		"id":   "order-12345",
		"side": "BUY",
	})
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("effect"))

	// effect sin side
	err = ValidatePartialOrderWire(map[string]interface{}{
		"id":     "order-12345",
		"effect": "OPEN_LONG",
	})
	require.Error(t, err)
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("side"))

	// Pairing ilegal en patch
	assert.Error(t, ValidatePartialOrderWire(map[string]interface{}{
		"id":     "order-12345",
		"side":   "BUY",
		"effect": "OPEN_SHORT",
	}))
}

func TestValidateOrderStateWire(t *testing.T) {
	state := validOrderWire()
	state["filledQuantity"] = float64(40)
	state["remainingQuantity"] = float64(60)
	state["status"] = "PARTIAL"
	state["modified"] = float64(1609459260000)
	assert.NoError(t, ValidateOrderStateWire(state))

	// El esquema no valida consistencia filled+remaining==quantity
	state["filledQuantity"] = float64(999)
	assert.NoError(t, ValidateOrderStateWire(state))

	state["status"] = "WORKING"
	err := ValidateOrderStateWire(state)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("status"))
}

func TestValidateFillWire(t *testing.T) {
	fill := map[string]interface{}{
		"id":         "fill-1",
		"orderId":    "order-12345",
		"symbol":     "TSLA",
		"side":       "SELL",
		"effect":     "CLOSE_LONG",
		"quantity":   float64(100),
		"price":      251.0,
		"commission": 1.25,
		"created":    float64(1609459260000),
	}
	assert.NoError(t, ValidateFillWire(fill))

	// Todos los campos son obligatorios
	delete(fill, "commission")
	err := ValidateFillWire(fill)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("commission"))
}

func TestValidateLongPositionWire(t *testing.T) {
	assert.NoError(t, ValidateLongPositionWire(validLongPositionWire()))

	// lots vacío es válido
	empty := validLongPositionWire()
	empty["lots"] = []interface{}{}
	assert.NoError(t, ValidateLongPositionWire(empty))

	// lots faltante no
	missing := validLongPositionWire()
	delete(missing, "lots")
	assert.Error(t, ValidateLongPositionWire(missing))

	// Violación dentro de un lot se reporta con path indexado
	bad := validLongPositionWire()
	bad["lots"] = []interface{}{
		map[string]interface{}{"quantity": float64(10), "price": "250.5", "totalCost": 2505.0},
	}
	err := ValidateLongPositionWire(bad)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("lots[0].price"))
}

func TestValidateShortPositionWire(t *testing.T) {
	short := map[string]interface{}{
		"quantity":      float64(5),
		"totalProceeds": 1250.0,
		"realisedPnL":   float64(0),
		"lots": []interface{}{
			map[string]interface{}{"quantity": float64(5), "price": 250.0, "totalProceeds": 1250.0},
		},
		"modified": float64(1609459200000),
	}
	assert.NoError(t, ValidateShortPositionWire(short))

	// El espejo usa totalProceeds, no totalCost
	delete(short, "totalProceeds")
	short["totalCost"] = 1250.0
	err := ValidateShortPositionWire(short)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("totalProceeds"))
}

func TestValidatePositionWire(t *testing.T) {
	position := map[string]interface{}{
		"cash":            100000.0,
		"totalCommission": 12.5,
		"realisedPnL":     340.0,
		"modified":        float64(1609459200000),
		"long": map[string]interface{}{
			"TSLA": validLongPositionWire(),
		},
	}
	assert.NoError(t, ValidatePositionWire(position))

	// long/short son opcionales
	assert.NoError(t, ValidatePositionWire(map[string]interface{}{
		"cash":            100000.0,
		"totalCommission": float64(0),
		"realisedPnL":     float64(0),
		"modified":        float64(1609459200000),
	}))

	// Violación anidada con path completo
	badLot := validLongPositionWire()
	badLot["totalCost"] = "oops"
	position["long"] = map[string]interface{}{"TSLA": badLot}
	err := ValidatePositionWire(position)
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("long.TSLA.totalCost"))
}

func TestValidationErrors_ErrorMessage(t *testing.T) {
	err := ValidateAssetWire(map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol")
	assert.Contains(t, err.Error(), "currency")
	assert.True(t, IsValidation(err))
}
