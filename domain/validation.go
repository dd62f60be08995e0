package domain

import (
	"fmt"
	"strings"

	"github.com/junduck/trading-core-types/utils"
)

// ValidationError representa una violación puntual del esquema wire.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implementa la interfaz error.
func (v *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", v.Field, v.Value, v.Message)
}

// NewValidationError crea un nuevo ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ValidationErrors agrega todas las violaciones de una pasada de validación.
//
// Los validadores wire no cortan en la primera violación: recorren el value
// completo y reportan cada campo problemático, para que el caller pueda
// informar todo de una vez.
type ValidationErrors struct {
	Violations []*ValidationError
}

// Error implementa la interfaz error.
func (v *ValidationErrors) Error() string {
	if len(v.Violations) == 0 {
		return "validation failed: no violations recorded"
	}

	parts := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		parts = append(parts, fmt.Sprintf("'%s': %s", violation.Field, violation.Message))
	}
	return fmt.Sprintf("validation failed (%d violations): %s", len(v.Violations), strings.Join(parts, "; "))
}

// Fields retorna los field paths de todas las violaciones.
func (v *ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		fields = append(fields, violation.Field)
	}
	return fields
}

// Has indica si hay una violación registrada para un field path.
func (v *ValidationErrors) Has(field string) bool {
	for _, violation := range v.Violations {
		if violation.Field == field {
			return true
		}
	}
	return false
}

// Tokens de enums del wire format. Case-sensitive, idénticos en ambas
// implementaciones.
var (
	sideTokens = []string{string(SideBuy), string(SideSell)}

	buyEffectTokens  = []string{string(EffectOpenLong), string(EffectCloseShort)}
	sellEffectTokens = []string{string(EffectCloseLong), string(EffectOpenShort)}
	allEffectTokens  = []string{string(EffectOpenLong), string(EffectCloseShort), string(EffectCloseLong), string(EffectOpenShort)}

	orderTypeTokens = []string{string(OrderTypeMarket), string(OrderTypeLimit), string(OrderTypeStop), string(OrderTypeStopLimit)}

	orderStatusTokens = []string{
		string(OrderStatusPending), string(OrderStatusOpen), string(OrderStatusPartial),
		string(OrderStatusFilled), string(OrderStatusCancelled), string(OrderStatusReject),
	}

	barIntervalTokens = []string{
		string(Bar1m), string(Bar5m), string(Bar15m), string(Bar30m),
		string(Bar1h), string(Bar2h), string(Bar4h),
		string(Bar1d), string(Bar1w), string(Bar1M),
	}
)

// wireValidator recorre un wire value acumulando violaciones.
//
// Los helpers require*/optional* retornan el valor extraído y un ok; en caso
// de violación registran el error y retornan ok=false sin abortar la pasada.
type wireValidator struct {
	errs ValidationErrors
}

func (v *wireValidator) add(field string, value interface{}, message string) {
	v.errs.Violations = append(v.errs.Violations, NewValidationError(field, value, message))
}

// result retorna nil si no hubo violaciones, o el agregado.
func (v *wireValidator) result() error {
	if len(v.errs.Violations) == 0 {
		return nil
	}
	return &v.errs
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexPath(prefix, key string, i int) string {
	return fmt.Sprintf("%s[%d]", joinPath(prefix, key), i)
}

func (v *wireValidator) requireString(m map[string]interface{}, prefix, key string) (string, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return "", false
	}

	s, ok := raw.(string)
	if !ok {
		v.add(path, raw, "expected string")
		return "", false
	}

	if s == "" {
		v.add(path, s, "cannot be empty")
		return "", false
	}

	return s, true
}

func (v *wireValidator) optionalString(m map[string]interface{}, prefix, key string) {
	raw, exists := m[key]
	if !exists {
		return
	}
	if _, ok := raw.(string); !ok {
		v.add(joinPath(prefix, key), raw, "expected string")
	}
}

func (v *wireValidator) requireNumber(m map[string]interface{}, prefix, key string) (float64, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return 0, false
	}

	f, ok := utils.AsFloat64(raw)
	if !ok {
		v.add(path, raw, "expected number")
		return 0, false
	}

	if !utils.IsFiniteNumber(raw) {
		v.add(path, raw, "number must be finite")
		return 0, false
	}

	return f, true
}

func (v *wireValidator) optionalNumber(m map[string]interface{}, prefix, key string) {
	raw, exists := m[key]
	if !exists {
		return
	}
	path := joinPath(prefix, key)
	if _, ok := utils.AsFloat64(raw); !ok {
		v.add(path, raw, "expected number")
		return
	}
	if !utils.IsFiniteNumber(raw) {
		v.add(path, raw, "number must be finite")
	}
}

// requireTimestamp valida un epoch-ms como entero crudo. Sin validación de
// rango: negativos e implausibles pasan.
func (v *wireValidator) requireTimestamp(m map[string]interface{}, prefix, key string) (int64, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return 0, false
	}

	ms, ok := utils.AsInt64(raw)
	if !ok {
		v.add(path, raw, "expected epoch-ms integer")
		return 0, false
	}

	return ms, true
}

func (v *wireValidator) optionalTimestamp(m map[string]interface{}, prefix, key string) {
	raw, exists := m[key]
	if !exists {
		return
	}
	if _, ok := utils.AsInt64(raw); !ok {
		v.add(joinPath(prefix, key), raw, "expected epoch-ms integer")
	}
}

func (v *wireValidator) requireToken(m map[string]interface{}, prefix, key string, allowed []string) (string, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return "", false
	}

	s, ok := raw.(string)
	if !ok {
		v.add(path, raw, "expected string")
		return "", false
	}

	for _, token := range allowed {
		if s == token {
			return s, true
		}
	}

	v.add(path, s, fmt.Sprintf("must be one of %v", allowed))
	return "", false
}

func (v *wireValidator) optionalToken(m map[string]interface{}, prefix, key string, allowed []string) {
	if _, exists := m[key]; !exists {
		return
	}
	v.requireToken(m, prefix, key, allowed)
}

func (v *wireValidator) requireObject(m map[string]interface{}, prefix, key string) (map[string]interface{}, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return nil, false
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		v.add(path, raw, "expected object")
		return nil, false
	}

	return obj, true
}

func (v *wireValidator) optionalObject(m map[string]interface{}, prefix, key string) (map[string]interface{}, bool) {
	raw, exists := m[key]
	if !exists {
		return nil, false
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		v.add(joinPath(prefix, key), raw, "expected object")
		return nil, false
	}

	return obj, true
}

func (v *wireValidator) requireArray(m map[string]interface{}, prefix, key string) ([]interface{}, bool) {
	path := joinPath(prefix, key)
	raw, exists := m[key]
	if !exists {
		v.add(path, nil, "required field missing")
		return nil, false
	}

	arr, ok := raw.([]interface{})
	if !ok {
		v.add(path, raw, "expected array")
		return nil, false
	}

	return arr, true
}

// validateActionWire valida el pairing side/effect de un wire value.
//
// El effect se valida contra el subconjunto legal del side dado, no contra la
// unión de ambos subconjuntos.
func (v *wireValidator) validateActionWire(m map[string]interface{}, prefix string) {
	side, sideOK := v.requireToken(m, prefix, "side", sideTokens)

	if !sideOK {
		// Side inválido: el effect solo se chequea contra la unión, para
		// reportar tipos/tokens desconocidos sin duplicar el error de pairing.
		v.requireToken(m, prefix, "effect", allEffectTokens)
		return
	}

	allowed := buyEffectTokens
	if side == string(SideSell) {
		allowed = sellEffectTokens
	}

	path := joinPath(prefix, "effect")
	raw, exists := m["effect"]
	if !exists {
		v.add(path, nil, "required field missing")
		return
	}

	s, ok := raw.(string)
	if !ok {
		v.add(path, raw, "expected string")
		return
	}

	for _, token := range allowed {
		if s == token {
			return
		}
	}

	v.add(path, s, fmt.Sprintf("effect not legal for side %s (expected one of %v)", side, allowed))
}

// validateOrderCoreWire valida los campos comunes de Order y OrderState.
func (v *wireValidator) validateOrderCoreWire(m map[string]interface{}, prefix string) {
	v.requireString(m, prefix, "id")
	v.requireString(m, prefix, "symbol")
	v.validateActionWire(m, prefix)
	v.requireToken(m, prefix, "type", orderTypeTokens)
	v.requireNumber(m, prefix, "quantity")
	v.optionalNumber(m, prefix, "price")
	v.optionalNumber(m, prefix, "stopPrice")
	v.optionalTimestamp(m, prefix, "created")
}

func (v *wireValidator) validateLongPositionWire(m map[string]interface{}, prefix string) {
	v.requireNumber(m, prefix, "quantity")
	v.requireNumber(m, prefix, "totalCost")
	v.requireNumber(m, prefix, "realisedPnL")
	v.requireTimestamp(m, prefix, "modified")

	lots, ok := v.requireArray(m, prefix, "lots")
	if !ok {
		return
	}
	for i, raw := range lots {
		lotPath := indexPath(prefix, "lots", i)
		lot, ok := raw.(map[string]interface{})
		if !ok {
			v.add(lotPath, raw, "expected object")
			continue
		}
		v.requireNumber(lot, lotPath, "quantity")
		v.requireNumber(lot, lotPath, "price")
		v.requireNumber(lot, lotPath, "totalCost")
	}
}

func (v *wireValidator) validateShortPositionWire(m map[string]interface{}, prefix string) {
	v.requireNumber(m, prefix, "quantity")
	v.requireNumber(m, prefix, "totalProceeds")
	v.requireNumber(m, prefix, "realisedPnL")
	v.requireTimestamp(m, prefix, "modified")

	lots, ok := v.requireArray(m, prefix, "lots")
	if !ok {
		return
	}
	for i, raw := range lots {
		lotPath := indexPath(prefix, "lots", i)
		lot, ok := raw.(map[string]interface{})
		if !ok {
			v.add(lotPath, raw, "expected object")
			continue
		}
		v.requireNumber(lot, lotPath, "quantity")
		v.requireNumber(lot, lotPath, "price")
		v.requireNumber(lot, lotPath, "totalProceeds")
	}
}

// Validadores por entidad. Cada uno acepta un wire value de forma arbitraria
// y retorna nil o un *ValidationErrors con todas las violaciones. Claves
// desconocidas se toleran.

// ValidateAssetWire valida el wire shape de Asset.
//
// Example:
//
//	m, _ := utils.JSONToMap(jsonBytes)
//	if err := domain.ValidateAssetWire(m); err != nil {
//	    // err enumera todos los campos inválidos
//	}
func ValidateAssetWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireString(m, "", "symbol")
	v.requireString(m, "", "currency")
	v.optionalString(m, "", "type")
	v.optionalString(m, "", "name")
	v.optionalString(m, "", "exchange")
	v.optionalNumber(m, "", "lotSize")
	v.optionalNumber(m, "", "tickSize")
	v.optionalTimestamp(m, "", "validFrom")
	v.optionalTimestamp(m, "", "validUntil")
	return v.result()
}

// ValidateMarketSnapshotWire valida el wire shape de MarketSnapshot.
func ValidateMarketSnapshotWire(m map[string]interface{}) error {
	v := &wireValidator{}

	if price, ok := v.requireObject(m, "", "price"); ok {
		for symbol, raw := range price {
			entryPath := joinPath("price", symbol)
			if _, ok := utils.AsFloat64(raw); !ok {
				v.add(entryPath, raw, "expected number")
				continue
			}
			if !utils.IsFiniteNumber(raw) {
				v.add(entryPath, raw, "number must be finite")
			}
		}
	}

	v.requireTimestamp(m, "", "timestamp")
	return v.result()
}

// ValidateMarketQuoteWire valida el wire shape de MarketQuote.
func ValidateMarketQuoteWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireString(m, "", "symbol")
	v.requireNumber(m, "", "price")
	v.requireTimestamp(m, "", "timestamp")
	v.optionalNumber(m, "", "volume")
	v.optionalNumber(m, "", "totalVolume")
	v.optionalNumber(m, "", "bid")
	v.optionalNumber(m, "", "bidVol")
	v.optionalNumber(m, "", "ask")
	v.optionalNumber(m, "", "askVol")
	v.optionalNumber(m, "", "preClose")
	return v.result()
}

// ValidateMarketBarWire valida el wire shape de MarketBar.
func ValidateMarketBarWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireString(m, "", "symbol")
	v.requireNumber(m, "", "open")
	v.requireNumber(m, "", "high")
	v.requireNumber(m, "", "low")
	v.requireNumber(m, "", "close")
	v.requireNumber(m, "", "volume")
	v.requireToken(m, "", "interval", barIntervalTokens)
	v.requireTimestamp(m, "", "timestamp")
	return v.result()
}

// ValidateOrderWire valida el wire shape de Order, incluyendo el pairing
// side/effect.
func ValidateOrderWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.validateOrderCoreWire(m, "")
	return v.result()
}

// ValidatePartialOrderWire valida el wire shape de PartialOrder.
//
// Solo id es obligatorio; side y effect deben venir juntos o no venir, porque
// el pairing es inseparable.
func ValidatePartialOrderWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireString(m, "", "id")
	v.optionalString(m, "", "symbol")

	_, hasSide := m["side"]
	_, hasEffect := m["effect"]
	switch {
	case hasSide && hasEffect:
		v.validateActionWire(m, "")
	case hasSide:
		v.add("effect", nil, "effect is required when side is present")
		v.requireToken(m, "", "side", sideTokens)
	case hasEffect:
		v.add("side", nil, "side is required when effect is present")
		v.requireToken(m, "", "effect", allEffectTokens)
	}

	v.optionalToken(m, "", "type", orderTypeTokens)
	v.optionalNumber(m, "", "quantity")
	v.optionalNumber(m, "", "price")
	v.optionalNumber(m, "", "stopPrice")
	v.optionalTimestamp(m, "", "created")
	return v.result()
}

// ValidateOrderStateWire valida el wire shape de OrderState.
//
// La consistencia filled+remaining==quantity y status vs fill ratio es
// responsabilidad del caller, no del esquema.
func ValidateOrderStateWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.validateOrderCoreWire(m, "")
	v.requireNumber(m, "", "filledQuantity")
	v.requireNumber(m, "", "remainingQuantity")
	v.requireToken(m, "", "status", orderStatusTokens)
	v.requireTimestamp(m, "", "modified")
	return v.result()
}

// ValidateFillWire valida el wire shape de Fill. Todos los campos son
// obligatorios.
func ValidateFillWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireString(m, "", "id")
	v.requireString(m, "", "orderId")
	v.requireString(m, "", "symbol")
	v.validateActionWire(m, "")
	v.requireNumber(m, "", "quantity")
	v.requireNumber(m, "", "price")
	v.requireNumber(m, "", "commission")
	v.requireTimestamp(m, "", "created")
	return v.result()
}

// ValidateLongPositionWire valida el wire shape de LongPosition.
func ValidateLongPositionWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.validateLongPositionWire(m, "")
	return v.result()
}

// ValidateShortPositionWire valida el wire shape de ShortPosition.
func ValidateShortPositionWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.validateShortPositionWire(m, "")
	return v.result()
}

// ValidatePositionWire valida el wire shape de Position, con long/short
// validados recursivamente entrada por entrada.
func ValidatePositionWire(m map[string]interface{}) error {
	v := &wireValidator{}
	v.requireNumber(m, "", "cash")
	v.requireNumber(m, "", "totalCommission")
	v.requireNumber(m, "", "realisedPnL")
	v.requireTimestamp(m, "", "modified")

	if long, ok := v.optionalObject(m, "", "long"); ok {
		for symbol, raw := range long {
			entryPath := joinPath("long", symbol)
			entry, ok := raw.(map[string]interface{})
			if !ok {
				v.add(entryPath, raw, "expected object")
				continue
			}
			v.validateLongPositionWire(entry, entryPath)
		}
	}

	if short, ok := v.optionalObject(m, "", "short"); ok {
		for symbol, raw := range short {
			entryPath := joinPath("short", symbol)
			entry, ok := raw.(map[string]interface{})
			if !ok {
				v.add(entryPath, raw, "expected object")
				continue
			}
			v.validateShortPositionWire(entry, entryPath)
		}
	}

	return v.result()
}
