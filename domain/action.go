package domain

// Side representa la dirección de una orden.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Effect representa el efecto de posición de una orden.
//
// El conjunto legal depende del Side: BUY admite {OPEN_LONG, CLOSE_SHORT},
// SELL admite {CLOSE_LONG, OPEN_SHORT}. Go no tiene uniones cerradas, así que
// el invariante se impone vía constructores y validación (ver OrderAction).
type Effect string

const (
	EffectOpenLong   Effect = "OPEN_LONG"
	EffectCloseShort Effect = "CLOSE_SHORT"
	EffectCloseLong  Effect = "CLOSE_LONG"
	EffectOpenShort  Effect = "OPEN_SHORT"
)

// String implementa fmt.Stringer para Side.
func (s Side) String() string {
	return string(s)
}

// String implementa fmt.Stringer para Effect.
func (e Effect) String() string {
	return string(e)
}

// Admits indica si un Effect es legal para este Side.
//
// Example:
//
//	domain.SideBuy.Admits(domain.EffectOpenLong)  // => true
//	domain.SideBuy.Admits(domain.EffectCloseLong) // => false
func (s Side) Admits(e Effect) bool {
	switch s {
	case SideBuy:
		return e == EffectOpenLong || e == EffectCloseShort
	case SideSell:
		return e == EffectCloseLong || e == EffectOpenShort
	default:
		return false
	}
}

// Effects retorna los effects legales para este Side.
func (s Side) Effects() []Effect {
	switch s {
	case SideBuy:
		return []Effect{EffectOpenLong, EffectCloseShort}
	case SideSell:
		return []Effect{EffectCloseLong, EffectOpenShort}
	default:
		return nil
	}
}

// OrderAction representa el pairing side/effect de una orden o fill.
//
// Las únicas combinaciones legales son BUY×{OPEN_LONG, CLOSE_SHORT} y
// SELL×{CLOSE_LONG, OPEN_SHORT}. Construir vía OpenLong/CloseShort/CloseLong/
// OpenShort o NewOrderAction; un literal construido a mano con un pairing
// ilegal será rechazado por Validate y por los encoders.
type OrderAction struct {
	Side   Side
	Effect Effect
}

// OpenLong retorna la acción BUY/OPEN_LONG.
func OpenLong() OrderAction {
	return OrderAction{Side: SideBuy, Effect: EffectOpenLong}
}

// CloseShort retorna la acción BUY/CLOSE_SHORT.
func CloseShort() OrderAction {
	return OrderAction{Side: SideBuy, Effect: EffectCloseShort}
}

// CloseLong retorna la acción SELL/CLOSE_LONG.
func CloseLong() OrderAction {
	return OrderAction{Side: SideSell, Effect: EffectCloseLong}
}

// OpenShort retorna la acción SELL/OPEN_SHORT.
func OpenShort() OrderAction {
	return OrderAction{Side: SideSell, Effect: EffectOpenShort}
}

// NewOrderAction crea un OrderAction validando el pairing.
//
// Example:
//
//	action, err := domain.NewOrderAction(domain.SideBuy, domain.EffectCloseLong)
//	// => err: CLOSE_LONG no es legal para BUY
func NewOrderAction(side Side, effect Effect) (OrderAction, error) {
	action := OrderAction{Side: side, Effect: effect}
	if err := action.Validate(); err != nil {
		return OrderAction{}, err
	}
	return action, nil
}

// Validate verifica que el pairing side/effect sea legal.
func (a OrderAction) Validate() error {
	switch a.Side {
	case SideBuy, SideSell:
	default:
		return NewValidationError("side", a.Side, "side must be BUY or SELL")
	}

	if !a.Side.Admits(a.Effect) {
		return NewValidationError("effect", a.Effect, "effect not legal for side "+string(a.Side))
	}

	return nil
}

// IsOpening indica si la acción abre posición (OPEN_LONG u OPEN_SHORT).
func (a OrderAction) IsOpening() bool {
	return a.Effect == EffectOpenLong || a.Effect == EffectOpenShort
}

// IsClosing indica si la acción cierra posición (CLOSE_LONG o CLOSE_SHORT).
func (a OrderAction) IsClosing() bool {
	return a.Effect == EffectCloseLong || a.Effect == EffectCloseShort
}
