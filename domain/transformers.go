package domain

import (
	"time"

	"github.com/junduck/trading-core-types/utils"
)

// Transformadores wire ⇄ runtime.
//
// JSONToX valida el wire value como precondición y construye el runtime value:
// epoch-ms → time.Time (UTC), objetos keyed por símbolo → maps nativos
// reconstruidos entrada por entrada, opcionales ausentes quedan nil.
//
// XToJSON es la inversa exacta: time.Time → epoch-ms, maps → objetos planos,
// opcionales nil se omiten del map (nunca null). Los encoders rechazan
// pairings side/effect ilegales y números no finitos, de modo que un runtime
// value construido a mano fuera del esquema no serializa.

// wireBuilder acumula un wire map validando en el camino (espejo de
// wireValidator para la dirección encode).
type wireBuilder struct {
	m    map[string]interface{}
	errs ValidationErrors
}

func newWireBuilder() *wireBuilder {
	return &wireBuilder{m: make(map[string]interface{})}
}

func (b *wireBuilder) put(key string, value interface{}) {
	b.m[key] = value
}

func (b *wireBuilder) putNumber(prefix, key string, f float64) {
	if !utils.IsFiniteNumber(f) {
		b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath(prefix, key), f, "number must be finite"))
		return
	}
	b.m[key] = f
}

func (b *wireBuilder) putOptionalNumber(prefix, key string, f *float64) {
	if f == nil {
		return
	}
	b.putNumber(prefix, key, *f)
}

func (b *wireBuilder) putOptionalString(key string, s *string) {
	if s == nil {
		return
	}
	b.m[key] = *s
}

func (b *wireBuilder) putTimestamp(key string, t time.Time) {
	b.m[key] = utils.TimeToUnixMilli(t)
}

func (b *wireBuilder) putOptionalTimestamp(key string, t *time.Time) {
	if t == nil {
		return
	}
	b.putTimestamp(key, *t)
}

func (b *wireBuilder) putAction(a OrderAction) {
	if err := a.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			b.errs.Violations = append(b.errs.Violations, verr)
		} else {
			b.errs.Violations = append(b.errs.Violations, NewValidationError("side", a.Side, err.Error()))
		}
		return
	}
	b.m["side"] = string(a.Side)
	b.m["effect"] = string(a.Effect)
}

func (b *wireBuilder) result() (map[string]interface{}, error) {
	if len(b.errs.Violations) > 0 {
		return nil, &b.errs
	}
	return b.m, nil
}

// Asset

// JSONToAsset convierte un wire map a Asset.
//
// Example:
//
//	m, _ := utils.JSONToMap(jsonBytes)
//	asset, err := domain.JSONToAsset(m)
func JSONToAsset(m map[string]interface{}) (*Asset, error) {
	if err := ValidateAssetWire(m); err != nil {
		return nil, err
	}

	asset := &Asset{
		Symbol:   utils.ExtractString(m, "symbol"),
		Currency: utils.ExtractString(m, "currency"),
	}

	if s, ok := utils.ExtractStringOk(m, "type"); ok {
		asset.Type = &s
	}
	if s, ok := utils.ExtractStringOk(m, "name"); ok {
		asset.Name = &s
	}
	if s, ok := utils.ExtractStringOk(m, "exchange"); ok {
		asset.Exchange = &s
	}
	if f, ok := utils.ExtractFloat64Ok(m, "lotSize"); ok {
		asset.LotSize = &f
	}
	if f, ok := utils.ExtractFloat64Ok(m, "tickSize"); ok {
		asset.TickSize = &f
	}
	if ms, ok := utils.ExtractInt64Ok(m, "validFrom"); ok {
		asset.ValidFrom = utils.UnixMilliToTimePtr(ms)
	}
	if ms, ok := utils.ExtractInt64Ok(m, "validUntil"); ok {
		asset.ValidUntil = utils.UnixMilliToTimePtr(ms)
	}

	return asset, nil
}

// AssetToJSON convierte un Asset a wire map.
func AssetToJSON(asset *Asset) (map[string]interface{}, error) {
	if asset == nil {
		return nil, NewError(ErrMissingRequiredField, "Asset is nil")
	}

	b := newWireBuilder()
	b.put("symbol", asset.Symbol)
	b.put("currency", asset.Currency)
	b.putOptionalString("type", asset.Type)
	b.putOptionalString("name", asset.Name)
	b.putOptionalString("exchange", asset.Exchange)
	b.putOptionalNumber("", "lotSize", asset.LotSize)
	b.putOptionalNumber("", "tickSize", asset.TickSize)
	b.putOptionalTimestamp("validFrom", asset.ValidFrom)
	b.putOptionalTimestamp("validUntil", asset.ValidUntil)
	return b.result()
}

// MarketSnapshot

// JSONToMarketSnapshot convierte un wire map a MarketSnapshot.
//
// El objeto price se reconstruye entrada por entrada en un map nativo: misma
// cantidad de claves, ninguna agregada ni perdida.
func JSONToMarketSnapshot(m map[string]interface{}) (*MarketSnapshot, error) {
	if err := ValidateMarketSnapshotWire(m); err != nil {
		return nil, err
	}

	priceWire := m["price"].(map[string]interface{})
	price := make(map[string]float64, len(priceWire))
	for symbol, raw := range priceWire {
		f, _ := utils.AsFloat64(raw)
		price[symbol] = f
	}

	return &MarketSnapshot{
		Price:     price,
		Timestamp: utils.UnixMilliToTime(utils.ExtractInt64(m, "timestamp")),
	}, nil
}

// MarketSnapshotToJSON convierte un MarketSnapshot a wire map.
func MarketSnapshotToJSON(snapshot *MarketSnapshot) (map[string]interface{}, error) {
	if snapshot == nil {
		return nil, NewError(ErrMissingRequiredField, "MarketSnapshot is nil")
	}

	b := newWireBuilder()

	price := make(map[string]interface{}, len(snapshot.Price))
	for symbol, last := range snapshot.Price {
		if !utils.IsFiniteNumber(last) {
			b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath("price", symbol), last, "number must be finite"))
			continue
		}
		price[symbol] = last
	}
	b.put("price", price)
	b.putTimestamp("timestamp", snapshot.Timestamp)

	return b.result()
}

// MarketQuote

// JSONToMarketQuote convierte un wire map a MarketQuote.
func JSONToMarketQuote(m map[string]interface{}) (*MarketQuote, error) {
	if err := ValidateMarketQuoteWire(m); err != nil {
		return nil, err
	}

	quote := &MarketQuote{
		Symbol:    utils.ExtractString(m, "symbol"),
		Price:     utils.ExtractFloat64(m, "price"),
		Timestamp: utils.UnixMilliToTime(utils.ExtractInt64(m, "timestamp")),
	}

	optionals := []struct {
		key    string
		target **float64
	}{
		{"volume", &quote.Volume},
		{"totalVolume", &quote.TotalVolume},
		{"bid", &quote.Bid},
		{"bidVol", &quote.BidVol},
		{"ask", &quote.Ask},
		{"askVol", &quote.AskVol},
		{"preClose", &quote.PreClose},
	}
	for _, opt := range optionals {
		if f, ok := utils.ExtractFloat64Ok(m, opt.key); ok {
			value := f
			*opt.target = &value
		}
	}

	return quote, nil
}

// MarketQuoteToJSON convierte un MarketQuote a wire map.
func MarketQuoteToJSON(quote *MarketQuote) (map[string]interface{}, error) {
	if quote == nil {
		return nil, NewError(ErrMissingRequiredField, "MarketQuote is nil")
	}

	b := newWireBuilder()
	b.put("symbol", quote.Symbol)
	b.putNumber("", "price", quote.Price)
	b.putTimestamp("timestamp", quote.Timestamp)
	b.putOptionalNumber("", "volume", quote.Volume)
	b.putOptionalNumber("", "totalVolume", quote.TotalVolume)
	b.putOptionalNumber("", "bid", quote.Bid)
	b.putOptionalNumber("", "bidVol", quote.BidVol)
	b.putOptionalNumber("", "ask", quote.Ask)
	b.putOptionalNumber("", "askVol", quote.AskVol)
	b.putOptionalNumber("", "preClose", quote.PreClose)
	return b.result()
}

// MarketBar

// JSONToMarketBar convierte un wire map a MarketBar.
func JSONToMarketBar(m map[string]interface{}) (*MarketBar, error) {
	if err := ValidateMarketBarWire(m); err != nil {
		return nil, err
	}

	return &MarketBar{
		Symbol:    utils.ExtractString(m, "symbol"),
		Open:      utils.ExtractFloat64(m, "open"),
		High:      utils.ExtractFloat64(m, "high"),
		Low:       utils.ExtractFloat64(m, "low"),
		Close:     utils.ExtractFloat64(m, "close"),
		Volume:    utils.ExtractFloat64(m, "volume"),
		Interval:  BarInterval(utils.ExtractString(m, "interval")),
		Timestamp: utils.UnixMilliToTime(utils.ExtractInt64(m, "timestamp")),
	}, nil
}

// MarketBarToJSON convierte un MarketBar a wire map.
func MarketBarToJSON(bar *MarketBar) (map[string]interface{}, error) {
	if bar == nil {
		return nil, NewError(ErrMissingRequiredField, "MarketBar is nil")
	}

	b := newWireBuilder()
	b.put("symbol", bar.Symbol)
	b.putNumber("", "open", bar.Open)
	b.putNumber("", "high", bar.High)
	b.putNumber("", "low", bar.Low)
	b.putNumber("", "close", bar.Close)
	b.putNumber("", "volume", bar.Volume)
	b.put("interval", string(bar.Interval))
	b.putTimestamp("timestamp", bar.Timestamp)
	return b.result()
}

// Order

// decodeOrderCore extrae los campos de Order desde un wire value ya validado.
func decodeOrderCore(m map[string]interface{}) Order {
	order := Order{
		ID:     utils.ExtractString(m, "id"),
		Symbol: utils.ExtractString(m, "symbol"),
		OrderAction: OrderAction{
			Side:   Side(utils.ExtractString(m, "side")),
			Effect: Effect(utils.ExtractString(m, "effect")),
		},
		Type:     OrderType(utils.ExtractString(m, "type")),
		Quantity: utils.ExtractFloat64(m, "quantity"),
	}

	if f, ok := utils.ExtractFloat64Ok(m, "price"); ok {
		order.Price = &f
	}
	if f, ok := utils.ExtractFloat64Ok(m, "stopPrice"); ok {
		order.StopPrice = &f
	}
	if ms, ok := utils.ExtractInt64Ok(m, "created"); ok {
		order.Created = utils.UnixMilliToTimePtr(ms)
	}

	return order
}

// encodeOrderCore vuelca los campos de Order en un wireBuilder.
func encodeOrderCore(b *wireBuilder, order *Order) {
	b.put("id", order.ID)
	b.put("symbol", order.Symbol)
	b.putAction(order.OrderAction)
	b.put("type", string(order.Type))
	b.putNumber("", "quantity", order.Quantity)
	b.putOptionalNumber("", "price", order.Price)
	b.putOptionalNumber("", "stopPrice", order.StopPrice)
	b.putOptionalTimestamp("created", order.Created)
}

// JSONToOrder convierte un wire map a Order.
//
// Example:
//
//	m, _ := utils.JSONToMap([]byte(`{"id":"order-12345","symbol":"TSLA",
//	    "side":"BUY","effect":"OPEN_LONG","type":"LIMIT","quantity":100,
//	    "price":250.5,"created":1609459200000}`))
//	order, err := domain.JSONToOrder(m)
func JSONToOrder(m map[string]interface{}) (*Order, error) {
	if err := ValidateOrderWire(m); err != nil {
		return nil, err
	}

	order := decodeOrderCore(m)
	return &order, nil
}

// OrderToJSON convierte una Order a wire map.
//
// Rechaza pairings side/effect ilegales: una Order construida a mano con
// BUY/CLOSE_LONG no serializa.
func OrderToJSON(order *Order) (map[string]interface{}, error) {
	if order == nil {
		return nil, NewError(ErrMissingRequiredField, "Order is nil")
	}

	b := newWireBuilder()
	encodeOrderCore(b, order)
	return b.result()
}

// PartialOrder

// JSONToPartialOrder convierte un wire map a PartialOrder.
func JSONToPartialOrder(m map[string]interface{}) (*PartialOrder, error) {
	if err := ValidatePartialOrderWire(m); err != nil {
		return nil, err
	}

	patch := &PartialOrder{
		ID: utils.ExtractString(m, "id"),
	}

	if s, ok := utils.ExtractStringOk(m, "symbol"); ok {
		patch.Symbol = &s
	}
	if s, ok := utils.ExtractStringOk(m, "side"); ok {
		side := Side(s)
		patch.Side = &side
	}
	if s, ok := utils.ExtractStringOk(m, "effect"); ok {
		effect := Effect(s)
		patch.Effect = &effect
	}
	if s, ok := utils.ExtractStringOk(m, "type"); ok {
		orderType := OrderType(s)
		patch.Type = &orderType
	}
	if f, ok := utils.ExtractFloat64Ok(m, "quantity"); ok {
		patch.Quantity = &f
	}
	if f, ok := utils.ExtractFloat64Ok(m, "price"); ok {
		patch.Price = &f
	}
	if f, ok := utils.ExtractFloat64Ok(m, "stopPrice"); ok {
		patch.StopPrice = &f
	}
	if ms, ok := utils.ExtractInt64Ok(m, "created"); ok {
		patch.Created = utils.UnixMilliToTimePtr(ms)
	}

	return patch, nil
}

// PartialOrderToJSON convierte un PartialOrder a wire map.
//
// Side y Effect deben estar ambos presentes o ambos ausentes; un patch con la
// mitad del pairing no serializa.
func PartialOrderToJSON(patch *PartialOrder) (map[string]interface{}, error) {
	if patch == nil {
		return nil, NewError(ErrMissingRequiredField, "PartialOrder is nil")
	}

	b := newWireBuilder()
	b.put("id", patch.ID)
	b.putOptionalString("symbol", patch.Symbol)

	switch {
	case patch.Side != nil && patch.Effect != nil:
		b.putAction(OrderAction{Side: *patch.Side, Effect: *patch.Effect})
	case patch.Side != nil:
		b.errs.Violations = append(b.errs.Violations, NewValidationError("effect", nil, "effect is required when side is present"))
	case patch.Effect != nil:
		b.errs.Violations = append(b.errs.Violations, NewValidationError("side", nil, "side is required when effect is present"))
	}

	if patch.Type != nil {
		b.put("type", string(*patch.Type))
	}
	b.putOptionalNumber("", "quantity", patch.Quantity)
	b.putOptionalNumber("", "price", patch.Price)
	b.putOptionalNumber("", "stopPrice", patch.StopPrice)
	b.putOptionalTimestamp("created", patch.Created)
	return b.result()
}

// OrderState

// JSONToOrderState convierte un wire map a OrderState.
func JSONToOrderState(m map[string]interface{}) (*OrderState, error) {
	if err := ValidateOrderStateWire(m); err != nil {
		return nil, err
	}

	return &OrderState{
		Order:             decodeOrderCore(m),
		FilledQuantity:    utils.ExtractFloat64(m, "filledQuantity"),
		RemainingQuantity: utils.ExtractFloat64(m, "remainingQuantity"),
		Status:            OrderStatus(utils.ExtractString(m, "status")),
		Modified:          utils.UnixMilliToTime(utils.ExtractInt64(m, "modified")),
	}, nil
}

// OrderStateToJSON convierte un OrderState a wire map.
func OrderStateToJSON(state *OrderState) (map[string]interface{}, error) {
	if state == nil {
		return nil, NewError(ErrMissingRequiredField, "OrderState is nil")
	}

	b := newWireBuilder()
	encodeOrderCore(b, &state.Order)
	b.putNumber("", "filledQuantity", state.FilledQuantity)
	b.putNumber("", "remainingQuantity", state.RemainingQuantity)
	b.put("status", string(state.Status))
	b.putTimestamp("modified", state.Modified)
	return b.result()
}

// Fill

// JSONToFill convierte un wire map a Fill.
func JSONToFill(m map[string]interface{}) (*Fill, error) {
	if err := ValidateFillWire(m); err != nil {
		return nil, err
	}

	return &Fill{
		ID:      utils.ExtractString(m, "id"),
		OrderID: utils.ExtractString(m, "orderId"),
		Symbol:  utils.ExtractString(m, "symbol"),
		OrderAction: OrderAction{
			Side:   Side(utils.ExtractString(m, "side")),
			Effect: Effect(utils.ExtractString(m, "effect")),
		},
		Quantity:   utils.ExtractFloat64(m, "quantity"),
		Price:      utils.ExtractFloat64(m, "price"),
		Commission: utils.ExtractFloat64(m, "commission"),
		Created:    utils.UnixMilliToTime(utils.ExtractInt64(m, "created")),
	}, nil
}

// FillToJSON convierte un Fill a wire map.
func FillToJSON(fill *Fill) (map[string]interface{}, error) {
	if fill == nil {
		return nil, NewError(ErrMissingRequiredField, "Fill is nil")
	}

	b := newWireBuilder()
	b.put("id", fill.ID)
	b.put("orderId", fill.OrderID)
	b.put("symbol", fill.Symbol)
	b.putAction(fill.OrderAction)
	b.putNumber("", "quantity", fill.Quantity)
	b.putNumber("", "price", fill.Price)
	b.putNumber("", "commission", fill.Commission)
	b.putTimestamp("created", fill.Created)
	return b.result()
}

// Positions

// decodeLongPosition extrae una LongPosition desde un wire value ya validado.
func decodeLongPosition(m map[string]interface{}) LongPosition {
	lotsWire, _ := m["lots"].([]interface{})
	lots := make([]LongLot, 0, len(lotsWire))
	for _, raw := range lotsWire {
		lot := raw.(map[string]interface{})
		lots = append(lots, LongLot{
			Quantity:  utils.ExtractFloat64(lot, "quantity"),
			Price:     utils.ExtractFloat64(lot, "price"),
			TotalCost: utils.ExtractFloat64(lot, "totalCost"),
		})
	}

	return LongPosition{
		Quantity:    utils.ExtractFloat64(m, "quantity"),
		TotalCost:   utils.ExtractFloat64(m, "totalCost"),
		RealisedPnL: utils.ExtractFloat64(m, "realisedPnL"),
		Lots:        lots,
		Modified:    utils.UnixMilliToTime(utils.ExtractInt64(m, "modified")),
	}
}

// decodeShortPosition extrae una ShortPosition desde un wire value ya validado.
func decodeShortPosition(m map[string]interface{}) ShortPosition {
	lotsWire, _ := m["lots"].([]interface{})
	lots := make([]ShortLot, 0, len(lotsWire))
	for _, raw := range lotsWire {
		lot := raw.(map[string]interface{})
		lots = append(lots, ShortLot{
			Quantity:      utils.ExtractFloat64(lot, "quantity"),
			Price:         utils.ExtractFloat64(lot, "price"),
			TotalProceeds: utils.ExtractFloat64(lot, "totalProceeds"),
		})
	}

	return ShortPosition{
		Quantity:      utils.ExtractFloat64(m, "quantity"),
		TotalProceeds: utils.ExtractFloat64(m, "totalProceeds"),
		RealisedPnL:   utils.ExtractFloat64(m, "realisedPnL"),
		Lots:          lots,
		Modified:      utils.UnixMilliToTime(utils.ExtractInt64(m, "modified")),
	}
}

func encodeLongPosition(b *wireBuilder, prefix string, position *LongPosition) map[string]interface{} {
	entry := map[string]interface{}{}

	putNested := func(key string, f float64) {
		if !utils.IsFiniteNumber(f) {
			b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath(prefix, key), f, "number must be finite"))
			return
		}
		entry[key] = f
	}

	putNested("quantity", position.Quantity)
	putNested("totalCost", position.TotalCost)
	putNested("realisedPnL", position.RealisedPnL)
	entry["modified"] = utils.TimeToUnixMilli(position.Modified)

	// lots es obligatorio: nil serializa como []
	lots := make([]interface{}, 0, len(position.Lots))
	for i, lot := range position.Lots {
		lotPath := indexPath(prefix, "lots", i)
		lotWire := map[string]interface{}{}
		for _, field := range []struct {
			key   string
			value float64
		}{
			{"quantity", lot.Quantity},
			{"price", lot.Price},
			{"totalCost", lot.TotalCost},
		} {
			if !utils.IsFiniteNumber(field.value) {
				b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath(lotPath, field.key), field.value, "number must be finite"))
				continue
			}
			lotWire[field.key] = field.value
		}
		lots = append(lots, lotWire)
	}
	entry["lots"] = lots

	return entry
}

func encodeShortPosition(b *wireBuilder, prefix string, position *ShortPosition) map[string]interface{} {
	entry := map[string]interface{}{}

	putNested := func(key string, f float64) {
		if !utils.IsFiniteNumber(f) {
			b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath(prefix, key), f, "number must be finite"))
			return
		}
		entry[key] = f
	}

	putNested("quantity", position.Quantity)
	putNested("totalProceeds", position.TotalProceeds)
	putNested("realisedPnL", position.RealisedPnL)
	entry["modified"] = utils.TimeToUnixMilli(position.Modified)

	lots := make([]interface{}, 0, len(position.Lots))
	for i, lot := range position.Lots {
		lotPath := indexPath(prefix, "lots", i)
		lotWire := map[string]interface{}{}
		for _, field := range []struct {
			key   string
			value float64
		}{
			{"quantity", lot.Quantity},
			{"price", lot.Price},
			{"totalProceeds", lot.TotalProceeds},
		} {
			if !utils.IsFiniteNumber(field.value) {
				b.errs.Violations = append(b.errs.Violations, NewValidationError(joinPath(lotPath, field.key), field.value, "number must be finite"))
				continue
			}
			lotWire[field.key] = field.value
		}
		lots = append(lots, lotWire)
	}
	entry["lots"] = lots

	return entry
}

// JSONToLongPosition convierte un wire map a LongPosition.
func JSONToLongPosition(m map[string]interface{}) (*LongPosition, error) {
	if err := ValidateLongPositionWire(m); err != nil {
		return nil, err
	}

	position := decodeLongPosition(m)
	return &position, nil
}

// LongPositionToJSON convierte una LongPosition a wire map.
func LongPositionToJSON(position *LongPosition) (map[string]interface{}, error) {
	if position == nil {
		return nil, NewError(ErrMissingRequiredField, "LongPosition is nil")
	}

	b := newWireBuilder()
	entry := encodeLongPosition(b, "", position)
	if len(b.errs.Violations) > 0 {
		return nil, &b.errs
	}
	return entry, nil
}

// JSONToShortPosition convierte un wire map a ShortPosition.
func JSONToShortPosition(m map[string]interface{}) (*ShortPosition, error) {
	if err := ValidateShortPositionWire(m); err != nil {
		return nil, err
	}

	position := decodeShortPosition(m)
	return &position, nil
}

// ShortPositionToJSON convierte una ShortPosition a wire map.
func ShortPositionToJSON(position *ShortPosition) (map[string]interface{}, error) {
	if position == nil {
		return nil, NewError(ErrMissingRequiredField, "ShortPosition is nil")
	}

	b := newWireBuilder()
	entry := encodeShortPosition(b, "", position)
	if len(b.errs.Violations) > 0 {
		return nil, &b.errs
	}
	return entry, nil
}

// JSONToPosition convierte un wire map a Position.
//
// long/short se reconstruyen recursivamente; la clave ausente queda nil, el
// objeto vacío queda map vacío (ambos estados round-trippean distinto).
func JSONToPosition(m map[string]interface{}) (*Position, error) {
	if err := ValidatePositionWire(m); err != nil {
		return nil, err
	}

	position := &Position{
		Cash:            utils.ExtractFloat64(m, "cash"),
		TotalCommission: utils.ExtractFloat64(m, "totalCommission"),
		RealisedPnL:     utils.ExtractFloat64(m, "realisedPnL"),
		Modified:        utils.UnixMilliToTime(utils.ExtractInt64(m, "modified")),
	}

	if longWire, ok := m["long"].(map[string]interface{}); ok {
		long := make(map[string]LongPosition, len(longWire))
		for symbol, raw := range longWire {
			long[symbol] = decodeLongPosition(raw.(map[string]interface{}))
		}
		position.Long = long
	}

	if shortWire, ok := m["short"].(map[string]interface{}); ok {
		short := make(map[string]ShortPosition, len(shortWire))
		for symbol, raw := range shortWire {
			short[symbol] = decodeShortPosition(raw.(map[string]interface{}))
		}
		position.Short = short
	}

	return position, nil
}

// PositionToJSON convierte una Position a wire map.
func PositionToJSON(position *Position) (map[string]interface{}, error) {
	if position == nil {
		return nil, NewError(ErrMissingRequiredField, "Position is nil")
	}

	b := newWireBuilder()
	b.putNumber("", "cash", position.Cash)
	b.putNumber("", "totalCommission", position.TotalCommission)
	b.putNumber("", "realisedPnL", position.RealisedPnL)
	b.putTimestamp("modified", position.Modified)

	if position.Long != nil {
		long := make(map[string]interface{}, len(position.Long))
		for symbol, entry := range position.Long {
			long[symbol] = encodeLongPosition(b, joinPath("long", symbol), &entry)
		}
		b.put("long", long)
	}

	if position.Short != nil {
		short := make(map[string]interface{}, len(position.Short))
		for symbol, entry := range position.Short {
			short[symbol] = encodeShortPosition(b, joinPath("short", symbol), &entry)
		}
		b.put("short", short)
	}

	return b.result()
}
