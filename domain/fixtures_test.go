package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junduck/trading-core-types/utils"
)

// Los fixtures bajo testdata/ son el contrato de compatibilidad con la
// implementación hermana: un fixture producido por cualquiera de las dos debe
// validar, decodificar y re-encodear idéntico aquí.

func loadFixture(t *testing.T, name string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	m, err := utils.JSONToMap(data)
	require.NoError(t, err)
	return m
}

// assertLossless verifica que el wire re-encodeado sea JSON-igual al fixture.
func assertLossless(t *testing.T, name string, encoded map[string]interface{}) {
	t.Helper()

	original, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	actual, err := utils.MapToJSON(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(actual))
}

func TestFixture_Asset(t *testing.T) {
	m := loadFixture(t, "asset.json")
	require.NoError(t, ValidateAssetWire(m))

	asset, err := JSONToAsset(m)
	require.NoError(t, err)
	assert.Equal(t, "TSLA", asset.Symbol)
	assert.Equal(t, "USD", asset.Currency)
	require.NotNil(t, asset.ValidFrom)
	assert.Equal(t, utils.UnixMilliToTime(1609459200000), *asset.ValidFrom)
	assert.Nil(t, asset.ValidUntil)

	wire, err := AssetToJSON(asset)
	require.NoError(t, err)
	assertLossless(t, "asset.json", wire)
}

func TestFixture_MarketSnapshot(t *testing.T) {
	m := loadFixture(t, "market_snapshot.json")

	snapshot, err := JSONToMarketSnapshot(m)
	require.NoError(t, err)
	require.Len(t, snapshot.Price, 2)
	assert.Equal(t, float64(50000), snapshot.Price["BTCUSDT"])
	assert.Equal(t, float64(3000), snapshot.Price["ETHUSDT"])

	wire, err := MarketSnapshotToJSON(snapshot)
	require.NoError(t, err)
	assertLossless(t, "market_snapshot.json", wire)
}

func TestFixture_MarketQuote(t *testing.T) {
	m := loadFixture(t, "market_quote.json")

	quote, err := JSONToMarketQuote(m)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", quote.Symbol)
	require.NotNil(t, quote.Bid)
	require.NotNil(t, quote.Ask)
	assert.Equal(t, float64(50000), *quote.Bid)

	wire, err := MarketQuoteToJSON(quote)
	require.NoError(t, err)
	assertLossless(t, "market_quote.json", wire)
}

func TestFixture_MarketBar(t *testing.T) {
	m := loadFixture(t, "market_bar.json")

	bar, err := JSONToMarketBar(m)
	require.NoError(t, err)
	assert.Equal(t, Bar1h, bar.Interval)
	assert.Equal(t, utils.UnixMilliToTime(1609459200000), bar.Timestamp)

	wire, err := MarketBarToJSON(bar)
	require.NoError(t, err)
	assertLossless(t, "market_bar.json", wire)
}

func TestFixture_Order(t *testing.T) {
	m := loadFixture(t, "order.json")

	order, err := JSONToOrder(m)
	require.NoError(t, err)
	assert.Equal(t, "order-12345", order.ID)
	assert.Equal(t, OpenLong(), order.OrderAction)
	require.NotNil(t, order.Created)
	assert.Equal(t, int64(1609459200000), order.Created.UnixMilli())

	wire, err := OrderToJSON(order)
	require.NoError(t, err)
	assertLossless(t, "order.json", wire)
}

func TestFixture_PartialOrder(t *testing.T) {
	m := loadFixture(t, "partial_order.json")

	patch, err := JSONToPartialOrder(m)
	require.NoError(t, err)
	assert.Equal(t, "order-12345", patch.ID)
	require.NotNil(t, patch.Quantity)
	assert.Equal(t, float64(50), *patch.Quantity)
	assert.Nil(t, patch.Side)
	assert.Nil(t, patch.Effect)
	assert.Nil(t, patch.Symbol)

	wire, err := PartialOrderToJSON(patch)
	require.NoError(t, err)
	assertLossless(t, "partial_order.json", wire)
}

func TestFixture_OrderState(t *testing.T) {
	m := loadFixture(t, "order_state.json")

	state, err := JSONToOrderState(m)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPartial, state.Status)
	assert.True(t, state.QuantityConsistent())

	wire, err := OrderStateToJSON(state)
	require.NoError(t, err)
	assertLossless(t, "order_state.json", wire)
}

func TestFixture_Fill(t *testing.T) {
	m := loadFixture(t, "fill.json")

	fill, err := JSONToFill(m)
	require.NoError(t, err)
	assert.Equal(t, "order-12345", fill.OrderID)
	assert.Equal(t, OpenLong(), fill.OrderAction)

	wire, err := FillToJSON(fill)
	require.NoError(t, err)
	assertLossless(t, "fill.json", wire)
}

func TestFixture_LongPosition(t *testing.T) {
	m := loadFixture(t, "long_position.json")

	position, err := JSONToLongPosition(m)
	require.NoError(t, err)
	require.Len(t, position.Lots, 2)
	assert.Equal(t, 2505.0, position.Lots[0].TotalCost)

	wire, err := LongPositionToJSON(position)
	require.NoError(t, err)
	assertLossless(t, "long_position.json", wire)
}

func TestFixture_ShortPosition(t *testing.T) {
	m := loadFixture(t, "short_position.json")

	position, err := JSONToShortPosition(m)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, position.TotalProceeds)

	wire, err := ShortPositionToJSON(position)
	require.NoError(t, err)
	assertLossless(t, "short_position.json", wire)
}

func TestFixture_Position(t *testing.T) {
	m := loadFixture(t, "position.json")

	position, err := JSONToPosition(m)
	require.NoError(t, err)
	require.Len(t, position.Long, 1)
	require.Len(t, position.Short, 1)
	assert.Equal(t, 2505.0, position.Long["TSLA"].TotalCost)
	assert.Equal(t, 25000.0, position.Short["BTCUSDT"].TotalProceeds)

	wire, err := PositionToJSON(position)
	require.NoError(t, err)
	assertLossless(t, "position.json", wire)
}
