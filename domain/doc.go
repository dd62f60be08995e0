// Package domain contiene los tipos runtime del modelo de trading y su codec
// wire (JSON-safe) para trading-core-types.
//
// # Responsabilidades
//
// - Tipos runtime (Asset, MarketSnapshot/Quote/Bar, Order, Fill, Position)
// - Validadores estructurales del wire format (una violación por campo, todas
// en una pasada)
// - Transformaciones wire ⇄ runtime
// - Sistema de errores del dominio
//
// # Las dos representaciones
//
// El wire format es JSON puro: claves lower-camel-case, timestamps como epoch
// milliseconds (enteros, nunca ISO-8601), enums como tokens literales
// ("BUY", "1h", "PARTIAL"), lookups por símbolo como objetos planos. Debe
// coincidir byte a byte en nombres de campo con la implementación hermana.
//
// El runtime format usa time.Time (UTC) para instantes y maps nativos para
// lookups. Campos opcionales son punteros; ausente = nil, nunca un sentinel.
//
// # Validación
//
// Un validador por entidad sobre map[string]interface{}:
//
//	m, _ := utils.JSONToMap(jsonBytes)
//	if err := domain.ValidateOrderWire(m); err != nil {
//	    // err.(*domain.ValidationErrors) enumera cada campo inválido
//	}
//
// Los validadores no cortan en la primera violación. Claves extra se toleran;
// opcionales ausentes no son error; NaN/Infinity se rechazan.
//
// # Transformadores
//
// ## Wire → Runtime
//
//	m, _ := utils.JSONToMap(jsonBytes)
//	order, err := domain.JSONToOrder(m)
//
// ## Runtime → Wire
//
//	m, err := domain.OrderToJSON(order)
//	jsonBytes, _ := utils.MapToJSON(m)
//
// Contrato de round-trip: encode(decode(w)) preserva todo campo de w que el
// esquema conoce; decode(encode(r)) == r para cualquier r construible por el
// esquema. La única pérdida admitida es precisión sub-milisegundo de los
// instantes.
//
// # El pairing side/effect
//
// side determina los effects legales: BUY admite {OPEN_LONG, CLOSE_SHORT},
// SELL admite {CLOSE_LONG, OPEN_SHORT}. El pairing viaja como unidad
// (OrderAction): los constructores no producen combinaciones ilegales, los
// validadores las rechazan y los encoders se niegan a serializarlas.
//
//	action := domain.OpenLong()                    // BUY/OPEN_LONG
//	_, err := domain.NewOrderAction(domain.SideBuy, domain.EffectCloseLong)
//	// => err
//
// # Principios de Diseño
//
//  1. Funciones puras: sin estado compartido, sin I/O; seguras desde
//     cualquier cantidad de goroutines
//  2. Transformaciones explícitas: sin conversiones implícitas ni coerciones
//     silenciosas
//  3. Inmutabilidad: cada decode/encode construye valores frescos; los
//     cambios de estado se representan con instancias nuevas
//  4. Validación completa: todas las violaciones en un solo resultado
package domain
