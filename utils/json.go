package utils

import (
	"bytes"
	"encoding/json"
	"math"
)

// ValidateJSON verifica si los datos son JSON válido.
//
// Example:
//
//	data := []byte(`{"symbol":"BTCUSDT"}`)
//	err := utils.ValidateJSON(data)
//	if err != nil {
//	    // No es JSON válido
//	}
func ValidateJSON(data []byte) error {
	var js interface{}
	return json.Unmarshal(data, &js)
}

// PrettyPrint formatea JSON con indentación para debugging.
//
// Example:
//
//	data := []byte(`{"symbol":"TSLA","currency":"USD"}`)
//	fmt.Println(utils.PrettyPrint(data))
func PrettyPrint(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data) // Retornar original si falla
	}
	return buf.String()
}

// JSONToMap convierte JSON a map[string]interface{}.
//
// Es la puerta de entrada al wire format: los validadores y decoders de
// domain operan sobre el map resultante, nunca sobre bytes.
//
// Example:
//
//	data := []byte(`{"symbol":"TSLA","quantity":100}`)
//	m, err := utils.JSONToMap(data)
//	if err == nil {
//	    fmt.Println(m["symbol"]) // => "TSLA"
//	}
func JSONToMap(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal(data, &result)
	return result, err
}

// MapToJSON convierte un map wire a JSON.
func MapToJSON(m map[string]interface{}) ([]byte, error) {
	return json.Marshal(m)
}

// MapToJSONIndent convierte un map wire a JSON indentado.
func MapToJSONIndent(m map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// ExtractString retorna el valor string de una clave.
//
// Si la clave no existe o no es string, retorna "".
func ExtractString(m map[string]interface{}, key string) string {
	s, _ := ExtractStringOk(m, key)
	return s
}

// ExtractStringOk retorna el valor string de una clave y si estaba presente
// con el tipo correcto.
func ExtractStringOk(m map[string]interface{}, key string) (string, bool) {
	v, exists := m[key]
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ExtractFloat64 retorna el valor numérico de una clave.
//
// Si la clave no existe o no es numérica, retorna 0.
func ExtractFloat64(m map[string]interface{}, key string) float64 {
	f, _ := ExtractFloat64Ok(m, key)
	return f
}

// ExtractFloat64Ok retorna el valor numérico de una clave y si estaba
// presente. Acepta float64 (encoding/json), int e int64 (maps construidos a
// mano en tests y builders).
func ExtractFloat64Ok(m map[string]interface{}, key string) (float64, bool) {
	v, exists := m[key]
	if !exists {
		return 0, false
	}
	return AsFloat64(v)
}

// ExtractInt64 retorna el valor entero de una clave.
//
// Si la clave no existe o no es numérica, retorna 0.
func ExtractInt64(m map[string]interface{}, key string) int64 {
	i, _ := ExtractInt64Ok(m, key)
	return i
}

// ExtractInt64Ok retorna el valor entero de una clave y si estaba presente.
//
// Un float64 con parte fraccional no cuenta como entero.
func ExtractInt64Ok(m map[string]interface{}, key string) (int64, bool) {
	v, exists := m[key]
	if !exists {
		return 0, false
	}
	return AsInt64(v)
}

// AsFloat64 interpreta un valor JSON como float64.
func AsFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// AsInt64 interpreta un valor JSON como int64.
//
// encoding/json decodifica todo número a float64; un epoch-ms wire llega como
// float64 integral y se acepta. Valores con fracción o no finitos se rechazan.
func AsInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		if val != math.Trunc(val) {
			return 0, false
		}
		return int64(val), true
	}
	return 0, false
}

// IsFiniteNumber indica si un valor JSON es un número finito.
//
// NaN e Infinity no tienen literal JSON; se rechazan en validación en lugar
// de dejarlos pasar silenciosamente.
func IsFiniteNumber(v interface{}) bool {
	f, ok := AsFloat64(v)
	if !ok {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
