// tct-cli: herramientas operativas para trading-core-types.
//
// Permite validar archivos wire JSON contra el esquema de una entidad y
// normalizarlos vía round-trip (decode → encode).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/junduck/trading-core-types/domain"
	"github.com/junduck/trading-core-types/utils"
)

// entity agrupa el validador y el codec round-trip de una entidad wire.
type entity struct {
	validate  func(map[string]interface{}) error
	roundtrip func(map[string]interface{}) (map[string]interface{}, error)
}

var entities = map[string]entity{
	"asset": {
		validate: domain.ValidateAssetWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToAsset(m)
			if err != nil {
				return nil, err
			}
			return domain.AssetToJSON(v)
		},
	},
	"snapshot": {
		validate: domain.ValidateMarketSnapshotWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToMarketSnapshot(m)
			if err != nil {
				return nil, err
			}
			return domain.MarketSnapshotToJSON(v)
		},
	},
	"quote": {
		validate: domain.ValidateMarketQuoteWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToMarketQuote(m)
			if err != nil {
				return nil, err
			}
			return domain.MarketQuoteToJSON(v)
		},
	},
	"bar": {
		validate: domain.ValidateMarketBarWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToMarketBar(m)
			if err != nil {
				return nil, err
			}
			return domain.MarketBarToJSON(v)
		},
	},
	"order": {
		validate: domain.ValidateOrderWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToOrder(m)
			if err != nil {
				return nil, err
			}
			return domain.OrderToJSON(v)
		},
	},
	"partial-order": {
		validate: domain.ValidatePartialOrderWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToPartialOrder(m)
			if err != nil {
				return nil, err
			}
			return domain.PartialOrderToJSON(v)
		},
	},
	"order-state": {
		validate: domain.ValidateOrderStateWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToOrderState(m)
			if err != nil {
				return nil, err
			}
			return domain.OrderStateToJSON(v)
		},
	},
	"fill": {
		validate: domain.ValidateFillWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToFill(m)
			if err != nil {
				return nil, err
			}
			return domain.FillToJSON(v)
		},
	},
	"long-position": {
		validate: domain.ValidateLongPositionWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToLongPosition(m)
			if err != nil {
				return nil, err
			}
			return domain.LongPositionToJSON(v)
		},
	},
	"short-position": {
		validate: domain.ValidateShortPositionWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToShortPosition(m)
			if err != nil {
				return nil, err
			}
			return domain.ShortPositionToJSON(v)
		},
	},
	"position": {
		validate: domain.ValidatePositionWire,
		roundtrip: func(m map[string]interface{}) (map[string]interface{}, error) {
			v, err := domain.JSONToPosition(m)
			if err != nil {
				return nil, err
			}
			return domain.PositionToJSON(v)
		},
	},
}

func main() {
	// .env es opcional; si no existe se usan los defaults
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "validate":
		runValidate(os.Args[2:])
	case "roundtrip":
		runRoundtrip(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `tct-cli - herramientas operativas para trading-core-types

Uso:
  tct-cli validate --entity <nombre> <archivo.json> [...]
  tct-cli roundtrip --entity <nombre> <archivo.json>

Entidades:
  ` + strings.Join(entityNames(), ", ") + `

Variables de entorno (.env soportado):
  TCT_LOG_LEVEL     Nivel de log (debug|info|warn|error; default info)
  TCT_FIXTURES_DIR  Directorio base para rutas relativas
`
	fmt.Fprintln(os.Stderr, usage)
}

func entityNames() []string {
	names := make([]string, 0, len(entities))
	for name := range entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if raw := os.Getenv("TCT_LOG_LEVEL"); raw != "" {
		if err := level.Set(raw); err != nil {
			return nil, fmt.Errorf("TCT_LOG_LEVEL inválido: %w", err)
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// resolvePath aplica TCT_FIXTURES_DIR a rutas relativas.
func resolvePath(path string) string {
	base := os.Getenv("TCT_FIXTURES_DIR")
	if base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func lookupEntity(name string) (entity, bool) {
	e, ok := entities[name]
	return e, ok
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	entityName := fs.String("entity", "", "Entidad wire a validar")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	ent, ok := lookupEntity(*entityName)
	if !ok {
		fmt.Fprintf(os.Stderr, "entidad desconocida: %q\n", *entityName)
		printUsage()
		os.Exit(1)
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "se requiere al menos un archivo")
		fs.Usage()
		os.Exit(1)
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	failed := 0
	for _, file := range files {
		path := resolvePath(file)
		if err := validateFile(logger, ent, path); err != nil {
			failed++
			continue
		}
		logger.Info("archivo válido",
			zap.String("entity", *entityName),
			zap.String("file", path))
	}

	if failed > 0 {
		logger.Error("validación con errores",
			zap.String("entity", *entityName),
			zap.Int("failed", failed),
			zap.Int("total", len(files)))
		os.Exit(1)
	}
}

func validateFile(logger *zap.Logger, ent entity, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("no se pudo leer el archivo",
			zap.String("file", path),
			zap.Error(err))
		return err
	}

	m, err := utils.JSONToMap(data)
	if err != nil {
		logger.Error("JSON inválido",
			zap.String("file", path),
			zap.Error(err))
		return err
	}

	if err := ent.validate(m); err != nil {
		logViolations(logger, path, err)
		return err
	}
	return nil
}

// logViolations desglosa un ValidationErrors en un evento por violación.
func logViolations(logger *zap.Logger, path string, err error) {
	var verrs *domain.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs.Violations {
			logger.Warn("violación de esquema",
				zap.String("file", path),
				zap.String("field", v.Field),
				zap.Any("value", v.Value),
				zap.String("message", v.Message))
		}
		return
	}
	logger.Error("validación falló",
		zap.String("file", path),
		zap.Error(err))
}

func runRoundtrip(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	entityName := fs.String("entity", "", "Entidad wire a normalizar")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	ent, ok := lookupEntity(*entityName)
	if !ok {
		fmt.Fprintf(os.Stderr, "entidad desconocida: %q\n", *entityName)
		printUsage()
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "se requiere exactamente un archivo")
		fs.Usage()
		os.Exit(1)
	}

	path := resolvePath(fs.Arg(0))
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error leyendo %s: %v\n", path, err)
		os.Exit(1)
	}

	m, err := utils.JSONToMap(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON inválido en %s: %v\n", path, err)
		os.Exit(1)
	}

	normalized, err := ent.roundtrip(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "round-trip falló: %v\n", err)
		os.Exit(1)
	}

	out, err := utils.MapToJSONIndent(normalized)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error serializando: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
