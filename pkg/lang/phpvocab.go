package lang

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

//go:embed php_builtins.schema.json
var phpVocabSchema []byte

// phpVocabFile is the shape of the generated vocabulary asset. It covers
// the extended PHP standard-library surface (functions, classes, methods)
// that is too large to compile into the binary.
type phpVocabFile struct {
	Symbols struct {
		Functions []string `json:"functions"`
		Classes   []string `json:"classes"`
		Methods   []string `json:"methods"`
	} `json:"symbols"`
	Stats map[string]int `json:"stats,omitempty"`
}

// PHPVocab lazily loads the extended PHP builtin vocabulary from a JSON
// asset. Loading happens at most once per instance; a missing or invalid
// asset logs a warning and leaves the detector on the compiled-in core
// set, never an error.
type PHPVocab struct {
	path   string
	logger *zap.Logger

	once    sync.Once
	symbols Set
}

// NewPHPVocab creates a vocabulary loader for the given asset path.
func NewPHPVocab(path string, logger *zap.Logger) *PHPVocab {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PHPVocab{path: path, logger: logger}
}

// DefaultPHPVocabPath is where the generated vocabulary asset is looked
// up when no path is configured.
const DefaultPHPVocabPath = "data/php_builtins.json"

var defaultPHPVocab = NewPHPVocab(DefaultPHPVocabPath, nil)

// ConfigurePHPVocab replaces the process-wide vocabulary loader. Call
// before the first PHP builtin lookup; later calls still take effect for
// lookups after the swap but any already-loaded vocabulary is discarded.
func ConfigurePHPVocab(v *PHPVocab) {
	if v != nil {
		defaultPHPVocab = v
	}
}

// Load forces the one-time load and reports how many symbols were added.
func (v *PHPVocab) Load() int {
	v.load()
	return len(v.symbols)
}

func (v *PHPVocab) has(lower string) bool {
	v.load()
	return v.symbols.Has(lower)
}

func (v *PHPVocab) load() {
	v.once.Do(func() {
		v.symbols = Set{}

		data, err := os.ReadFile(v.path)
		if err != nil {
			v.logger.Warn("php vocabulary asset not found, using core builtins only",
				zap.String("path", v.path), zap.Error(err))
			return
		}

		if err := validatePHPVocab(data); err != nil {
			v.logger.Warn("php vocabulary asset rejected",
				zap.String("path", v.path), zap.Error(err))
			return
		}

		var file phpVocabFile
		if err := json.Unmarshal(data, &file); err != nil {
			v.logger.Warn("php vocabulary asset unreadable",
				zap.String("path", v.path), zap.Error(err))
			return
		}

		for _, group := range [][]string{file.Symbols.Functions, file.Symbols.Classes, file.Symbols.Methods} {
			for _, name := range group {
				v.symbols[strings.ToLower(name)] = struct{}{}
			}
		}

		v.logger.Debug("loaded php vocabulary",
			zap.String("path", v.path),
			zap.Int("functions", len(file.Symbols.Functions)),
			zap.Int("classes", len(file.Symbols.Classes)),
			zap.Int("methods", len(file.Symbols.Methods)))
	})
}

func validatePHPVocab(data []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(phpVocabSchema))
	if err != nil {
		return fmt.Errorf("parsing embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("php_builtins.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("registering schema: %w", err)
	}
	schema, err := compiler.Compile("php_builtins.schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing asset: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("validating asset: %w", err)
	}
	return nil
}
