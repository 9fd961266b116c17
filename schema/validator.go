package manifestschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sources.schema.json
var sourcesSchemaJSON string

// Manifest lists the input files for an ingestion run. A source without
// a channel ingests posts with no channel attribution.
type Manifest struct {
	Sources []ManifestSource `json:"sources"`
}

type ManifestSource struct {
	Path      string `json:"path"`
	ChannelID *int64 `json:"channel_id,omitempty"`
	Name      string `json:"name,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateManifest checks raw against the manifest schema, then applies
// the semantic checks the schema cannot express.
func ValidateManifest(raw json.RawMessage) (*Manifest, error) {
	value, err := decodeStrictJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decode manifest JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize manifest JSON: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(normalized, &manifest); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if err := validateSemantics(&manifest); err != nil {
		return nil, err
	}

	return &manifest, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("sources.schema.json", strings.NewReader(sourcesSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("sources.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("manifest contains trailing content")
	}

	return value, nil
}

func validateSemantics(manifest *Manifest) error {
	if manifest == nil {
		return fmt.Errorf("manifest is nil")
	}

	seen := make(map[string]bool, len(manifest.Sources))
	for i, source := range manifest.Sources {
		path := strings.TrimSpace(source.Path)
		if path == "" {
			return fmt.Errorf("sources[%d].path must not be empty", i)
		}
		if seen[path] {
			return fmt.Errorf("sources[%d].path %q is listed twice", i, path)
		}
		seen[path] = true

		if source.ChannelID != nil && strings.TrimSpace(source.Name) == "" {
			return fmt.Errorf("sources[%d].name is required when channel_id is set", i)
		}
	}
	return nil
}
