package exhibit

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/parameter"
)

//go:embed registry.schema.json
var schemaSource string

//go:embed default.yaml
var defaultSource []byte

const schemaURL = "mem://exhibit/registry.schema.json"

var registrySchema = jsonschema.MustCompileString(schemaURL, schemaSource)

// record mirrors one registry entry on disk
type record struct {
	Position    []float64 `yaml:"position"`
	Rotation    []float64 `yaml:"rotation"`
	Scale       []float64 `yaml:"scale"`
	Type        string    `yaml:"type"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Details     []string  `yaml:"details"`
	Color       string    `yaml:"color"`
}

// Load reads and validates a registry file
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Default returns the embedded portfolio registry
func Default() (*Registry, error) {
	r, err := Parse(defaultSource)
	if err != nil {
		return nil, fmt.Errorf("default registry: %w", err)
	}
	return r, nil
}

// Parse validates YAML registry content against the schema and decodes it
// Optional fields take their defaults: rotation 0, scale 1, details empty, color white
func Parse(raw []byte) (*Registry, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var records []record
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("registry yaml: %w", err)
	}

	exhibits := make([]Exhibit, 0, len(records))
	for i, rec := range records {
		kind, err := core.ParseKind(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("exhibit %d: %w", i, err)
		}
		e := Exhibit{
			Position:    vec3(rec.Position, 0),
			Rotation:    vec3(rec.Rotation, 0),
			Scale:       vec3(rec.Scale, 1),
			Kind:        kind,
			Title:       rec.Title,
			Description: rec.Description,
			Details:     rec.Details,
			Color:       rec.Color,
		}
		if e.Color == "" {
			e.Color = parameter.ExhibitDefaultColor
		}
		exhibits = append(exhibits, e)
	}

	return NewRegistry(exhibits), nil
}

// Validate checks YAML registry content against the embedded JSON schema
func Validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("registry yaml: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native types
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("registry yaml: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(b, &normalized); err != nil {
		return fmt.Errorf("registry yaml: %w", err)
	}

	if err := registrySchema.Validate(normalized); err != nil {
		return fmt.Errorf("registry schema: %w", err)
	}
	return nil
}

func vec3(v []float64, fill float64) mgl64.Vec3 {
	if len(v) != 3 {
		return mgl64.Vec3{fill, fill, fill}
	}
	return mgl64.Vec3{v[0], v[1], v[2]}
}
