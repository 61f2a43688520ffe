package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed site.schema.json
var siteSchema string

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	s, err := jsonschema.CompileString("site.schema.json", siteSchema)
	if err != nil {
		loadErr = fmt.Errorf("compile site schema: %w", err)
		return
	}
	schema = s
}

// ValidateMap validates decoded site copy against the site schema.
// The map is round-tripped through JSON so YAML scalar types line up with
// what the schema expects.
func ValidateMap(m map[string]any) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode site copy: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode site copy: %w", err)
	}
	return schema.Validate(v)
}
