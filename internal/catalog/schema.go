package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ParamType is the primitive type of a tool parameter
type ParamType string

const (
	TypeString      ParamType = "string"
	TypeStringArray ParamType = "array"
	TypeBoolean     ParamType = "boolean"
)

// Param declares one named tool parameter
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Enum        []string
	Default     any
	Required    bool
}

// Schema is the declarative parameter list of a tool
type Schema struct {
	Params []Param
}

// Object builds a Schema from params in declaration order
func Object(params ...Param) Schema {
	return Schema{Params: params}
}

// Required lists the names of required parameters in declaration order.
func (s Schema) Required() []string {
	var out []string
	for _, p := range s.Params {
		if p.Required {
			out = append(out, p.Name)
		}
	}
	return out
}

// JSONSchema renders the parameter list as a JSON Schema object.
func (s Schema) JSONSchema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Params))
	for _, p := range s.Params {
		prop := &jsonschema.Schema{
			Type:        string(p.Type),
			Description: p.Description,
		}
		if p.Type == TypeStringArray {
			prop.Items = &jsonschema.Schema{Type: string(TypeString)}
		}
		for _, v := range p.Enum {
			prop.Enum = append(prop.Enum, v)
		}
		if p.Default != nil {
			if raw, err := json.Marshal(p.Default); err == nil {
				prop.Default = raw
			}
		}
		props[p.Name] = prop
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   s.Required(),
	}
}

func (s Schema) resolve() (*jsonschema.Resolved, error) {
	return s.JSONSchema().Resolve(nil)
}

func (s Schema) validate(resolved *jsonschema.Resolved, params map[string]any) error {
	var missing []string
	for _, name := range s.Required() {
		if v, ok := params[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return ClientInputf("missing required parameter: %s", strings.Join(missing, ", "))
	}

	if resolved == nil {
		return nil
	}

	instance, err := jsonInstance(params)
	if err != nil {
		return ClientInputf("parameters are not valid JSON values: %v", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return ClientInputf("invalid parameters: %v", err)
	}
	return nil
}

// jsonInstance reshapes params into the plain JSON value tree the validator
// expects. Top-level nulls are dropped: a null optional parameter means absent.
func jsonInstance(params map[string]any) (map[string]any, error) {
	present := make(map[string]any, len(params))
	for k, v := range params {
		if v != nil {
			present[k] = v
		}
	}

	raw, err := json.Marshal(present)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
