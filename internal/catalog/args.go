package catalog

// Args is the parameter mapping of one tool call. Accessors return
// ClientInput errors for missing required values and wrong types; a JSON null
// counts as absent.
type Args map[string]any

// String returns a required string parameter.
func (a Args) String(name string) (string, error) {
	v, ok := a.lookup(name)
	if !ok {
		return "", ClientInputf("missing required parameter: %s", name)
	}

	s, ok := v.(string)
	if !ok {
		return "", ClientInputf("parameter %s must be a string", name)
	}
	return s, nil
}

// StringOr returns an optional string parameter or def when absent.
func (a Args) StringOr(name, def string) (string, error) {
	if _, ok := a.lookup(name); !ok {
		return def, nil
	}
	return a.String(name)
}

// Strings returns an optional list of strings; absent means empty, never nil.
func (a Args) Strings(name string) ([]string, error) {
	v, ok := a.lookup(name)
	if !ok {
		return []string{}, nil
	}

	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, ClientInputf("parameter %s must be an array of strings", name)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, ClientInputf("parameter %s must be an array of strings", name)
	}
}

// BoolOr returns an optional boolean parameter or def when absent.
func (a Args) BoolOr(name string, def bool) (bool, error) {
	v, ok := a.lookup(name)
	if !ok {
		return def, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, ClientInputf("parameter %s must be a boolean", name)
	}
	return b, nil
}

func (a Args) lookup(name string) (any, bool) {
	v, ok := a[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
