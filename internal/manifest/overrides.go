package manifest

import "strings"

// Override maps a module name to a dev entry path or an external specifier.
type Override struct {
	Name  string
	Value string
}

// Overrides is an insertion-ordered set of overrides keyed by name.
type Overrides []Override

// Set adds or replaces the value for name. A replaced entry keeps its
// original position.
func (o Overrides) Set(name, value string) Overrides {
	for i := range o {
		if o[i].Name == name {
			o[i].Value = value
			return o
		}
	}
	return append(o, Override{Name: name, Value: value})
}

// normalized collapses duplicate names the same way Set does.
func (o Overrides) normalized() Overrides {
	out := make(Overrides, 0, len(o))
	for _, e := range o {
		out = out.Set(e.Name, e.Value)
	}
	return out
}

// ParseOverride parses a "name=value" pair. Only the first "=" separates
// name and value. Pairs with an empty name or value are rejected.
func ParseOverride(s string) (Override, bool) {
	name, value, found := strings.Cut(s, "=")
	if !found || name == "" || value == "" {
		return Override{}, false
	}
	return Override{Name: name, Value: value}, true
}
