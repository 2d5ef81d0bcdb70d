// Package flatten extracts named fields from maps and structs into
// an ordered slice of values.
package flatten

import (
	"reflect"
	"sort"

	"github.com/nxdevel/nx-misc/internal/errors"
	"github.com/nxdevel/nx-misc/internal/util"
)

// Options controls how missing and extra fields are treated.
type Options struct {
	// RestVal, when set, substitutes for any missing field instead of
	// producing an error.
	RestVal any

	// HasRestVal marks RestVal as set. A separate flag so that nil is a
	// usable substitute value.
	HasRestVal bool

	// AllowExtras accepts map keys outside the requested field list.
	// Without it, extras are an error. Ignored for structs.
	AllowExtras bool
}

// WithRestVal returns a copy of the options with the substitute value set.
func (o Options) WithRestVal(v any) Options {
	o.RestVal = v
	o.HasRestVal = true
	return o
}

// Map returns the values of the named fields, in field order.
// Missing fields are an error unless a rest value is set; keys outside the
// field list are an error unless AllowExtras is set.
func Map(m map[string]any, fields []string, opts Options) ([]any, error) {
	if util.AnyDuplicates(fields) {
		return nil, errors.New(errors.ErrFlatten,
			"Duplicate field names requested",
			"Each field may be listed only once")
	}

	if !opts.AllowExtras {
		if extras := extraKeys(m, fields); len(extras) > 0 {
			return nil, errors.New(errors.ErrFlatten,
				"Unexpected extra keys: "+util.JoinOrNone(extras),
				"Remove the keys from the input or pass --allow-extras")
		}
	}

	out := make([]any, 0, len(fields))
	for _, f := range fields {
		v, ok := m[f]
		if !ok {
			if !opts.HasRestVal {
				return nil, errors.New(errors.ErrFlatten,
					"Missing field '"+f+"'",
					"Provide the field or set a substitute with --rest-val")
			}
			v = opts.RestVal
		}
		out = append(out, v)
	}
	return out, nil
}

// Struct returns the values of the named exported fields of a struct,
// in field order. A pointer to struct is dereferenced first.
func Struct(v any, fields []string, opts Options) ([]any, error) {
	if util.AnyDuplicates(fields) {
		return nil, errors.New(errors.ErrFlatten,
			"Duplicate field names requested",
			"Each field may be listed only once")
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New(errors.ErrFlatten,
				"Cannot flatten a nil pointer",
				"Pass a struct or a non-nil pointer to one")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.New(errors.ErrFlatten,
			"Cannot flatten a "+rv.Kind().String(),
			"Pass a struct or a pointer to one")
	}

	out := make([]any, 0, len(fields))
	for _, f := range fields {
		fv := rv.FieldByName(f)
		if !fv.IsValid() || !fv.CanInterface() {
			if !opts.HasRestVal {
				return nil, errors.New(errors.ErrFlatten,
					"Missing field '"+f+"'",
					"Provide the field or set a substitute with --rest-val")
			}
			out = append(out, opts.RestVal)
			continue
		}
		out = append(out, fv.Interface())
	}
	return out, nil
}

// extraKeys returns map keys not present in fields, sorted for stable
// error messages.
func extraKeys(m map[string]any, fields []string) []string {
	want := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		want[f] = struct{}{}
	}

	var extras []string
	for k := range m {
		if _, ok := want[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return extras
}
