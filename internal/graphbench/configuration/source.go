package configuration

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/armadaproject/graphbench/internal/common/benchmarkerrors"
)

// Source answers whether a settings key exists and what typed value it holds.
// Typed getters fail with ErrMissingRequiredField when the key is absent and
// ErrInvalidValue when the value does not convert to the requested type.
type Source interface {
	Contains(key string) bool
	String(key string) (string, error)
	Int(key string) (int, error)
	Int64(key string) (int64, error)
	Float64(key string) (float64, error)
	Bool(key string) (bool, error)
	// StringSlice accepts a list value or a comma separated string.
	StringSlice(key string) ([]string, error)
}

// HierarchicalSource reads a dotted key namespace held by viper.
type HierarchicalSource struct {
	v      *viper.Viper
	prefix string
}

func NewHierarchicalSource(v *viper.Viper) HierarchicalSource {
	return HierarchicalSource{v: v}
}

// Sub returns a source scoped to the keys below prefix.
// Error messages keep reporting fully qualified keys.
func (s HierarchicalSource) Sub(prefix string) HierarchicalSource {
	return HierarchicalSource{v: s.v, prefix: s.qualify(prefix)}
}

func (s HierarchicalSource) qualify(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "." + key
}

func (s HierarchicalSource) Contains(key string) bool {
	return s.v.IsSet(s.qualify(key))
}

func (s HierarchicalSource) get(key string) (string, interface{}, error) {
	key = s.qualify(key)
	if !s.v.IsSet(key) {
		return key, nil, errors.WithStack(&benchmarkerrors.ErrMissingRequiredField{Field: key})
	}
	return key, s.v.Get(key), nil
}

func (s HierarchicalSource) String(key string) (string, error) {
	return convert(s.get, key, cast.ToStringE)
}

func (s HierarchicalSource) Int(key string) (int, error) {
	return convert(s.get, key, cast.ToIntE)
}

func (s HierarchicalSource) Int64(key string) (int64, error) {
	return convert(s.get, key, cast.ToInt64E)
}

func (s HierarchicalSource) Float64(key string) (float64, error) {
	return convert(s.get, key, cast.ToFloat64E)
}

func (s HierarchicalSource) Bool(key string) (bool, error) {
	return convert(s.get, key, cast.ToBoolE)
}

func (s HierarchicalSource) StringSlice(key string) ([]string, error) {
	return convert(s.get, key, toStringSlice)
}

// FlatSource reads a single map of string keys to string values, converting at call time.
type FlatSource struct {
	settings map[string]string
}

// NewFlatSource copies settings, so later changes to the map are not observed.
func NewFlatSource(settings map[string]string) FlatSource {
	copied := make(map[string]string, len(settings))
	for k, v := range settings {
		copied[k] = v
	}
	return FlatSource{settings: copied}
}

func (s FlatSource) Contains(key string) bool {
	_, ok := s.settings[key]
	return ok
}

func (s FlatSource) get(key string) (string, interface{}, error) {
	value, ok := s.settings[key]
	if !ok {
		return key, nil, errors.WithStack(&benchmarkerrors.ErrMissingRequiredField{Field: key})
	}
	return key, value, nil
}

func (s FlatSource) String(key string) (string, error) {
	return convert(s.get, key, cast.ToStringE)
}

func (s FlatSource) Int(key string) (int, error) {
	return convert(s.get, key, cast.ToIntE)
}

func (s FlatSource) Int64(key string) (int64, error) {
	return convert(s.get, key, cast.ToInt64E)
}

func (s FlatSource) Float64(key string) (float64, error) {
	return convert(s.get, key, cast.ToFloat64E)
}

func (s FlatSource) Bool(key string) (bool, error) {
	return convert(s.get, key, cast.ToBoolE)
}

func (s FlatSource) StringSlice(key string) ([]string, error) {
	return convert(s.get, key, toStringSlice)
}

type lookupFunc func(key string) (qualified string, raw interface{}, err error)

func convert[T any](lookup lookupFunc, key string, to func(interface{}) (T, error)) (T, error) {
	var zero T
	qualified, raw, err := lookup(key)
	if err != nil {
		return zero, err
	}
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	value, err := to(raw)
	if err != nil {
		return zero, errors.WithStack(&benchmarkerrors.ErrInvalidValue{Field: qualified, Value: raw, Message: err.Error()})
	}
	return value, nil
}

func toStringSlice(raw interface{}) ([]string, error) {
	var values []string
	if s, ok := raw.(string); ok {
		values = strings.Split(s, ",")
	} else {
		var err error
		if values, err = cast.ToStringSliceE(raw); err != nil {
			return nil, err
		}
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result, nil
}
