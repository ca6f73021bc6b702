package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/jml312/domino-train/pkg/domain"
)

// Type defines the contract for field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	_, err := toInt(value)
	return err
}

// toInt accepts the integer shapes produced by encoding/json (with
// UseNumber), yaml.v3 and Go literals.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int(v), nil
		}
		return 0, fmt.Errorf("expected int, got float (not a whole number)")
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected int, got %q", v.String())
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("expected int, got %T", value)
	}
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elemType.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// OptionalType marks a field that may be absent.
type OptionalType struct {
	Type
}

func (t *OptionalType) Name() string {
	return t.Type.Name() + "?"
}

// DominoType validates a {left, right} record against the double-12 range.
type DominoType struct{}

func (t *DominoType) Name() string { return "domino" }

func (t *DominoType) Validate(value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected object with left and right, got %T", value)
	}
	left, err := field(m, "left")
	if err != nil {
		return err
	}
	right, err := field(m, "right")
	if err != nil {
		return err
	}
	_, err = domain.NewTile(left, right)
	return err
}

func field(m map[string]any, key string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	v, err := toInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Optional allows the field to be missing; present values must match t.
func Optional(t Type) Type {
	return &OptionalType{Type: t}
}

// Domino creates a domino record validator.
func Domino() Type { return &DominoType{} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// Pip validates an integer face value in the double-12 range.
func Pip() Type {
	return Custom("pip", func(v any) error {
		i, err := toInt(v)
		if err != nil {
			return err
		}
		if !domain.ValidPip(i) {
			return fmt.Errorf("%w: %d (must be between 0 and %d)", domain.ErrInvalidStart, i, domain.MaxPip)
		}
		return nil
	})
}
