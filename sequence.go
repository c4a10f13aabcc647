package ordinal

import (
	"fmt"
	"reflect"
)

// LengthError indicates an input sequence that carries fewer elements than
// the ordered struct requires.
type LengthError struct {
	Got  int
	Need int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("invalid length %d, expected a sequence with at least %d elements", e.Got, e.Need)
}

// FieldError indicates an element that could not be converted to the field
// reading it.
type FieldError struct {
	Field    string
	Position int
	Cause    error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("failed to convert field %q at position %d: %v", e.Field, e.Position, e.Cause)
}

func (e FieldError) Unwrap() error {
	return e.Cause
}

// makeSetOrderedStruct builds the setter of a struct whose fields carry
// order tags. The schema and the per-field setters are derived once, here;
// the returned setter runs once per decoded value.
func (d *Decoder) makeSetOrderedStruct(inConstruction typeSet, ty reflect.Type) (setter, error) {
	schema, err := orderedSchemaOf(ty, d.orderTagName())
	if err != nil {
		return nil, err
	}

	setters := make([]setter, len(schema.Fields))

	for idx, field := range schema.Fields {
		se, err := d.setterOf(inConstruction, field.Type)
		if err != nil {
			return nil, fmt.Errorf("setter for field %q: %w", field.Name, err)
		}

		setters[idx] = se
	}

	need := schema.MinLength()

	setter := func(source Source, target reflect.Value) error {
		sourceIter, err := source.Iter()
		if err != nil {
			return fmt.Errorf("as iter: %w", err)
		}

		// one slot per position up to the largest one any field reads.
		// the sequence is still consumed past that point, the surplus
		// elements just do not take part in the result.
		buffer := make([]Source, need)

		var count int
		for elementSource := range sourceIter {
			if count < need {
				buffer[count] = elementSource
			}

			count++
		}

		if count < need {
			return LengthError{Got: count, Need: need}
		}

		// fill a fresh value and hand it to the target only once every
		// field converted. a failed conversion must not leave a half
		// filled struct behind.
		newValue := reflect.New(ty).Elem()

		for idx, field := range schema.Fields {
			fieldValue := newValue.FieldByIndex(field.Index)
			if err := setters[idx](buffer[field.Position], fieldValue); err != nil {
				return FieldError{Field: field.Name, Position: field.Position, Cause: err}
			}
		}

		target.Set(newValue)

		return nil
	}

	return setter, nil
}
