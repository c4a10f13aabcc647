package ordinal

import (
	"fmt"
	"reflect"
	"strconv"
)

// MissingOrderError indicates that a struct opted into ordered decoding but
// one of its exported fields carries no order tag. It is returned when the
// decode routine for the type is built, never from a decode call itself.
type MissingOrderError struct {
	Type  reflect.Type
	Field string
}

func (e MissingOrderError) Error() string {
	return fmt.Sprintf("field %q of %q has no order tag", e.Field, e.Type)
}

// InvalidOrderError indicates an order tag whose payload is not a
// non-negative integer literal.
type InvalidOrderError struct {
	Type  reflect.Type
	Field string
	Tag   string
}

func (e InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order tag %q on field %q of %q", e.Tag, e.Field, e.Type)
}

// orderedField is one struct field together with the sequence position it
// reads its value from.
type orderedField struct {
	Name     string
	Type     reflect.Type
	Index    []int
	Position int
}

// orderedSchema is the decode plan of one ordered struct type: its fields in
// declaration order plus the largest position any of them reads. It is
// computed once per type and never mutated afterwards.
type orderedSchema struct {
	Fields      []orderedField
	MaxPosition int
}

// MinLength returns the number of elements an input sequence must carry so
// that every field finds its position populated.
func (s orderedSchema) MinLength() int {
	return s.MaxPosition + 1
}

// hasOrderTags reports whether ty opted into ordered decoding, i.e. whether
// any of its exported fields carries the order tag.
func hasOrderTags(ty reflect.Type, structTag string) bool {
	for idx := range ty.NumField() {
		fi := ty.Field(idx)
		if !fi.IsExported() {
			continue
		}

		if _, ok := fi.Tag.Lookup(structTag); ok {
			return true
		}
	}

	return false
}

// orderedSchemaOf extracts the (field, position) mapping of ty in declaration
// order. Every exported field must carry the order tag; `order:"-"` excludes
// a field from decoding. Positions do not need to be contiguous, sorted or
// unique: two fields sharing a position both read the same element, and
// positions no field reads are skipped over in the input.
//
// MaxPosition of a schema without fields is zero, so even such a schema asks
// for an input of at least one element.
func orderedSchemaOf(ty reflect.Type, structTag string) (orderedSchema, error) {
	var schema orderedSchema

	for idx := range ty.NumField() {
		fi := ty.Field(idx)
		if !fi.IsExported() {
			continue
		}

		tag, ok := fi.Tag.Lookup(structTag)
		if !ok {
			return orderedSchema{}, MissingOrderError{Type: ty, Field: fi.Name}
		}

		if tag == "-" {
			// this one is skipped
			continue
		}

		position, err := strconv.Atoi(tag)
		if err != nil || position < 0 {
			return orderedSchema{}, InvalidOrderError{Type: ty, Field: fi.Name, Tag: tag}
		}

		schema.Fields = append(schema.Fields, orderedField{
			Name:     fi.Name,
			Type:     fi.Type,
			Index:    fi.Index,
			Position: position,
		})

		if position > schema.MaxPosition {
			schema.MaxPosition = position
		}
	}

	return schema, nil
}
