package ordinal

import "iter"

// Source represents the abstract interface to a serialized data source,
// designed to work with the [Unmarshal] function. It defines a flexible data
// model for interpreting and accessing various types of serialized data.
//
// A [Source] provides methods to interpret the underlying data in different
// forms:
//   - **Primitive types**: conversion to basic go types such as `bool`,
//     `int`, `uint`, `float` and `string`.
//   - **Objects**: access to nested data by name using [Source.Get].
//   - **Sequences**: sequential access to list-like data using [Source.Iter].
//     This is also the representation that ordered structs (structs with
//     `order` tags) decode from.
//   - **Maps**: traversal of key-value pairs via [Source.KeyValues].
//
// If converting the [Source] into a particular type is not possible, the
// method must return [ErrNotSupported]. This signals that the requested
// operation is not valid for the underlying data representation.
//
// There is no requirement for [Source] methods to be idempotent. A [Source]
// may stream data from an [io.Reader] or generate values on demand. One
// caveat applies to ordered decoding: the elements yielded by [Source.Iter]
// are held on to until the full sequence was consumed, so every yielded
// element must be an independent snapshot rather than a shared mutable
// handle.
//
// Two ready-to-use implementations ship with the package:
//
//  1. **[StringSource]**: parses strings into the target types using the
//     `strconv` package.
//
//  2. **[EmptySource]**: returns [ErrNotSupported] from every method. Embed
//     it into your own [Source] implementation and override only the methods
//     your data supports.
type Source interface {
	// Bool returns the current value as a bool.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Bool() (bool, error)

	// Int returns the current value as an int64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Int() (int64, error)

	// Uint returns the current value as an uint64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Uint() (uint64, error)

	// Float returns the current value as a float64.
	// Returns error ErrNotSupported if the value can not be represented as such.
	Float() (float64, error)

	// String returns the current value as a string.
	// Returns error ErrNotSupported if the value can not be represented as such.
	String() (string, error)

	// Get returns a child value of this [Source] if it exists.
	// Returns error [ErrNotSupported] if the current [Source] does not have
	// any child values. If the [Source] does have children, but just not the
	// requested child, [ErrNoValue] must be returned.
	Get(key string) (Source, error)

	// KeyValues interprets the [Source] as a map and iterates over the
	// elements within. It yields a pair of key and value [Source] instances.
	// Returns [ErrNotSupported] if the [Source] is not iterable.
	KeyValues() (iter.Seq2[Source, Source], error)

	// Iter interprets the [Source] as a sequence and iterates over the
	// elements within.
	// Returns [ErrNotSupported] if the [Source] is not iterable.
	Iter() (iter.Seq[Source], error)
}

// BinarySource extends the [Source] interface with methods extracting
// integer, unsigned integer and floating-point values of specific bit sizes.
// This is valuable for decoding binary formats where precise control over
// data size is essential.
//
// When decoding into a sized type, [Unmarshal] prefers these methods (e.g.
// `Int8`, `Uint16`) over the generic [Source.Int], so the decoded values
// adhere to the intended size and precision.
type BinarySource interface {
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)

	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)

	Float32() (float32, error)
	Float64() (float64, error)
}
