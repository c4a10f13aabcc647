// Package ordinal decodes serialized data onto go types (structs, slices,
// strings, etc) similar to [json.Unmarshal], with one addition: a struct can
// be decoded from a *sequence* instead of a name-keyed container, with every
// field declaring the position it reads from via an `order:"N"` struct tag.
//
// The [Source] interface defines access to a serialized value. The
// [Decoder.Unmarshal] function walks the target type once, builds a decode
// routine for it and caches that routine. Decoding itself just runs the
// cached routine against one [Source], pulling data out of it using functions
// like [Source.Int] or [Source.String].
//
// For a struct without order tags the decoder looks values up by field name
// using [Source.Get]. Once any exported field carries an order tag the struct
// is decoded from [Source.Iter] instead: the sequence is consumed in full,
// elements up to the largest declared position are buffered, and each field
// is converted from the element at its position. Positions are independent of
// declaration order and do not need to be contiguous.
package ordinal
