package ordinal

import (
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type Person struct {
	Id     int     `order:"0"`
	Name   string  `order:"1"`
	Height float64 `order:"2"`
}

func TestOrderedInOrder(t *testing.T) {
	person, err := UnmarshalNew[Person](seqOf("1", "Jane Doe", "1.75"))
	require.NoError(t, err)
	require.Equal(t, person, Person{Id: 1, Name: "Jane Doe", Height: 1.75})
}

func TestOrderedOutOfOrder(t *testing.T) {
	type Person struct {
		Id     int     `order:"2"`
		Name   string  `order:"0"`
		Height float64 `order:"1"`
	}

	person, err := UnmarshalNew[Person](seqOf("Alice Smith", "1.65", "42"))
	require.NoError(t, err)
	require.Equal(t, person, Person{Id: 42, Name: "Alice Smith", Height: 1.65})
}

func TestOrderedSparse(t *testing.T) {
	type Person struct {
		Id     int     `order:"0"`
		Name   string  `order:"4"`
		Height float64 `order:"1"`
	}

	person, err := UnmarshalNew[Person](seqOf("99", "1.72", "ignore me", "also ignore", "Bob Johnson", "more to ignore"))
	require.NoError(t, err)
	require.Equal(t, person, Person{Id: 99, Name: "Bob Johnson", Height: 1.72})
}

func TestOrderedTooShort(t *testing.T) {
	type Person struct {
		Id     int     `order:"0"`
		Name   string  `order:"4"`
		Height float64 `order:"1"`
	}

	_, err := UnmarshalNew[Person](seqOf("99", "1.72"))

	var lengthErr LengthError
	require.ErrorAs(t, err, &lengthErr)
	require.Equal(t, lengthErr, LengthError{Got: 2, Need: 5})
	require.EqualError(t, err, `invalid length 2, expected a sequence with at least 5 elements`)
}

func TestOrderedConversionFailure(t *testing.T) {
	_, err := UnmarshalNew[Person](seqOf("not a number", "Jane Doe", "1.75"))

	var fieldErr FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, fieldErr.Field, "Id")
	require.Equal(t, fieldErr.Position, 0)
	require.ErrorIs(t, err, ErrNotSupported)
	require.ErrorContains(t, err, `failed to convert field "Id" at position 0`)
}

func TestOrderedDeclarationOrderIndependence(t *testing.T) {
	type NameFirst struct {
		Name string `order:"2"`
		Id   int    `order:"0"`
	}

	type NameLast struct {
		Id   int    `order:"0"`
		Name string `order:"2"`
	}

	first, err := UnmarshalNew[NameFirst](seqOf("7", "unused", "Frida"))
	require.NoError(t, err)

	last, err := UnmarshalNew[NameLast](seqOf("7", "unused", "Frida"))
	require.NoError(t, err)

	require.Equal(t, first.Id, last.Id)
	require.Equal(t, first.Name, last.Name)
}

func TestOrderedTrailingElementsIgnored(t *testing.T) {
	type Pair struct {
		A string `order:"0"`
		B string `order:"1"`
	}

	// anything past position 1 is consumed but never converted, so its
	// shape does not matter at all
	pair, err := UnmarshalNew[Pair](seqOf("one", "two", "not a number", "", "whatever"))
	require.NoError(t, err)
	require.Equal(t, pair, Pair{A: "one", B: "two"})
}

func TestOrderedFullConsumption(t *testing.T) {
	type Single struct {
		Value string `order:"0"`
	}

	source := countingSeq{seq: seqOf("a", "b", "c", "d"), yielded: new(int)}

	single, err := UnmarshalNew[Single](source)
	require.NoError(t, err)
	require.Equal(t, single, Single{Value: "a"})

	// trailing elements are still read, they just carry no meaning
	require.Equal(t, *source.yielded, 4)
}

func TestOrderedDuplicatePositions(t *testing.T) {
	// two fields may alias the same position, each converting the shared
	// element with its own setter
	type Aliased struct {
		AsNumber int    `order:"0"`
		AsText   string `order:"0"`
	}

	aliased, err := UnmarshalNew[Aliased](seqOf("7"))
	require.NoError(t, err)
	require.Equal(t, aliased, Aliased{AsNumber: 7, AsText: "7"})
}

func TestOrderedEmptySchema(t *testing.T) {
	// a schema without any read field keeps MaxPosition zero and thus
	// still wants one element
	type Empty struct {
		Skipped string `order:"-"`
	}

	_, err := UnmarshalNew[Empty](seqOf())

	var lengthErr LengthError
	require.ErrorAs(t, err, &lengthErr)
	require.Equal(t, lengthErr, LengthError{Got: 0, Need: 1})

	empty, err := UnmarshalNew[Empty](seqOf("present"))
	require.NoError(t, err)
	require.Equal(t, empty, Empty{})
}

func TestOrderedNoPartialResult(t *testing.T) {
	person := Person{Id: 12, Name: "before", Height: 1.60}

	err := Unmarshal(seqOf("1", "Jane Doe", "not a float"), &person)
	require.Error(t, err)

	// the failed decode must not have touched the target
	require.Equal(t, person, Person{Id: 12, Name: "before", Height: 1.60})
}

func TestOrderedNested(t *testing.T) {
	type Point struct {
		X int `order:"0"`
		Y int `order:"1"`
	}

	type Shape struct {
		Origin Point  `order:"1"`
		Label  string `order:"0"`
	}

	source := seqSource{elements: []Source{
		StringSource("origin"),
		seqOf("3", "4"),
	}}

	shape, err := UnmarshalNew[Shape](source)
	require.NoError(t, err)
	require.Equal(t, shape, Shape{Label: "origin", Origin: Point{X: 3, Y: 4}})
}

func TestOrderedNotASequence(t *testing.T) {
	_, err := UnmarshalNew[Person](EmptySource{})
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestOrderedConcurrentDecodes(t *testing.T) {
	// the schema and its setter are built once and shared read-only,
	// decode calls keep all mutable state local
	var wg sync.WaitGroup

	results := make([]Person, 16)
	errs := make([]error, 16)

	for idx := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()
			results[idx], errs[idx] = UnmarshalNew[Person](seqOf("1", "Jane Doe", "1.75"))
		}()
	}

	wg.Wait()

	for idx := range results {
		require.NoError(t, errs[idx])
		require.Equal(t, results[idx], Person{Id: 1, Name: "Jane Doe", Height: 1.75})
	}
}

// seqOf builds a sequence Source whose elements parse like StringSource
func seqOf(values ...string) seqSource {
	elements := make([]Source, len(values))
	for idx, value := range values {
		elements[idx] = StringSource(value)
	}

	return seqSource{elements: elements}
}

type seqSource struct {
	EmptySource
	elements []Source
}

func (s seqSource) Iter() (iter.Seq[Source], error) {
	it := func(yield func(Source) bool) {
		for _, element := range s.elements {
			if !yield(element) {
				break
			}
		}
	}

	return it, nil
}

type countingSeq struct {
	seq     seqSource
	yielded *int
}

func (c countingSeq) Bool() (bool, error)     { return c.seq.Bool() }
func (c countingSeq) Int() (int64, error)     { return c.seq.Int() }
func (c countingSeq) Uint() (uint64, error)   { return c.seq.Uint() }
func (c countingSeq) Float() (float64, error) { return c.seq.Float() }
func (c countingSeq) String() (string, error) { return c.seq.String() }

func (c countingSeq) Get(key string) (Source, error) {
	return c.seq.Get(key)
}

func (c countingSeq) KeyValues() (iter.Seq2[Source, Source], error) {
	return c.seq.KeyValues()
}

func (c countingSeq) Iter() (iter.Seq[Source], error) {
	it := func(yield func(Source) bool) {
		for _, element := range c.seq.elements {
			*c.yielded++
			if !yield(element) {
				break
			}
		}
	}

	return it, nil
}
