package fastuuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
)

const (
	// Size is the length in bytes of a raw id returned by Next.
	Size = 24
	// counterSize is the number of leading bytes taken by the counter.
	counterSize = 8
)

// ByteOrder selects how the counter is written into the first 8 bytes of
// an id. It also decides how those seed bytes are read as the initial
// counter value.
type ByteOrder int

const (
	// LittleEndian puts the fastest changing counter byte first, so the
	// leading hex digits of Hex128 vary on every call.
	LittleEndian ByteOrder = iota
	// BigEndian makes raw ids sort in generation order.
	BigEndian
)

// String returns the flag/config spelling of the byte order.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// ParseByteOrder parses "little" or "big".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "", "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	}
	return LittleEndian, fmt.Errorf("fastuuid: unknown byte order %q; use little|big", s)
}


// CounterStart selects the initial counter value.
type CounterStart int

const (
	// CounterFromSeed reads the initial counter from seed bytes 0..7.
	CounterFromSeed CounterStart = iota
	// CounterFromZero starts the counter at zero. The first id of such a
	// Generator has an all-zero counter prefix.
	CounterFromZero
)

// String returns the flag/config spelling of the counter start.
func (c CounterStart) String() string {
	switch c {
	case CounterFromSeed:
		return "seed"
	case CounterFromZero:
		return "zero"
	default:
		return "unknown"
	}
}

// ParseCounterStart parses "seed" or "zero".
func ParseCounterStart(s string) (CounterStart, error) {
	switch s {
	case "", "seed":
		return CounterFromSeed, nil
	case "zero":
		return CounterFromZero, nil
	}
	return CounterFromSeed, fmt.Errorf("fastuuid: unknown counter start %q; use seed|zero", s)
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	random io.Reader
	order  ByteOrder
	start  CounterStart
}

// WithRandom sets the source of the 24 seed bytes. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(o *options) { o.random = r }
}

// WithByteOrder sets the counter byte order. Defaults to LittleEndian;
// values other than BigEndian select LittleEndian.
func WithByteOrder(order ByteOrder) Option {
	return func(o *options) { o.order = order }
}

// WithCounterStart sets how the counter is initialised. Defaults to CounterFromSeed.
func WithCounterStart(start CounterStart) Option {
	return func(o *options) { o.start = start }
}

// Generator produces unique 192-bit ids in sequence from a random starting
// point. The zero value is not usable; construct with NewGenerator.
type Generator struct {
	// seed is constant after construction. Bytes 0..7 only seed counter.
	seed    [Size]byte
	counter atomic.Uint64
	order   ByteOrder
}

// NewGenerator reads a fresh seed from the configured random source.
// It fails only if that source fails.
func NewGenerator(opts ...Option) (*Generator, error) {
	o := options{random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	if o.random == nil {
		o.random = rand.Reader
	}

	if o.order != BigEndian {
		o.order = LittleEndian
	}

	g := &Generator{order: o.order}
	if _, err := io.ReadFull(o.random, g.seed[:]); err != nil {
		return nil, fmt.Errorf("fastuuid: cannot read random seed: %w", err)
	}
	if o.start == CounterFromSeed {
		if g.order == BigEndian {
			g.counter.Store(binary.BigEndian.Uint64(g.seed[:counterSize]))
		} else {
			g.counter.Store(binary.LittleEndian.Uint64(g.seed[:counterSize]))
		}
	}
	return g, nil
}

// MustNewGenerator is like NewGenerator but panics on failure.
func MustNewGenerator(opts ...Option) *Generator {
	g, err := NewGenerator(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Next returns the next id from the generator. Only the first 8 bytes differ
// from the previous id.
//
// It is OK to call Next concurrently.
func (g *Generator) Next() [Size]byte {
	// Add returns the post-increment value; ids use the value before it.
	current := g.counter.Add(1) - 1
	uuid := g.seed
	// Concrete PutUint64 calls keep uuid on the stack.
	if g.order == BigEndian {
		binary.BigEndian.PutUint64(uuid[:counterSize], current)
	} else {
		binary.LittleEndian.PutUint64(uuid[:counterSize], current)
	}
	return uuid
}

// Seed returns the constant tail (seed bytes 8..23) shared by every id of g.
func (g *Generator) Seed() [Size - counterSize]byte {
	var tail [Size - counterSize]byte
	copy(tail[:], g.seed[counterSize:])
	return tail
}

// ByteOrder reports the counter byte order of g.
func (g *Generator) ByteOrder() ByteOrder { return g.order }
