package makedata

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultLookback is how far into the past generated dates may fall.
const DefaultLookback = 365 * 24 * time.Hour

// Generator produces random records. The zero value is not usable; create
// one with [New].
type Generator struct {
	src      *rand.ChaCha8
	rng      *rand.Rand
	now      func() time.Time
	lookback time.Duration
}

// Option configures a [Generator].
type Option func(*Generator)

// WithSeed makes the generator's output reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = newSource(seed)
	}
}

// WithNow overrides the clock used as the upper bound for dates.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLookback sets the window dates are drawn from. Non-positive values
// keep [DefaultLookback].
func WithLookback(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.lookback = d
		}
	}
}

// New creates a generator. Without [WithSeed] it is seeded randomly.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:      time.Now,
		lookback: DefaultLookback,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = newSource(rand.Uint64())
	}
	g.rng = rand.New(g.src)
	return g
}

func newSource(seed uint64) *rand.ChaCha8 {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.NewChaCha8(key)
}

// Make builds a forest with lens[0] top-level records, each holding
// lens[1] children, and so on. Negative sizes count as zero.
func (g *Generator) Make(lens ...int) []Person {
	if len(lens) == 0 {
		return []Person{}
	}
	return g.level(lens, 0)
}

func (g *Generator) level(lens []int, depth int) []Person {
	n := max(lens[depth], 0)
	out := make([]Person, n)
	for i := range out {
		out[i] = g.Person()
		if depth+1 < len(lens) && lens[depth+1] > 0 {
			out[i].SubRows = g.level(lens, depth+1)
		}
	}
	return out
}

// Person returns one record without children.
func (g *Generator) Person() Person {
	return Person{
		ID:        uuid.Must(uuid.NewRandomFromReader(g.src)),
		FirstName: firstNames[g.rng.IntN(len(firstNames))],
		LastName:  lastNames[g.rng.IntN(len(lastNames))],
		Age:       g.rng.IntN(MaxAge + 1),
		Status:    statuses[g.rng.IntN(len(statuses))],
		Date:      g.pastDate(),
	}
}

// pastDate returns a millisecond-precision instant strictly before now and
// no older than the lookback window.
func (g *Generator) pastDate() time.Time {
	offset := time.Duration(1 + g.rng.Int64N(int64(g.lookback)))
	return g.now().Add(-offset).Truncate(time.Millisecond)
}

var (
	defaultMu  sync.Mutex
	defaultGen = New()
)

// Make builds a forest using the shared default generator.
// See [Generator.Make].
func Make(lens ...int) []Person {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGen.Make(lens...)
}
