package rec

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Provider supplies realistic field values for generated identities.
// Implementations must be deterministic for a fixed random source: the
// generator's reproducibility guarantee extends only as far as the
// provider's.
type Provider interface {
	UniqueID() string
	PersonName() string
	PostalAddress() string // may span multiple lines; the caller flattens
	CityName() string
	BirthDate() string // ISO date text, e.g. 1972-03-15
}

var (
	birthEarliest = time.Date(1935, time.January, 1, 0, 0, 0, 0, time.UTC)
	birthLatest   = time.Date(2007, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// FakerProvider produces fake field values from a caller-owned random
// source. All draws, including UUID bytes, consume the one shared stream,
// so a seeded source reproduces the full value sequence.
type FakerProvider struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

func NewFakerProvider(rng *rand.Rand) *FakerProvider {
	return &FakerProvider{faker: gofakeit.NewCustom(rng), rng: rng}
}

func (p *FakerProvider) UniqueID() string {
	// math/rand readers never fail
	id, _ := uuid.NewRandomFromReader(p.rng)
	return id.String()
}

func (p *FakerProvider) PersonName() string { return p.faker.Name() }

func (p *FakerProvider) PostalAddress() string {
	// Street on the first line, locality on the second, the way postal
	// data usually arrives before flattening.
	return p.faker.Street() + "\n" + p.faker.City() + ", " + p.faker.StateAbr() + " " + p.faker.Zip()
}

func (p *FakerProvider) CityName() string { return p.faker.City() }

func (p *FakerProvider) BirthDate() string {
	return p.faker.DateRange(birthEarliest, birthLatest).Format("2006-01-02")
}
