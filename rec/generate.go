package rec

import (
	"errors"
	"fmt"
	"math/rand"
)

// Defaults for Config.
const (
	DefaultNUnique     = 200
	DefaultNDuplicates = 40
	DefaultSeed        = 42
)

// dropoutChance is the per-field probability of replacing a value with
// absence, applied independently to address, city and date_of_birth.
const dropoutChance = 0.10

// ErrInvalidConfig is returned for configurations that cannot produce a
// well-formed dataset.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config controls one generation run.
type Config struct {
	NUnique     int
	NDuplicates int
	Seed        int64
}

func DefaultConfig() Config {
	return Config{NUnique: DefaultNUnique, NDuplicates: DefaultNDuplicates, Seed: DefaultSeed}
}

func (c Config) validate() error {
	if c.NUnique < 0 || c.NDuplicates < 0 {
		return fmt.Errorf("%w: counts must not be negative (unique=%d, duplicates=%d)", ErrInvalidConfig, c.NUnique, c.NDuplicates)
	}
	if c.NUnique == 0 && c.NDuplicates > 0 {
		return fmt.Errorf("%w: cannot derive %d duplicates from an empty unique pool", ErrInvalidConfig, c.NDuplicates)
	}
	return nil
}

// Generate builds a labeled dataset: cfg.NUnique clean identity records
// followed by cfg.NDuplicates corrupted copies of them. The run is
// reproducible: one random source is seeded from cfg.Seed and every draw
// (field values, duplicate sampling, corruption, dropout) consumes that
// single stream in a fixed order.
func Generate(cfg Config) (*Dataset, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return GenerateWith(cfg, NewFakerProvider(rng), rng)
}

// GenerateWith runs the generation pipeline with an injected provider and
// random source. The provider should draw from the same source to keep the
// run reproducible end to end.
func GenerateWith(cfg Config, p Provider, rng *rand.Rand) (*Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	records := make([]Record, 0, cfg.NUnique+cfg.NDuplicates)

	for i := 0; i < cfg.NUnique; i++ {
		uid := p.UniqueID()
		r := Record{
			ID:          uid,
			OriginalID:  uid,
			Name:        NewField(p.PersonName()),
			Address:     NewField(flattenAddress(p.PostalAddress())),
			City:        NewField(p.CityName()),
			DateOfBirth: NewField(p.BirthDate()),
		}
		dropout(&r, rng)
		records = append(records, r)
	}

	for i := 0; i < cfg.NDuplicates; i++ {
		src := records[rng.Intn(cfg.NUnique)]
		dup := src // Record holds no references, assignment copies every field
		dup.ID = p.UniqueID()
		dup.Name = PerturbField(src.Name, rng)
		// an absent source address stays absent: nulls are never corrupted
		dup.Address = PerturbField(src.Address, rng)
		dropout(&dup, rng)
		records = append(records, dup)
	}

	return &Dataset{Records: records}, nil
}

// dropout independently clears each optional field with probability
// dropoutChance. The draws happen whether or not the field is still
// present, keeping the stream layout fixed. Name is never dropped.
func dropout(r *Record, rng *rand.Rand) {
	if rng.Float64() < dropoutChance {
		r.Address = NoValue
	}
	if rng.Float64() < dropoutChance {
		r.City = NoValue
	}
	if rng.Float64() < dropoutChance {
		r.DateOfBirth = NoValue
	}
}
