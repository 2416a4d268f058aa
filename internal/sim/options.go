package sim

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const DefaultDueDays = 30

// Options configures a single simulation run. Zero values for DueDays,
// StartDate and Seed are filled in by Validate (payment terms default to 30
// days, the start date to today, the seed to the wall clock).
type Options struct {
	Days      int `validate:"required,gt=0"`
	DueDays   int `validate:"gt=0"`
	Seed      int64
	StartDate time.Time
}

func (o *Options) Validate() error {
	if o.DueDays == 0 {
		o.DueDays = DefaultDueDays
	}
	if o.StartDate.IsZero() {
		o.StartDate = Midnight(time.Now())
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}

	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid simulation options: %w", err)
	}

	return nil
}

// Midnight normalizes t to a UTC calendar day, the granularity every date
// in the simulation uses.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b. Both are expected to be
// Midnight-normalized.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
