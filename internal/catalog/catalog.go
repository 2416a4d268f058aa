// Package catalog holds the named attribute presets a business can be
// created from. A code is two characters: a payment-reliability tier A-F
// and an invoice-frequency tier 1-5, e.g. "B3".
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"invoicesim/internal/core"
)

var ErrUnknownPreset = errors.New("unknown profile preset")

// Preset is one named parameter bundle. The yaml tags serve the override
// file format accepted by MergeFile.
type Preset struct {
	InvoicesPerYear  int     `yaml:"invoices_per_year" validate:"required,gt=0"`
	OnTimePercentage float64 `yaml:"on_time_percentage" validate:"gte=0,lte=100"`
	MaxPaymentDelay  int     `yaml:"max_payment_delay" validate:"gte=0"`
}

var frequencyTiers = map[byte]int{
	'1': 91,
	'2': 123,
	'3': 365,
	'4': 730,
	'5': 1095,
}

var reliabilityTiers = map[byte]struct {
	onTime   float64
	maxDelay int
}{
	'A': {100, 0},
	'B': {90, 10},
	'C': {80, 20},
	'D': {70, 30},
	'E': {60, 40},
	'F': {50, 50},
}

type Catalog struct {
	presets map[string]Preset
}

// Builtin returns the full A1-F5 table.
func Builtin() *Catalog {
	presets := make(map[string]Preset, len(reliabilityTiers)*len(frequencyTiers))
	for reliability, tier := range reliabilityTiers {
		for frequency, invoicesPerYear := range frequencyTiers {
			code := string([]byte{reliability, frequency})
			presets[code] = Preset{
				InvoicesPerYear:  invoicesPerYear,
				OnTimePercentage: tier.onTime,
				MaxPaymentDelay:  tier.maxDelay,
			}
		}
	}

	return &Catalog{presets: presets}
}

// Get builds a fresh profile from the named preset. Every call returns a
// new instance, so no two businesses share customer-average state through
// the catalog.
func (c *Catalog) Get(code string) (*core.AttributeProfile, error) {
	preset, ok := c.presets[normalize(code)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", code, ErrUnknownPreset)
	}

	return core.NewAttributeProfile(preset.InvoicesPerYear, preset.OnTimePercentage, preset.MaxPaymentDelay), nil
}

func (c *Catalog) Has(code string) bool {
	_, ok := c.presets[normalize(code)]
	return ok
}

// Codes lists the available preset codes in sorted order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.presets))
	for code := range c.presets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MergeFile overlays presets from a YAML file mapping codes to parameter
// bundles. Existing codes are replaced, new codes added; every entry is
// validated before any of the file is applied.
func (c *Catalog) MergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset file: %w", err)
	}

	var overrides map[string]Preset
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("parse preset file %s: %w", path, err)
	}

	validate := validator.New()
	for code, preset := range overrides {
		if err := validate.Struct(preset); err != nil {
			return fmt.Errorf("preset %s: %w", code, err)
		}
	}

	for code, preset := range overrides {
		c.presets[normalize(code)] = preset
	}

	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
