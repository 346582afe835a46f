package memory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// ErrInvalidSeed is returned when a seed document cannot populate the store.
var ErrInvalidSeed = errors.New("invalid seed")

// seedDocument is the on-disk shape of a seed file.
type seedDocument struct {
	Quotes []string `yaml:"quotes"`
}

// DefaultSeed returns the built-in seed quotes.
func DefaultSeed() []string {
	quotes, err := ParseSeed(defaultSeed)
	if err != nil {
		// The embedded document is part of the binary.
		panic(fmt.Sprintf("embedded seed: %v", err))
	}

	return quotes
}

// LoadSeedFile reads a seed document from path. An empty path selects the
// built-in seed.
func LoadSeedFile(path string) ([]string, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %q: %w", path, err)
	}

	quotes, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %q: %w", path, err)
	}

	return quotes, nil
}

// ParseSeed decodes a seed document. Entries are trimmed; the result must be
// non-empty, contain no blank entries and no duplicates.
func ParseSeed(data []byte) ([]string, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	if len(doc.Quotes) == 0 {
		return nil, fmt.Errorf("%w: no quotes", ErrInvalidSeed)
	}

	seen := make(map[string]int, len(doc.Quotes))
	quotes := make([]string, 0, len(doc.Quotes))

	for i, raw := range doc.Quotes {
		text := strings.TrimSpace(raw)
		if text == "" {
			return nil, fmt.Errorf("%w: entry %d is blank", ErrInvalidSeed, i)
		}

		if first, dup := seen[text]; dup {
			return nil, fmt.Errorf("%w: entry %d duplicates entry %d", ErrInvalidSeed, i, first)
		}

		seen[text] = i
		quotes = append(quotes, text)
	}

	return quotes, nil
}
