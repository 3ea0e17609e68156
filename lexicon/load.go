// File: load.go
// Role: YAML dictionary loading and connector syntax parsing.
// Errors: ErrNoPoint, ErrBadConnector (wrapped with the offending input).

package lexicon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/netknit/netknit/core"
)

var (
	// ErrNoPoint indicates a dictionary section without a point name.
	ErrNoPoint = errors.New("lexicon: section without a point")

	// ErrBadConnector indicates connector text that is not "label",
	// "label+" or "label-".
	ErrBadConnector = errors.New("lexicon: bad connector")
)

// yamlLexicon mirrors the dictionary file layout.
type yamlLexicon struct {
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Point      string             `yaml:"point"`
	Connectors []string           `yaml:"connectors"`
	Attrs      map[string]float64 `yaml:"attrs"`
}

// ParseConnector parses the compact connector syntax: a label optionally
// followed by a single trailing "+" or "-". The empty string and a bare
// sign are rejected with ErrBadConnector.
func ParseConnector(text string) (core.Connector, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return core.Connector{}, fmt.Errorf("%w: %q", ErrBadConnector, text)
	}
	pol := core.PolarityNone
	switch raw[len(raw)-1] {
	case '+':
		pol = core.PolarityPlus
		raw = raw[:len(raw)-1]
	case '-':
		pol = core.PolarityMinus
		raw = raw[:len(raw)-1]
	}
	if raw == "" {
		return core.Connector{}, fmt.Errorf("%w: %q", ErrBadConnector, text)
	}
	return core.NewConnector(raw, pol), nil
}

// LoadYAML decodes a dictionary from r. Unknown fields are rejected, so a
// typo in a dictionary file fails loudly instead of silently dropping data.
// An empty document yields an empty lexicon.
func LoadYAML(r io.Reader) (*Lexicon, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlLexicon
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}

	lx := New()
	for i, ys := range doc.Sections {
		if strings.TrimSpace(ys.Point) == "" {
			return nil, fmt.Errorf("%w (section %d)", ErrNoPoint, i)
		}
		cons := make([]core.Connector, 0, len(ys.Connectors))
		for _, raw := range ys.Connectors {
			c, err := ParseConnector(raw)
			if err != nil {
				return nil, fmt.Errorf("%w (section %d, point %q)", err, i, ys.Point)
			}
			cons = append(cons, c)
		}
		s := core.NewSection(ys.Point, cons...)
		if len(ys.Attrs) > 0 {
			attrs := make(map[string]float64, len(ys.Attrs))
			for k, v := range ys.Attrs {
				attrs[k] = v
			}
			s.Attrs = attrs
		}
		lx.Add(s)
	}
	return lx, nil
}

// LoadYAMLFile loads a dictionary from a YAML file on disk.
func LoadYAMLFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}
