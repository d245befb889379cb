package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML knowledge file and merges it over the defaults.
//
// Sections present in the file replace the corresponding default section
// entirely, so the order written in the file is the match order.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var override Base
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}

	base := merge(Default(), &override)
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge file %s: %w", path, err)
	}
	return base, nil
}

// Load returns the defaults when path is empty, otherwise LoadFile(path)
func Load(path string) (*Base, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func merge(base, override *Base) *Base {
	out := *base
	if override.Keywords != nil {
		out.Keywords = override.Keywords
	}
	if override.FAQ != nil {
		out.FAQ = override.FAQ
	}
	if override.Facts != nil {
		out.Facts = override.Facts
	}
	if override.DomainTokens != nil {
		out.DomainTokens = override.DomainTokens
	}
	if override.FactPrefix != "" {
		out.FactPrefix = override.FactPrefix
	}
	if override.FactSuffix != "" {
		out.FactSuffix = override.FactSuffix
	}
	if override.OutOfDomain != "" {
		out.OutOfDomain = override.OutOfDomain
	}
	if override.Suggestions != nil {
		out.Suggestions = override.Suggestions
	}
	if override.QuickAnswers != nil {
		out.QuickAnswers = override.QuickAnswers
	}
	return &out
}
