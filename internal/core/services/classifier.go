package services

import (
	"strings"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Classifier scores prompts against the document type registry.
type Classifier struct {
	registry    *domain.Registry
	defaultType domain.DocumentType
}

// NewClassifier creates a classifier over the given registry.
// defaultType is returned when a prompt matches no keywords at all;
// the classifier never reports "unknown".
func NewClassifier(registry *domain.Registry, defaultType domain.DocumentType) (*Classifier, error) {
	if _, err := registry.Spec(defaultType); err != nil {
		return nil, err
	}
	return &Classifier{registry: registry, defaultType: defaultType}, nil
}

// Classify returns the document type whose keywords occur most often
// in the prompt. Matching is plain substring containment over the
// lower-cased prompt, not tokenised. Ties break in registration
// order: the first type to reach the maximum wins.
//
// A prompt with zero keyword hits across all types yields the
// configured default type.
func (c *Classifier) Classify(prompt string) domain.DocumentType {
	lowered := strings.ToLower(prompt)

	best := c.defaultType
	bestScore := 0
	for _, spec := range c.registry.Specs() {
		// One point per distinct keyword present. Repeating a
		// keyword does not raise the score.
		score := 0
		for _, keyword := range spec.Keywords {
			if strings.Contains(lowered, keyword) {
				score++
			}
		}
		logger.Debug("classify: %s scored %d", spec.Type, score)
		if score > bestScore {
			best = spec.Type
			bestScore = score
		}
	}

	if bestScore == 0 {
		logger.Debug("classify: no keyword hits, defaulting to %s", c.defaultType)
		return c.defaultType
	}
	return best
}
