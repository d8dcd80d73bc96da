// Package pattern provides a rule-based implementation of the
// annotator capability. It tags capitalised word runs as PERSON and
// prepositional objects as GPE, which is enough for prompt-sized
// inputs when no external NER model is available.
package pattern

import (
	"context"
	"regexp"
	"strings"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
)

// Ensure Annotator implements the interface.
var _ driven.Annotator = (*Annotator)(nil)

// capitalisedRun matches one or more consecutive capitalised words.
var capitalisedRun = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)

// months are excluded from entity runs; date patterns own them.
var months = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
	"Jan": true, "Feb": true, "Mar": true, "Apr": true, "Jun": true,
	"Jul": true, "Aug": true, "Sep": true, "Oct": true, "Nov": true, "Dec": true,
}

// Annotator tags spans using capitalisation and preposition rules:
//
//   - a capitalised run directly after "in" or "at" is a GPE
//   - a run of two or more capitalised words elsewhere is a PERSON
//   - single capitalised words elsewhere are ignored (usually
//     sentence starts)
//
// Spans are returned in encounter order, which downstream ordinal
// role assignment depends on.
type Annotator struct{}

// New creates a pattern annotator.
func New() *Annotator {
	return &Annotator{}
}

// Annotate tags spans in text with semantic categories.
func (a *Annotator) Annotate(_ context.Context, text string) ([]domain.Annotation, error) {
	var annotations []domain.Annotation

	for _, loc := range capitalisedRun.FindAllStringIndex(text, -1) {
		span := text[loc[0]:loc[1]]
		words := strings.Fields(span)

		// Trim trailing month words so "starting 1st April" does not
		// leak a month into an entity span.
		for len(words) > 0 && months[words[len(words)-1]] {
			words = words[:len(words)-1]
		}
		if len(words) == 0 {
			continue
		}
		span = strings.Join(words, " ")

		switch {
		case followsPreposition(text, loc[0]):
			annotations = append(annotations, domain.Annotation{Text: span, Label: domain.LabelGPE})
		case len(words) >= 2:
			annotations = append(annotations, domain.Annotation{Text: span, Label: domain.LabelPerson})
		}
	}

	return annotations, nil
}

// followsPreposition reports whether the word immediately before
// position start is a location preposition ("in" or "at").
func followsPreposition(text string, start int) bool {
	prefix := strings.TrimRight(text[:start], " ")
	return strings.HasSuffix(prefix, " in") || strings.HasSuffix(prefix, " at") ||
		prefix == "in" || prefix == "at"
}
