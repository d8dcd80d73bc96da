package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driven"
	"github.com/lexdraft-labs/lexdraft-cli/internal/logger"
)

// Entity patterns. Each extraction is independent and best-effort; a
// pattern that finds nothing leaves its fields absent.
var (
	// amountPattern matches currency-formatted numbers with an
	// optional leading marker and optional trailing unit word.
	amountPattern = regexp.MustCompile(`(?i)(Rs\.?|INR|₹)?\s*(\d+(?:,\d+)*(?:\.\d{2})?)\s*(rupees?|rs\.?|INR)?`)

	// datePattern matches numeric D-M-YYYY / D/M/YYYY forms and
	// spelled-month forms like "1st April 2024".
	datePattern = regexp.MustCompile(`(?i)\b\d{1,2}[-/]\d{1,2}[-/]\d{4}\b|\b\d{1,2}(?:st|nd|rd|th)?\s+(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{4}\b`)

	// locationPattern captures the prepositional phrase after in/at.
	locationPattern = regexp.MustCompile(`\b(?:at|in)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	// durationPattern matches "<number> <unit>" durations.
	durationPattern = regexp.MustCompile(`(?i)\b(\d+)\s*(year|month|week|day)s?\b`)

	// agePattern matches "N years old" and "aged N".
	agePattern = regexp.MustCompile(`(?i)\b(?:(\d{1,3})\s+years?\s+old|aged\s+(\d{1,3}))\b`)

	// parentagePattern matches "S/o <Name>" markers.
	parentagePattern = regexp.MustCompile(`(?i)\bS/o\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
)

// Extractor pulls structured entities from free-text prompts by
// combining the annotator capability with pattern rules.
type Extractor struct {
	registry  *domain.Registry
	annotator driven.Annotator
}

// NewExtractor creates an extractor.
func NewExtractor(registry *domain.Registry, annotator driven.Annotator) *Extractor {
	return &Extractor{registry: registry, annotator: annotator}
}

// Extract builds an entity bag from a prompt for the given document
// type. PERSON spans fill the type's role slots in encounter order,
// first-match-wins; location spans fill address then property_address.
func (e *Extractor) Extract(ctx context.Context, prompt string, docType domain.DocumentType) (*domain.EntityBag, error) {
	spec, err := e.registry.Spec(docType)
	if err != nil {
		return nil, err
	}

	annotations, err := e.annotator.Annotate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("annotate prompt: %w", err)
	}

	bag := domain.NewEntityBag()
	AssignRoles(bag, annotations, spec.Roles)
	e.applyPatterns(bag, prompt)
	assignRoleDetails(bag, spec.Roles)

	logger.Debug("extract: %d fields from %d annotations", len(bag.Fields), len(annotations))
	return bag, nil
}

// AssignRoles fills role slots from an ordered annotation list.
// PERSON spans take the first unassigned role in priority order;
// location spans fill address, then property_address. First match
// wins - an already-filled slot is never overwritten. Exported as a
// pure function so the ordinal heuristic stays testable on its own.
func AssignRoles(bag *domain.EntityBag, annotations []domain.Annotation, roles []string) {
	for _, ann := range annotations {
		switch {
		case ann.Label == domain.LabelPerson:
			bag.Names = append(bag.Names, ann.Text)
			for _, role := range roles {
				if bag.SetIfAbsent(role, ann.Text) {
					break
				}
			}
		case ann.Label.IsLocation():
			bag.Locations = append(bag.Locations, ann.Text)
			if !bag.SetIfAbsent("address", ann.Text) {
				bag.SetIfAbsent("property_address", ann.Text)
			}
		}
	}
}

// applyPatterns runs the regex extractions over the prompt.
func (e *Extractor) applyPatterns(bag *domain.EntityBag, prompt string) {
	for _, m := range amountPattern.FindAllStringSubmatch(prompt, -1) {
		marker, number, unit := m[1], m[2], m[3]
		// A bare number is not an amount; require a currency marker,
		// unit word, or grouped/decimal formatting.
		if marker == "" && unit == "" && !strings.ContainsAny(number, ",.") {
			continue
		}
		bag.Amounts = append(bag.Amounts, number)
	}
	if len(bag.Amounts) > 0 {
		amount := bag.Amounts[0]
		bag.SetIfAbsent("rent_amount", amount)
		bag.SetIfAbsent("sale_amount", amount)
		bag.SetIfAbsent("lease_amount", amount)
	}

	if dates := datePattern.FindAllString(prompt, -1); len(dates) > 0 {
		bag.Dates = dates
		bag.SetIfAbsent("start_date", dates[0])
		bag.SetIfAbsent("sale_date", dates[0])
		bag.SetIfAbsent("effective_date", dates[0])
	}

	for _, m := range locationPattern.FindAllStringSubmatch(prompt, -1) {
		bag.Locations = append(bag.Locations, m[1])
	}
	if len(bag.Locations) > 0 {
		bag.SetIfAbsent("address", bag.Locations[0])
		bag.SetIfAbsent("property_address", bag.Locations[0])
	}

	if m := durationPattern.FindString(prompt); m != "" {
		bag.Durations = append(bag.Durations, m)
		bag.SetIfAbsent("duration", m)
	}

	for _, m := range agePattern.FindAllStringSubmatch(prompt, -1) {
		age := m[1]
		if age == "" {
			age = m[2]
		}
		bag.Ages = append(bag.Ages, age)
	}

	for _, m := range parentagePattern.FindAllStringSubmatch(prompt, -1) {
		bag.Parentage = append(bag.Parentage, m[1])
	}
}

// assignRoleDetails distributes detected ages and parentage strings
// across the role slots in priority order. When fewer ages or father
// names were detected than roles to fill, the remaining slots are left
// to the default tables. Defaults standing in for undetected ages can
// mask extraction failures; they are reported as defaults, never as
// extracted data.
func assignRoleDetails(bag *domain.EntityBag, roles []string) {
	for i, role := range roles {
		if i < len(bag.Ages) {
			bag.SetIfAbsent(role+"_age", bag.Ages[i])
		}
		if i < len(bag.Parentage) {
			bag.SetIfAbsent(role+"_father", bag.Parentage[i])
		}
	}
}
