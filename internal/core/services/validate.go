package services

import (
	"strings"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// ValidateDraft runs presence rules over a generated draft and returns
// the issues found. Rules are advisory: they flag likely omissions,
// they do not guarantee legal correctness.
func ValidateDraft(docType domain.DocumentType, jurisdiction, text string) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}
	lowered := strings.ToLower(text)

	switch docType {
	case domain.DocTypeRentalAgreement, domain.DocTypeHouseLease:
		if !strings.Contains(lowered, "rent") && !strings.Contains(lowered, "lease") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "payment-terms-missing",
				Severity: domain.SeverityError,
				Message:  "Agreement should state the rent or lease amount.",
			})
		}
		if !strings.Contains(lowered, "deposit") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "security-deposit-missing",
				Severity: domain.SeverityWarning,
				Message:  "Consider adding a security deposit clause.",
			})
		}
		if !strings.Contains(lowered, "witness") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "witnesses-missing",
				Severity: domain.SeverityWarning,
				Message:  "Agreement should be signed before witnesses.",
			})
		}
	case domain.DocTypeLandSaleDeed:
		if !strings.Contains(lowered, "consideration") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "consideration-missing",
				Severity: domain.SeverityError,
				Message:  "Sale deed should state the sale consideration.",
			})
		}
		if !strings.Contains(lowered, "possession") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "possession-missing",
				Severity: domain.SeverityWarning,
				Message:  "Consider stating when possession transfers.",
			})
		}
	case domain.DocTypePowerOfAttorney:
		if !strings.Contains(lowered, "revoke") && !strings.Contains(lowered, "revocation") {
			issues = append(issues, domain.ValidationIssue{
				ID:       "revocation-missing",
				Severity: domain.SeverityWarning,
				Message:  "Consider stating how the power of attorney is revoked.",
			})
		}
	}

	if jurisdiction != "" && !strings.Contains(lowered, strings.ToLower(jurisdiction)) {
		issues = append(issues, domain.ValidationIssue{
			ID:       "jurisdiction-mention",
			Severity: domain.SeverityInfo,
			Message:  "Document governed by " + jurisdiction + " should mention it.",
		})
	}

	return issues
}
