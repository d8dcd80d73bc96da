package services

import "github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"

// DefaultRegistry builds the built-in document type registry.
// Registration order matters: the classifier breaks score ties by
// returning the first type to reach the maximum, in this order.
func DefaultRegistry() *domain.Registry {
	registry, err := domain.NewRegistry(
		domain.DocumentTypeSpec{
			Type:           domain.DocTypeRentalAgreement,
			Keywords:       []string{"rental", "rent", "lease", "tenant", "landlord", "monthly"},
			RequiredFields: []string{"landlord", "tenant", "address", "rent_amount", "start_date", "duration"},
			Roles:          []string{"landlord", "tenant"},
			Defaults: map[string]string{
				"rent_amount":      "10,000",
				"security_deposit": "50,000",
				"duration":         "11 months",
				"landlord_age":     "45",
				"tenant_age":       "30",
				"landlord_father":  "[Father's Name]",
				"tenant_father":    "[Father's Name]",
			},
			TemplateName: "rental_agreement",
		},
		domain.DocumentTypeSpec{
			Type:           domain.DocTypeLandSaleDeed,
			Keywords:       []string{"sale", "deed", "property", "buyer", "seller", "purchase"},
			RequiredFields: []string{"seller", "buyer", "property_address", "sale_amount", "sale_date"},
			Roles:          []string{"seller", "buyer"},
			Defaults: map[string]string{
				"sale_amount":          "5,00,000",
				"property_description": "[Property Description]",
				"seller_age":           "50",
				"buyer_age":            "40",
				"seller_father":        "[Father's Name]",
				"buyer_father":         "[Father's Name]",
			},
			TemplateName: "land_sale_deed",
		},
		domain.DocumentTypeSpec{
			Type:           domain.DocTypePowerOfAttorney,
			Keywords:       []string{"power", "attorney", "delegate", "authority", "behalf"},
			RequiredFields: []string{"principal", "attorney", "powers", "duration"},
			Roles:          []string{"principal", "attorney"},
			Defaults: map[string]string{
				"powers":           "all lawful acts necessary on my behalf",
				"duration":         "until revoked in writing",
				"principal_age":    "50",
				"attorney_age":     "40",
				"principal_father": "[Father's Name]",
				"attorney_father":  "[Father's Name]",
			},
			TemplateName: "power_of_attorney",
		},
		domain.DocumentTypeSpec{
			Type:           domain.DocTypeHouseLease,
			Keywords:       []string{"house", "lease", "lessor", "lessee", "property"},
			RequiredFields: []string{"lessor", "lessee", "property_address", "lease_amount", "start_date", "duration"},
			Roles:          []string{"lessor", "lessee"},
			Defaults: map[string]string{
				"lease_amount":  "15,000",
				"duration":      "11 months",
				"lessor_age":    "50",
				"lessee_age":    "35",
				"lessor_father": "[Father's Name]",
				"lessee_father": "[Father's Name]",
			},
			TemplateName: "house_lease",
		},
	)
	if err != nil {
		// The built-in specs are static; a failure here is a
		// programming error.
		panic(err)
	}
	return registry
}
