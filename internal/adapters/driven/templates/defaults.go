package templates

import "github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"

// defaultTemplates contains the embedded fallback template for each
// built-in document type. These are used when no file-based template
// can be located and as the initial content for new template files.
var defaultTemplates = map[domain.DocumentType]string{
	domain.DocTypeRentalAgreement: `RENTAL AGREEMENT

This Rental Agreement is made and executed at {{.execution_place}} on this {{.date}} day of {{.month}}, {{.year}} between:

{{.landlord}}, aged about {{.landlord_age}} years, S/o {{.landlord_father}}, residing at {{.address}} (hereinafter referred to as the "LANDLORD") of the ONE PART;

AND

{{.tenant}}, aged about {{.tenant_age}} years, S/o {{.tenant_father}} (hereinafter referred to as the "TENANT") of the OTHER PART.

WHEREAS the Landlord is the absolute owner of the premises situated at {{.address}} and has agreed to let out the said premises to the Tenant, and the Tenant has agreed to take it on rent on the following terms:

1. The tenancy shall commence on {{.start_date}} and shall remain in force for a period of {{.duration}}.
2. The Tenant shall pay a monthly rent of Rs. {{.rent_amount}} on or before the 5th day of every English calendar month.
3. The Tenant has paid a refundable security deposit of Rs. {{.security_deposit}}, which shall carry no interest and shall be returned at the time of vacating the premises after deducting dues, if any.
4. The Tenant shall use the premises for residential purposes only and shall not sublet any portion of the premises.
5. The Tenant shall pay electricity and water charges as per the meter readings.
6. Either party may terminate this agreement by giving one month's notice in writing.

IN WITNESS WHEREOF the parties have set their hands on the day, month and year first above written.

LANDLORD: {{.landlord}}

TENANT: {{.tenant}}

WITNESSES:
1. {{.witness_one_name}}, {{.witness_one_address}}
2. {{.witness_two_name}}, {{.witness_two_address}}
`,

	domain.DocTypeLandSaleDeed: `SALE DEED

This Sale Deed is executed at {{.execution_place}} on this {{.date}} day of {{.month}}, {{.year}} between:

{{.seller}}, aged about {{.seller_age}} years, S/o {{.seller_father}} (hereinafter referred to as the "SELLER") of the ONE PART;

AND

{{.buyer}}, aged about {{.buyer_age}} years, S/o {{.buyer_father}} (hereinafter referred to as the "BUYER") of the OTHER PART.

WHEREAS the Seller is the absolute owner of the property situated at {{.property_address}}, more fully described as {{.property_description}}, and has agreed to sell it to the Buyer for a total sale consideration of Rs. {{.sale_amount}}.

NOW THIS DEED WITNESSETH:

1. In consideration of the sum of Rs. {{.sale_amount}} paid by the Buyer, the receipt of which the Seller hereby acknowledges, the Seller conveys the said property to the Buyer absolutely.
2. The sale is effective from {{.sale_date}}, on which date vacant possession of the property was delivered to the Buyer.
3. The Seller covenants that the property is free from all encumbrances, charges and claims.
4. The Seller shall execute any further documents required to perfect the Buyer's title.

IN WITNESS WHEREOF the parties have signed this deed in the presence of the witnesses below.

SELLER: {{.seller}}

BUYER: {{.buyer}}

WITNESSES:
1. {{.witness_one_name}}, {{.witness_one_address}}
2. {{.witness_two_name}}, {{.witness_two_address}}
`,

	domain.DocTypePowerOfAttorney: `POWER OF ATTORNEY

KNOW ALL MEN BY THESE PRESENTS that I, {{.principal}}, aged about {{.principal_age}} years, S/o {{.principal_father}}, do hereby nominate and appoint {{.attorney}}, aged about {{.attorney_age}} years, S/o {{.attorney_father}}, as my true and lawful attorney.

WHEREAS I am unable to attend to the matters set out below personally, I authorise my attorney to do the following acts on my behalf:

{{.powers}}

1. This Power of Attorney shall remain in force for {{.duration}}.
2. I ratify and confirm all lawful acts done by my attorney under this instrument.
3. I reserve the right to revoke this Power of Attorney at any time by notice in writing.

IN WITNESS WHEREOF I have signed this Power of Attorney at {{.execution_place}} on {{.execution_date}}.

PRINCIPAL: {{.principal}}

ATTORNEY: {{.attorney}}

WITNESSES:
1. {{.witness_one_name}}, {{.witness_one_address}}
2. {{.witness_two_name}}, {{.witness_two_address}}
`,

	domain.DocTypeHouseLease: `HOUSE LEASE AGREEMENT

This Lease Agreement is made at {{.execution_place}} on this {{.date}} day of {{.month}}, {{.year}} between:

{{.lessor}}, aged about {{.lessor_age}} years, S/o {{.lessor_father}} (hereinafter referred to as the "LESSOR") of the ONE PART;

AND

{{.lessee}}, aged about {{.lessee_age}} years, S/o {{.lessee_father}} (hereinafter referred to as the "LESSEE") of the OTHER PART.

WHEREAS the Lessor is the owner of the house situated at {{.property_address}} and has agreed to lease it to the Lessee on the following terms:

1. The lease shall commence on {{.start_date}} and shall remain in force for {{.duration}}.
2. The Lessee shall pay a monthly lease amount of Rs. {{.lease_amount}} on or before the 5th day of every month.
3. The Lessee has paid a refundable security deposit equal to two months' lease amount.
4. The Lessee shall maintain the house in good and tenantable condition and shall not make structural alterations without the written consent of the Lessor.
5. Either party may terminate the lease by giving two months' notice in writing.

IN WITNESS WHEREOF the parties have signed this agreement on the day, month and year first above written.

LESSOR: {{.lessor}}

LESSEE: {{.lessee}}

WITNESSES:
1. {{.witness_one_name}}, {{.witness_one_address}}
2. {{.witness_two_name}}, {{.witness_two_address}}
`,
}
