package catalog

import "github.com/draftkit/draftkit/internal/models"

var builtinCategories = []models.Category{
	{ID: "tax", Name: "Tax Filing", Description: "Engagement letters and filing notices", SortOrder: 1},
	{ID: "bookkeeping", Name: "Bookkeeping", Description: "Monthly bookkeeping agreements and reports", SortOrder: 2},
	{ID: "translation", Name: "Translation", Description: "Certified translation cover documents", SortOrder: 3},
	{ID: "immigration", Name: "Immigration", Description: "Support letters and affidavits", SortOrder: 4},
	{ID: "notary", Name: "Notary", Description: "Acknowledgments and sworn statements", SortOrder: 5},
}

var builtinTemplates = []*models.Template{
	{
		ID:       "tax-engagement-letter",
		Name:     "Tax Engagement Letter",
		Category: "tax",
		Summary:  "Engagement letter for individual tax preparation",
		Fields: []models.CustomField{
			{ID: "taxYear", Name: "Tax Year", Placeholder: "2025", Required: true},
			{ID: "filingStatus", Name: "Filing Status", Placeholder: "Single, Married Filing Jointly...", Required: true},
			{ID: "preparerName", Name: "Preparer Name", Placeholder: "Maria Alvarez, EA", Required: true},
		},
		Content: `Dear {{firstName}} {{lastName}},

Thank you for choosing our firm to prepare your {{taxYear}} individual income
tax returns. This letter confirms the terms of our engagement.

We will prepare your federal and state income tax returns for the {{taxYear}}
tax year using the {{filingStatus}} filing status, based on the information
you provide to us. We will not audit or otherwise verify the data you submit.

Our records show your contact information as:

  {{firstName}} {{lastName}}
  {{address}}
  {{city}}, {{state}} {{zipCode}}
  {{phone}} / {{email}}

Please review it and let us know of any changes.

Sincerely,

{{preparerName}}
`,
	},
	{
		ID:       "tax-extension-notice",
		Name:     "Tax Extension Notice",
		Category: "tax",
		Summary:  "Notice that an extension of time to file has been submitted",
		Fields: []models.CustomField{
			{ID: "taxYear", Name: "Tax Year", Placeholder: "2025", Required: true},
			{ID: "extensionDeadline", Name: "Extended Deadline", Placeholder: "October 15, 2026", Required: true},
		},
		Content: `Dear {{firstName}} {{lastName}},

This is to confirm that we have filed an extension of time to file your
{{taxYear}} income tax returns. Your new filing deadline is
{{extensionDeadline}}.

Please note that an extension of time to file is not an extension of time to
pay. If you expect to owe tax, estimated payments should be made as soon as
possible to limit interest and penalties.

We will contact you at {{phone}} or {{email}} when your returns are ready
for review.
`,
	},
	{
		ID:       "bookkeeping-agreement",
		Name:     "Monthly Bookkeeping Agreement",
		Category: "bookkeeping",
		Summary:  "Service agreement for recurring monthly bookkeeping",
		Fields: []models.CustomField{
			{ID: "businessName", Name: "Business Name", Placeholder: "Acme LLC", Required: true},
			{ID: "monthlyFee", Name: "Monthly Fee", Placeholder: "$350", Required: true},
			{ID: "startDate", Name: "Start Date", Placeholder: "September 1, 2026", Required: true},
		},
		Content: `BOOKKEEPING SERVICE AGREEMENT

This agreement is made between our firm and {{businessName}}, represented by
{{firstName}} {{lastName}} of {{address}}, {{city}}, {{state}} {{zipCode}}.

Beginning {{startDate}}, we will perform monthly bookkeeping services
including transaction categorization, bank reconciliation and a monthly
financial summary, for a fee of {{monthlyFee}} per month.

Either party may terminate this agreement with thirty days written notice to
the other party. Notices to the client will be sent to {{email}}.

Client signature: _______________________

Date: _______________________
`,
	},
	{
		ID:       "bookkeeping-records-request",
		Name:     "Records Request Letter",
		Category: "bookkeeping",
		Summary:  "Request for missing source documents",
		Fields: []models.CustomField{
			{ID: "businessName", Name: "Business Name", Placeholder: "Acme LLC", Required: true},
			{ID: "period", Name: "Period", Placeholder: "July 2026", Required: true},
			{ID: "missingItems", Name: "Missing Items", Placeholder: "bank statements, receipts...", Required: true},
		},
		Content: `Dear {{firstName}} {{lastName}},

While closing the books for {{businessName}} for {{period}}, we found that
the following records are still outstanding:

  {{missingItems}}

Please forward them to our office at your earliest convenience so we can
complete the monthly close. You can reply directly to {{email}} or call us
and we will arrange pickup.

Thank you.
`,
	},
	{
		ID:       "translation-certificate",
		Name:     "Certificate of Translation Accuracy",
		Category: "translation",
		Summary:  "Certification page attached to a completed translation",
		Fields: []models.CustomField{
			{ID: "sourceLanguage", Name: "Source Language", Placeholder: "Spanish", Required: true},
			{ID: "targetLanguage", Name: "Target Language", Placeholder: "English", Required: true},
			{ID: "documentTitle", Name: "Document Title", Placeholder: "Birth Certificate", Required: true},
			{ID: "translatorName", Name: "Translator Name", Placeholder: "L. Chen", Required: true},
		},
		Content: `CERTIFICATE OF TRANSLATION ACCURACY

I, {{translatorName}}, certify that I am fluent in {{sourceLanguage}} and
{{targetLanguage}}, and that the attached document titled
"{{documentTitle}}" is a complete and accurate translation from
{{sourceLanguage}} into {{targetLanguage}} to the best of my knowledge and
ability.

This translation was prepared for:

  {{firstName}} {{lastName}}
  {{address}}
  {{city}}, {{state}} {{zipCode}}

Signature: _______________________

Date: _______________________
`,
	},
	{
		ID:       "immigration-support-letter",
		Name:     "Immigration Support Letter",
		Category: "immigration",
		Summary:  "Letter of support for an immigration application",
		Fields: []models.CustomField{
			{ID: "applicantName", Name: "Applicant Name", Placeholder: "Full legal name", Required: true},
			{ID: "relationship", Name: "Relationship", Placeholder: "sister, employer...", Required: true},
			{ID: "yearsKnown", Name: "Years Known", Placeholder: "8", Required: true},
			{ID: "caseNumber", Name: "Case Number", Placeholder: "", Required: false},
		},
		Content: `To Whom It May Concern:

My name is {{firstName}} {{lastName}} and I reside at {{address}},
{{city}}, {{state}} {{zipCode}}. I am writing in support of
{{applicantName}}, who is my {{relationship}} and whom I have known for
{{yearsKnown}} years.

Reference case number: {{caseNumber}}

I can be reached at {{phone}} or {{email}} should you require any further
information.

Respectfully,

{{firstName}} {{lastName}}
`,
	},
	{
		ID:       "immigration-affidavit",
		Name:     "Affidavit of Support",
		Category: "immigration",
		Summary:  "Sworn statement of financial support",
		Fields: []models.CustomField{
			{ID: "applicantName", Name: "Applicant Name", Placeholder: "Full legal name", Required: true},
			{ID: "annualIncome", Name: "Annual Income", Placeholder: "$65,000", Required: true},
			{ID: "employerName", Name: "Employer", Placeholder: "", Required: false},
		},
		Content: `AFFIDAVIT OF SUPPORT

I, {{firstName}} {{lastName}}, residing at {{address}}, {{city}},
{{state}} {{zipCode}}, being duly sworn, depose and state:

1. I am employed by {{employerName}} with an annual income of
   {{annualIncome}}.

2. I am willing and able to receive, maintain and support
   {{applicantName}}.

3. I make this affidavit to assure the United States Government that the
   person named above will not become a public charge.

Signature: _______________________

Sworn to before me this ____ day of ____________, 20____.
`,
	},
	{
		ID:       "notary-acknowledgment",
		Name:     "Notary Acknowledgment",
		Category: "notary",
		Summary:  "Standard individual acknowledgment form",
		Fields: []models.CustomField{
			{ID: "notaryState", Name: "Notary State", Placeholder: "Illinois", Required: true},
			{ID: "notaryCounty", Name: "Notary County", Placeholder: "Sangamon", Required: true},
			{ID: "documentTitle", Name: "Document Title", Placeholder: "Power of Attorney", Required: true},
		},
		Content: `ACKNOWLEDGMENT

State of {{notaryState}}
County of {{notaryCounty}}

On this ____ day of ____________, 20____, before me personally appeared
{{firstName}} {{lastName}}, known to me (or satisfactorily proven) to be the
person whose name is subscribed to the within instrument titled
"{{documentTitle}}", and acknowledged that they executed the same for the
purposes therein contained.

In witness whereof I hereunto set my hand and official seal.

_______________________
Notary Public
`,
	},
	{
		ID:       "notary-sworn-statement",
		Name:     "Sworn Statement",
		Category: "notary",
		Summary:  "General-purpose sworn written statement",
		Fields: []models.CustomField{
			{ID: "statementBody", Name: "Statement", Placeholder: "Facts being sworn to...", Required: true},
			{ID: "notaryState", Name: "Notary State", Placeholder: "Illinois", Required: true},
		},
		Content: `SWORN STATEMENT

I, {{firstName}} {{lastName}}, of {{address}}, {{city}}, {{state}}
{{zipCode}}, being duly sworn, state the following under penalty of perjury
under the laws of the State of {{notaryState}}:

{{statementBody}}

Signature: _______________________

Subscribed and sworn to before me this ____ day of ____________, 20____.

_______________________
Notary Public
`,
	},
}
