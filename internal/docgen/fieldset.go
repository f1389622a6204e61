// Package docgen implements the document generation pipeline: field-set
// resolution, placeholder substitution, and assembly of DOCX packages.
package docgen

import (
	"fmt"

	"docugen/internal/domain"
)

// invoiceMaxRows is the fixed row capacity of the invoice template; rows
// beyond the supplied item count are blanked.
const invoiceMaxRows = 25

// Invoice totals placeholder keys.
const (
	keyTotalGovt         = "TOTAL_GOVT"
	keyTotalProfessional = "TOTAL_PROFESSIONAL"
	keyGrandTotal        = "GRAND_TOTAL"
	keyGrandTotalWords   = "GRAND_TOTAL_WORDS"
)

// personField maps one index-suffixed placeholder pattern to the record
// field it renders. The pattern's %d is the 1-based member position.
type personField struct {
	pattern string
	value   func(p domain.Person) string
}

// documentSpec describes one document type: which repeated group it reads,
// the minimum cardinality, the template variant naming, and the
// placeholder family each group member contributes. The tables below are
// the single source of truth for placeholder naming and are meant to be
// amended together with the template author.
type documentSpec struct {
	group         domain.GroupName
	minEntries    int
	templateBase  string // variant base name; resolved as <base><bucket>.docx
	fixedTemplate string // set instead of templateBase for single-variant types
	personFields  []personField
}

var resolutionFields = []personField{
	{"PERSON_%d", func(p domain.Person) string { return p.Name.String() }},
	{"PERSON_%d_D", func(p domain.Person) string { return p.Designation.String() }},
	{"PERSON_%d_DIN", func(p domain.Person) string { return p.DIN.String() }},
}

var partnerFields = []personField{
	{"PERSON_%d", func(p domain.Person) string { return p.Name.String() }},
	{"FATHER_%d", func(p domain.Person) string { return p.Father.String() }},
	{"PAN_%d", func(p domain.Person) string { return p.PAN.String() }},
	{"ADDRESS_%d", func(p domain.Person) string { return p.Address.String() }},
	{"SHARE-Rs_%d", func(p domain.Person) string { return p.ShareRs.String() }},
	{"SHARE-%%_%d", func(p domain.Person) string { return p.SharePercent.String() }},
}

var llpFields = []personField{
	{"PERSON_%d", func(p domain.Person) string { return p.Name.String() }},
	{"FATHER_%d", func(p domain.Person) string { return p.Father.String() }},
	{"PERSON_%d_D", func(p domain.Person) string { return p.Designation.String() }},
	{"PERSON_%d_DIN", func(p domain.Person) string { return p.DIN.String() }},
	{"PAN_%d", func(p domain.Person) string { return p.PAN.String() }},
	{"ADDRESS_%d", func(p domain.Person) string { return p.Address.String() }},
	{"SHARE-Rs_%d", func(p domain.Person) string { return p.ShareRs.String() }},
	{"SHARE-%%_%d", func(p domain.Person) string { return p.SharePercent.String() }},
}

var minutesFields = []personField{
	{"PERSON_%d", func(p domain.Person) string { return p.Name.String() }},
	{"PERSON_%d_D", func(p domain.Person) string { return p.Designation.String() }},
	{"PERSON_%d_DIN", func(p domain.Person) string { return p.DIN.String() }},
	{"EQUITY_SHARES_%d", func(p domain.Person) string { return p.EquityShares.String() }},
	{"FOLIO_%d", func(p domain.Person) string { return p.FolioNo.String() }},
	{"CERTI_NO_%d", func(p domain.Person) string { return p.CertNo.String() }},
	{"FROM_%d", func(p domain.Person) string { return p.From.String() }},
	{"TO_%d", func(p domain.Person) string { return p.To.String() }},
}

var documentSpecs = map[domain.DocumentType]documentSpec{
	domain.DocTypeGSTResolution: {
		group:        domain.GroupDirectors,
		minEntries:   2,
		templateBase: "GST",
		personFields: resolutionFields,
	},
	domain.DocTypePartnershipDeed: {
		group:        domain.GroupPartners,
		minEntries:   2,
		templateBase: "deed",
		personFields: partnerFields,
	},
	domain.DocTypeLLPInitial: {
		group:        domain.GroupDirectors,
		minEntries:   2,
		templateBase: "I",
		personFields: llpFields,
	},
	domain.DocTypeGSTAuthorization: {
		group:        domain.GroupDirectors,
		minEntries:   2,
		templateBase: "GSTA",
		personFields: resolutionFields,
	},
	domain.DocTypeGSTMinutes: {
		group:        domain.GroupDirectors,
		minEntries:   2,
		templateBase: "GSTM",
		personFields: minutesFields,
	},
	domain.DocTypeInvoice: {
		group:         domain.GroupInvoiceItems,
		minEntries:    1,
		fixedTemplate: "CFPL.docx",
	},
}

// Resolution is the outcome of field-set resolution: which template package
// to load and which placeholders that variant requires.
type Resolution struct {
	DocType              domain.DocumentType
	TemplateID           string
	GroupSize            int
	RequiredPlaceholders []string
}

// Resolve validates the document type and repeated-group cardinality and
// picks the template variant. Counts of 2, 3, and 4 map to distinct
// variants; 5 or more collapse to the "5" variant.
func Resolve(req *domain.GenerateRequest) (*Resolution, error) {
	if req.DocType == "" {
		return nil, domain.ErrMissingDocumentType
	}
	docType, ok := domain.NormalizeDocumentType(req.DocType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, req.DocType)
	}
	spec := documentSpecs[docType]

	if docType == domain.DocTypeInvoice {
		if len(req.InvoiceItems) < spec.minEntries {
			return nil, fmt.Errorf("%w: %s requires at least %d invoice item",
				domain.ErrInsufficientEntries, docType, spec.minEntries)
		}
		return &Resolution{
			DocType:              docType,
			TemplateID:           spec.fixedTemplate,
			GroupSize:            len(req.InvoiceItems),
			RequiredPlaceholders: invoicePlaceholders(),
		}, nil
	}

	members := req.GroupMembers(spec.group)
	if len(members) < spec.minEntries {
		return nil, fmt.Errorf("%w: %s requires at least %d %s",
			domain.ErrInsufficientEntries, docType, spec.minEntries, spec.group)
	}

	res := &Resolution{
		DocType:    docType,
		TemplateID: fmt.Sprintf("%s%d.docx", spec.templateBase, variantBucket(len(members))),
		GroupSize:  len(members),
	}
	for i := 1; i <= len(members); i++ {
		for _, f := range spec.personFields {
			res.RequiredPlaceholders = append(res.RequiredPlaceholders, fmt.Sprintf(f.pattern, i))
		}
	}
	return res, nil
}

// variantBucket maps a group cardinality to its template variant suffix.
func variantBucket(n int) int {
	if n >= 5 {
		return 5
	}
	return n
}

func invoicePlaceholders() []string {
	keys := make([]string, 0, 3*invoiceMaxRows+4)
	for i := 1; i <= invoiceMaxRows; i++ {
		keys = append(keys,
			fmt.Sprintf("D%d", i),
			fmt.Sprintf("G%d", i),
			fmt.Sprintf("P%d", i),
		)
	}
	return append(keys, keyTotalGovt, keyTotalProfessional, keyGrandTotal, keyGrandTotalWords)
}
