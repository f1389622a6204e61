package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UsageEntry records one successful document generation.
type UsageEntry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Company      string    `db:"company" json:"company"`
	DocumentType string    `db:"document_type" json:"document_type"`
	GeneratedAt  time.Time `db:"generated_at" json:"generated_at"`
}

// CompanyProfile is the structured record returned by the external company
// registry lookup.
type CompanyProfile struct {
	CIN                string `json:"cin"`
	Name               string `json:"name"`
	Status             string `json:"status"`
	RegisteredOffice   string `json:"registered_office"`
	IncorporationDate  string `json:"incorporation_date"`
	AuthorizedCapital  string `json:"authorized_capital"`
	PaidUpCapital      string `json:"paid_up_capital"`
	RegistrarOfCompany string `json:"roc"`
}

// Person is a single repeated-group record (a director or partner). Field
// presence varies by document type; absent fields substitute as empty text.
type Person struct {
	Name         Scalar `json:"name"`
	Designation  Scalar `json:"designation"`
	DIN          Scalar `json:"din"`
	Father       Scalar `json:"father"`
	PAN          Scalar `json:"pan"`
	Address      Scalar `json:"address"`
	ShareRs      Scalar `json:"shareRs"`
	SharePercent Scalar `json:"sharePercent"`
	EquityShares Scalar `json:"equityShares"`
	FolioNo      Scalar `json:"folioNo"`
	CertNo       Scalar `json:"certNo"`
	From         Scalar `json:"From"`
	To           Scalar `json:"To"`
}

// InvoiceItem is one invoice line: a description and two fee columns.
type InvoiceItem struct {
	Description     Scalar `json:"description"`
	GovtFee         Fee    `json:"govtFee"`
	ProfessionalFee Fee    `json:"professionalFee"`
}

// InvoiceTotals are derived per request from the invoice items, never
// supplied by the caller.
type InvoiceTotals struct {
	TotalGovt         float64
	TotalProfessional float64
	GrandTotal        float64
}

// GenerateRequest is the decoded generation payload: a document-type tag,
// arbitrary scalar fields, and zero or more named repeated groups.
type GenerateRequest struct {
	DocType      string
	Fields       map[string]Scalar
	Directors    []Person
	Partners     []Person
	InvoiceItems []InvoiceItem
}

// GroupMembers returns the person records of the named repeated group.
func (r *GenerateRequest) GroupMembers(g GroupName) []Person {
	switch g {
	case GroupDirectors:
		return r.Directors
	case GroupPartners:
		return r.Partners
	default:
		return nil
	}
}

// groupContainerKeys are payload keys holding repeated groups rather than
// scalar placeholders.
var groupContainerKeys = map[string]bool{
	"directors":    true,
	"partners":     true,
	"invoiceItems": true,
}

// UnmarshalJSON decodes the flat request body: "page" selects the document
// type, the three group container keys decode into typed slices, and every
// other key becomes a scalar placeholder field.
func (r *GenerateRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: request body must be a JSON object", ErrMalformedPayload)
	}

	*r = GenerateRequest{Fields: make(map[string]Scalar, len(raw))}

	if page, ok := raw["page"]; ok {
		var s Scalar
		if err := json.Unmarshal(page, &s); err == nil {
			r.DocType = string(s)
		}
	}

	if err := decodeGroup(raw, "directors", &r.Directors); err != nil {
		return err
	}
	if err := decodeGroup(raw, "partners", &r.Partners); err != nil {
		return err
	}
	if err := decodeGroup(raw, "invoiceItems", &r.InvoiceItems); err != nil {
		return err
	}

	for key, val := range raw {
		if key == "page" || groupContainerKeys[key] {
			continue
		}
		var s Scalar
		if err := json.Unmarshal(val, &s); err != nil {
			return fmt.Errorf("%w: field %q", ErrMalformedPayload, key)
		}
		r.Fields[key] = s
	}
	return nil
}

func decodeGroup[T any](raw map[string]json.RawMessage, key string, dst *[]T) error {
	val, ok := raw[key]
	if !ok || string(val) == "null" {
		return nil
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return fmt.Errorf("%w: %q must be an array", ErrMalformedPayload, key)
	}
	return nil
}
