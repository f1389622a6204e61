package docgen

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docugen/internal/domain"
)

func directors(n int) []domain.Person {
	out := make([]domain.Person, n)
	for i := range out {
		out[i] = domain.Person{
			Name:        domain.Scalar(fmt.Sprintf("Director %d", i+1)),
			Designation: "Director",
			DIN:         domain.Scalar(fmt.Sprintf("0000000%d", i+1)),
		}
	}
	return out
}

func TestResolve_VariantBucketing(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{2, "GST2.docx"},
		{3, "GST3.docx"},
		{4, "GST4.docx"},
		{5, "GST5.docx"},
		{7, "GST5.docx"},
		{12, "GST5.docx"},
	}
	for _, tc := range cases {
		req := &domain.GenerateRequest{
			DocType:   "GST Resolution",
			Directors: directors(tc.count),
		}
		res, err := Resolve(req)
		require.NoError(t, err, "count %d", tc.count)
		assert.Equal(t, tc.want, res.TemplateID)
		assert.Equal(t, tc.count, res.GroupSize)
	}
}

func TestResolve_TemplateBasesPerType(t *testing.T) {
	cases := []struct {
		docType string
		want    string
	}{
		{"GST Resolution", "GST3.docx"},
		{"LLP Initial", "I3.docx"},
		{"GST Authorization", "GSTA3.docx"},
		{"GST Minutes", "GSTM3.docx"},
	}
	for _, tc := range cases {
		req := &domain.GenerateRequest{DocType: tc.docType, Directors: directors(3)}
		res, err := Resolve(req)
		require.NoError(t, err, tc.docType)
		assert.Equal(t, tc.want, res.TemplateID)
	}
}

func TestResolve_PartnershipDeedUsesPartners(t *testing.T) {
	req := &domain.GenerateRequest{
		DocType: "Partnership Deed",
		Partners: []domain.Person{
			{Name: "A", Father: "FA", PAN: "AAAPA1111A"},
			{Name: "B", Father: "FB", PAN: "BBBPB2222B"},
		},
	}
	res, err := Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, "deed2.docx", res.TemplateID)
	assert.Contains(t, res.RequiredPlaceholders, "FATHER_2")
	assert.Contains(t, res.RequiredPlaceholders, "SHARE-Rs_1")
	assert.Contains(t, res.RequiredPlaceholders, "SHARE-%_2")
}

func TestResolve_InsufficientEntries(t *testing.T) {
	for _, count := range []int{0, 1} {
		req := &domain.GenerateRequest{
			DocType:   "GST Resolution",
			Directors: directors(count),
		}
		_, err := Resolve(req)
		require.Error(t, err, "count %d", count)
		assert.ErrorIs(t, err, domain.ErrInsufficientEntries)
		assert.Contains(t, err.Error(), "GST Resolution")
		assert.Contains(t, err.Error(), "at least 2")
	}
}

func TestResolve_UnknownDocumentType(t *testing.T) {
	req := &domain.GenerateRequest{DocType: "Gift Deed"}
	_, err := Resolve(req)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
	assert.Contains(t, err.Error(), "Gift Deed")
}

func TestResolve_MissingDocumentType(t *testing.T) {
	_, err := Resolve(&domain.GenerateRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingDocumentType)
}

func TestResolve_InvoiceSynonyms(t *testing.T) {
	for _, tag := range []string{"CFPL", "CFPL Invoice"} {
		req := &domain.GenerateRequest{
			DocType:      tag,
			InvoiceItems: []domain.InvoiceItem{{Description: "Incorporation"}},
		}
		res, err := Resolve(req)
		require.NoError(t, err, tag)
		assert.Equal(t, "CFPL.docx", res.TemplateID)
		assert.Equal(t, domain.DocTypeInvoice, res.DocType)
	}
}

func TestResolve_InvoiceRequiresOneItem(t *testing.T) {
	req := &domain.GenerateRequest{DocType: "CFPL"}
	_, err := Resolve(req)
	assert.ErrorIs(t, err, domain.ErrInsufficientEntries)
}

func TestResolve_MinutesPlaceholderFamily(t *testing.T) {
	req := &domain.GenerateRequest{DocType: "GST Minutes", Directors: directors(2)}
	res, err := Resolve(req)
	require.NoError(t, err)
	for _, key := range []string{
		"PERSON_1", "PERSON_1_D", "PERSON_1_DIN",
		"EQUITY_SHARES_1", "FOLIO_1", "CERTI_NO_1", "FROM_1", "TO_1",
		"EQUITY_SHARES_2", "FOLIO_2", "CERTI_NO_2", "FROM_2", "TO_2",
	} {
		assert.Contains(t, res.RequiredPlaceholders, key)
	}
}

func TestResolve_InvoiceRequiredPlaceholders(t *testing.T) {
	req := &domain.GenerateRequest{
		DocType:      "CFPL Invoice",
		InvoiceItems: []domain.InvoiceItem{{Description: "Fee"}},
	}
	res, err := Resolve(req)
	require.NoError(t, err)
	assert.Len(t, res.RequiredPlaceholders, 3*25+4)
	assert.Contains(t, res.RequiredPlaceholders, "D1")
	assert.Contains(t, res.RequiredPlaceholders, "G25")
	assert.Contains(t, res.RequiredPlaceholders, "P13")
	assert.Contains(t, res.RequiredPlaceholders, "GRAND_TOTAL_WORDS")
}

func TestGenerateRequest_MalformedGroup(t *testing.T) {
	var req domain.GenerateRequest
	err := json.Unmarshal([]byte(`{"page":"GST Resolution","directors":"not-an-array"}`), &req)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestGenerateRequest_DecodesScalarsAndGroups(t *testing.T) {
	body := `{
		"page": "Partnership Deed",
		"FIRM_NAME": "Sharma & Associates",
		"CAPITAL": 500000,
		"DATE": null,
		"partners": [
			{"name": "Asha Sharma", "father": "R Sharma", "sharePercent": 60},
			{"name": "Vikram Rao", "father": "K Rao", "sharePercent": "40"}
		]
	}`
	var req domain.GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Partnership Deed", req.DocType)
	assert.Equal(t, "Sharma & Associates", req.Fields["FIRM_NAME"].String())
	assert.Equal(t, "500000", req.Fields["CAPITAL"].String())
	assert.Equal(t, "", req.Fields["DATE"].String())
	require.Len(t, req.Partners, 2)
	assert.Equal(t, "60", req.Partners[0].SharePercent.String())
	assert.Equal(t, "40", req.Partners[1].SharePercent.String())
	assert.NotContains(t, req.Fields, "partners")
	assert.NotContains(t, req.Fields, "page")
}
