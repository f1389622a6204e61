package docgen

import (
	"fmt"
	"math"
	"strconv"

	"docugen/internal/domain"
	"docugen/internal/numword"
)

// ComputeInvoiceTotals sums the fee columns across all invoice items.
// Missing or non-numeric fee values contribute zero.
func ComputeInvoiceTotals(items []domain.InvoiceItem) domain.InvoiceTotals {
	var totals domain.InvoiceTotals
	for _, it := range items {
		totals.TotalGovt += it.GovtFee.Amount()
		totals.TotalProfessional += it.ProfessionalFee.Amount()
	}
	totals.GrandTotal = totals.TotalGovt + totals.TotalProfessional
	return totals
}

// BuildPlaceholderMap assembles the full substitution map for a resolved
// request: scalar payload fields by name, index-suffixed entries for each
// repeated-group member, and for invoices the 25 row slots plus the four
// totals entries. Every declared-required placeholder ends up present, so
// no required token survives substitution.
func BuildPlaceholderMap(req *domain.GenerateRequest, res *Resolution) PlaceholderMap {
	m := make(PlaceholderMap, len(req.Fields)+len(res.RequiredPlaceholders))

	for key, val := range req.Fields {
		m[key] = val.String()
	}

	spec := documentSpecs[res.DocType]
	for i, p := range req.GroupMembers(spec.group) {
		for _, f := range spec.personFields {
			m[fmt.Sprintf(f.pattern, i+1)] = f.value(p)
		}
	}

	if res.DocType == domain.DocTypeInvoice {
		addInvoiceEntries(m, req.InvoiceItems)
	}
	return m
}

// addInvoiceEntries fills all 25 row slots. A row with no corresponding
// item, or an empty description, is fully blanked; fee cells are only
// populated alongside a non-empty description so unused rows never show
// stray zeros.
func addInvoiceEntries(m PlaceholderMap, items []domain.InvoiceItem) {
	for i := 1; i <= invoiceMaxRows; i++ {
		var desc, govt, prof string
		if i <= len(items) {
			item := items[i-1]
			desc = item.Description.String()
			if desc != "" {
				govt = item.GovtFee.Format()
				prof = item.ProfessionalFee.Format()
			}
		}
		m[fmt.Sprintf("D%d", i)] = desc
		m[fmt.Sprintf("G%d", i)] = govt
		m[fmt.Sprintf("P%d", i)] = prof
	}

	totals := ComputeInvoiceTotals(items)
	m[keyTotalGovt] = formatAmount(totals.TotalGovt)
	m[keyTotalProfessional] = formatAmount(totals.TotalProfessional)
	m[keyGrandTotal] = formatAmount(totals.GrandTotal)
	m[keyGrandTotalWords] = numword.ToWords(int64(math.Round(totals.GrandTotal)))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
