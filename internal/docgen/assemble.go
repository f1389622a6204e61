package docgen

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"docugen/internal/domain"
	"docugen/internal/port"
)

// Assembler composes resolution, substitution, and package reserialization
// into the generation pipeline. It holds no per-request state.
type Assembler struct {
	templates port.TemplateStore
}

// NewAssembler creates an Assembler backed by the given template store.
func NewAssembler(templates port.TemplateStore) *Assembler {
	return &Assembler{templates: templates}
}

// Assemble runs the full pipeline for one request and returns the generated
// DOCX bytes together with the resolution that produced them. Each stage
// either feeds the next or terminates with a typed failure.
func (a *Assembler) Assemble(ctx context.Context, req *domain.GenerateRequest) ([]byte, *Resolution, error) {
	res, err := Resolve(req)
	if err != nil {
		return nil, nil, err
	}

	raw, err := a.templates.Load(ctx, res.TemplateID)
	if err != nil {
		return nil, nil, fmt.Errorf("assembler: load %s: %w", res.TemplateID, err)
	}

	pkg, err := OpenPackage(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("assembler: template %s: %w", res.TemplateID, err)
	}

	m := BuildPlaceholderMap(req, res)
	pkg.RewriteParts(func(_, xml string) string {
		return Substitute(xml, m)
	})

	out, err := pkg.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("assembler: reserialize %s: %w", res.TemplateID, err)
	}
	return out, res, nil
}

// companyKeys are checked in order when deriving the party name for the
// usage log. TO is the invoice recipient fallback.
var companyKeys = []string{"company", "COMPANY", "companyName", "COMPANY_NAME", "Company", "TO"}

// CompanyName derives a company-like party name from the scalar payload
// fields, falling back to any field whose name mentions "company".
func CompanyName(req *domain.GenerateRequest) string {
	for _, key := range companyKeys {
		if v, ok := req.Fields[key]; ok {
			return v.String()
		}
	}

	keys := make([]string, 0, len(req.Fields))
	for k := range req.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), "company") {
			return req.Fields[k].String()
		}
	}
	return ""
}
