package docgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
)

// rewritablePart matches the XML parts substitution applies to: the
// document body plus every header and footer. Header and footer counts
// vary by template, so parts are matched by name pattern rather than a
// fixed list. Styles, media, and relationship parts pass through unchanged.
var rewritablePart = regexp.MustCompile(`^word/(document|header[0-9]*|footer[0-9]*)\.xml$`)

type packageEntry struct {
	name string
	data []byte
}

// Package is an in-memory copy of a DOCX template package. Each request
// opens its own copy, so concurrent requests may share a template ID.
type Package struct {
	entries []packageEntry
}

// OpenPackage reads a zipped template package into memory.
func OpenPackage(data []byte) (*Package, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("docgen.OpenPackage: %w", err)
	}

	pkg := &Package{entries: make([]packageEntry, 0, len(r.File))}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("docgen.OpenPackage: open part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("docgen.OpenPackage: read part %s: %w", f.Name, err)
		}
		pkg.entries = append(pkg.entries, packageEntry{name: f.Name, data: content})
	}
	return pkg, nil
}

// RewriteParts applies fn to the content of every rewritable XML part,
// replacing it in place. Other parts are untouched.
func (p *Package) RewriteParts(fn func(name, xml string) string) {
	for i := range p.entries {
		if rewritablePart.MatchString(p.entries[i].name) {
			p.entries[i].data = []byte(fn(p.entries[i].name, string(p.entries[i].data)))
		}
	}
}

// Part returns the content of the named part, or false if absent.
func (p *Package) Part(name string) ([]byte, bool) {
	for _, e := range p.entries {
		if e.name == name {
			return e.data, true
		}
	}
	return nil, false
}

// Bytes reserializes the package, preserving part order.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range p.entries {
		f, err := w.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("docgen: write part %s: %w", e.name, err)
		}
		if _, err := f.Write(e.data); err != nil {
			return nil, fmt.Errorf("docgen: write part %s: %w", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("docgen: close package: %w", err)
	}
	return buf.Bytes(), nil
}
