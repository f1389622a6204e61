package domain

// DocumentType is the enumeration tag selecting which template family and
// field set apply to a generation request. Values are exact, case-sensitive.
type DocumentType string

const (
	DocTypeGSTResolution    DocumentType = "GST Resolution"
	DocTypePartnershipDeed  DocumentType = "Partnership Deed"
	DocTypeLLPInitial       DocumentType = "LLP Initial"
	DocTypeGSTAuthorization DocumentType = "GST Authorization"
	DocTypeGSTMinutes       DocumentType = "GST Minutes"
	DocTypeInvoice          DocumentType = "CFPL Invoice"
)

// NormalizeDocumentType maps an incoming tag to its canonical DocumentType.
// "CFPL" and "CFPL Invoice" are accepted as synonyms for the invoice type.
// The second return is false for unrecognized tags.
func NormalizeDocumentType(tag string) (DocumentType, bool) {
	switch DocumentType(tag) {
	case DocTypeGSTResolution, DocTypePartnershipDeed, DocTypeLLPInitial,
		DocTypeGSTAuthorization, DocTypeGSTMinutes, DocTypeInvoice:
		return DocumentType(tag), true
	case "CFPL":
		return DocTypeInvoice, true
	default:
		return "", false
	}
}

// GroupName identifies a repeated group within a generation payload.
type GroupName string

const (
	GroupDirectors    GroupName = "directors"
	GroupPartners     GroupName = "partners"
	GroupInvoiceItems GroupName = "invoiceItems"
)

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// DocxContentType is the OOXML word-processing media type generated
// artifacts are served with.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
