package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DocumentType tipo de documento asociado a un imóvel.
type DocumentType string

const (
	DocumentContract    DocumentType = "Contrato"
	DocumentReceipt     DocumentType = "Recibo"
	DocumentMaintenance DocumentType = "Manutenção"
	DocumentOther       DocumentType = "Outro"
)

// ParseDocumentType normaliza el valor leído de la DB (NFC, sin espacios) a un DocumentType conocido.
// Valores desconocidos se tratan como DocumentOther.
func ParseDocumentType(raw string) DocumentType {
	s := norm.NFC.String(strings.TrimSpace(raw))
	switch DocumentType(s) {
	case DocumentContract, DocumentReceipt, DocumentMaintenance, DocumentOther:
		return DocumentType(s)
	}
	return DocumentOther
}

// Document documento almacenado de un imóvel. ExpirationDate es una fecha ISO (YYYY-MM-DD) o vacío.
type Document struct {
	ID             string
	PropertyID     string
	Type           DocumentType
	FileName       string
	TenantName     string
	ExpirationDate string
}
