package zatca

// Tags del QR ZATCA. El orden y la numeración son contrato externo con los lectores.
const (
	TagSellerName           byte = 1
	TagSellerVATNo          byte = 2
	TagTimestamp            byte = 3
	TagInvoiceTotal         byte = 4
	TagVATTotal             byte = 5
	TagXMLHash              byte = 6
	TagSignature            byte = 7
	TagPublicKey            byte = 8
	TagCertificateSignature byte = 9
)

// FieldCount es el número de registros de un QR completo.
const FieldCount = 9

// TagName devuelve el nombre legible de un tag (para inspección y logs).
func TagName(tag byte) string {
	switch tag {
	case TagSellerName:
		return "seller_name"
	case TagSellerVATNo:
		return "seller_vat_no"
	case TagTimestamp:
		return "timestamp"
	case TagInvoiceTotal:
		return "invoice_total"
	case TagVATTotal:
		return "vat_total"
	case TagXMLHash:
		return "xml_hash"
	case TagSignature:
		return "signature"
	case TagPublicKey:
		return "public_key"
	case TagCertificateSignature:
		return "certificate_signature"
	default:
		return "unknown"
	}
}

// IsTextTag indica si el tag transporta texto UTF-8 (1 a 5) y no bytes crudos.
func IsTextTag(tag byte) bool {
	return tag >= TagSellerName && tag <= TagVATTotal
}
