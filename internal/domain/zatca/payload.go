// Package zatca ensambla el payload del código QR ZATCA (fase 1 + extensiones 6 a 9).
//
// Orden fijo de registros TLV:
//
//	1 vendedor | 2 NIT/VAT vendedor | 3 fecha-hora | 4 total factura | 5 total IVA
//	6 hash XML | 7 firma | 8 llave pública | 9 firma del certificado
//
// Se concatenan sin separadores y el resultado se codifica en Base64.
package zatca

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-zatca/internal/domain"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

// TimestampLayout es el formato ISO-8601 que se escribe en el tag 3 (UTC, milisegundos).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// QRMeta son los datos primitivos de la factura que viajan en el QR.
type QRMeta struct {
	SellerName   string
	SellerVATNo  string
	Timestamp    string // ISO-8601; se normaliza a TimestampLayout
	InvoiceTotal string // total con IVA, 2 decimales
	VATTotal     string // total IVA, 2 decimales
}

// Builder construye payloads. No guarda estado entre llamadas; es seguro para uso concurrente.
type Builder struct {
	signer zatca.Signer
	codec  zatca.Codec
}

// NewBuilder inyecta el proveedor criptográfico y las conversiones de texto.
func NewBuilder(signer zatca.Signer, codec zatca.Codec) *Builder {
	return &Builder{signer: signer, codec: codec}
}

// Build genera el payload Base64 del QR.
func (b *Builder) Build(meta QRMeta) (string, error) {
	raw, err := b.BuildTLV(meta)
	if err != nil {
		return "", err
	}
	return b.codec.EncodeToString(raw), nil
}

// BuildTLV devuelve la concatenación TLV de los nueve registros, antes del Base64.
func (b *Builder) BuildTLV(meta QRMeta) ([]byte, error) {
	if b.signer == nil {
		return nil, fmt.Errorf("zatca: signer es obligatorio")
	}

	ts, err := NormalizeTimestamp(meta.Timestamp)
	if err != nil {
		return nil, err
	}
	invoiceTotal, err := normalizeAmount("invoice_total", meta.InvoiceTotal)
	if err != nil {
		return nil, err
	}
	vatTotal, err := normalizeAmount("vat_total", meta.VATTotal)
	if err != nil {
		return nil, err
	}

	texts := []struct {
		tag   byte
		value string
	}{
		{zatca.TagSellerName, meta.SellerName},
		{zatca.TagSellerVATNo, meta.SellerVATNo},
		{zatca.TagTimestamp, ts},
		{zatca.TagInvoiceTotal, invoiceTotal},
		{zatca.TagVATTotal, vatTotal},
	}

	var out []byte
	for _, f := range texts {
		rec, err := zatca.Encode(f.tag, b.codec.StringBytes(f.value))
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)
	}

	// Los tags 6 a 9 se calculan sobre los registros 1 a 5 ya serializados.
	content := out[:len(out):len(out)]
	hash, err := b.signer.Hash(content)
	if err != nil {
		return nil, fmt.Errorf("zatca: hash: %w", err)
	}
	signature, err := b.signer.Sign(content)
	if err != nil {
		return nil, fmt.Errorf("zatca: firma: %w", err)
	}

	crypto := []struct {
		tag   byte
		value []byte
	}{
		{zatca.TagXMLHash, hash},
		{zatca.TagSignature, signature},
		{zatca.TagPublicKey, b.signer.PublicKey()},
		{zatca.TagCertificateSignature, b.signer.CertificateSignature()},
	}
	for _, f := range crypto {
		rec, err := zatca.Encode(f.tag, f.value)
		if err != nil {
			return nil, err
		}
		out = append(out, rec...)
	}
	return out, nil
}

// Orden de prueba de formatos aceptados para el tag 3.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// NormalizeTimestamp convierte un ISO-8601 (instante, fecha-hora sin zona o solo fecha) a TimestampLayout en UTC.
// Sin zona horaria se asume UTC.
func NormalizeTimestamp(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", &zatca.InvalidTimestampError{Value: s}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC().Format(TimestampLayout), nil
		}
	}
	return "", &zatca.InvalidTimestampError{Value: s}
}

// normalizeAmount valida un total y lo reescribe con exactamente 2 decimales (sin separador de miles).
func normalizeAmount(field, s string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %s=%q", domain.ErrInvalidAmount, field, s)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidAmount, field)
	}
	return d.StringFixed(2), nil
}
