package pdf

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// PNG 2×2 RGB.
const pixelDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAIAAAACCAIAAAD91JpzAAAAD0lEQVR4nGNgiHEFIQgFABCWAoVtx/9nAAAAAElFTkSuQmCC"

func testDocument(lang string) *appbilling.InvoiceDocument {
	return &appbilling.InvoiceDocument{
		Invoice: entity.Invoice{
			SellerName:  "Top Notepad",
			SellerVATNo: "30001112223343",
			InvoiceNo:   "INV-001",
			InvoiceDate: "2023-02-05",
			BuyerName:   "Acme",
			Items: []entity.InvoiceItem{
				{ID: "1", Title: "Float Ball Valve", Description: "Male threaded", TitleArabic: "صمام", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(300)},
				{ID: "2", Title: "Gate Valve", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(0)},
			},
			HeaderImageURL: pixelDataURL,
		},
		Totals: entity.Totals{
			Taxable: decimal.NewFromInt(600),
			VAT:     decimal.NewFromInt(90),
			Net:     decimal.NewFromInt(690),
		},
		VATRate:       decimal.RequireFromString("0.15"),
		QRPayload:     "AQtUb3AgTm90ZXBhZA==",
		AmountInWords: "Six Hundred and Ninety",
		CaptionEN:     "Six Hundred and Ninety Riyals Only",
		CaptionAR:     "Six Hundred and Ninety ريال فقط",
		Currency:      "SAR",
		Lang:          lang,
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	for _, lang := range []string{entity.LangEnglish, entity.LangArabic} {
		t.Run(lang, func(t *testing.T) {
			out, err := g.GenerateInvoicePDF(context.Background(), testDocument(lang))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
		})
	}
}

// utf16BE reproduce cómo el PDF escribe el texto con fuentes Unicode.
func utf16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func TestGenerateInvoicePDF_ArabicGlyphs(t *testing.T) {
	g := NewMarotoPDFGenerator()

	out, err := g.GenerateInvoicePDF(context.Background(), testDocument(entity.LangArabic))
	require.NoError(t, err)
	assert.Contains(t, string(out), "/Encoding /Identity-H", "la fuente árabe debe ir embebida")
	assert.True(t, bytes.Contains(out, utf16BE(arabicVisual("صمام"))), "falta el título traducido")
	assert.True(t, bytes.Contains(out, utf16BE(arabicVisual(labelsAR.title))), "falta el título de la factura")
	assert.True(t, bytes.Contains(out, utf16BE(arabicVisual(labelsAR.legend))), "falta la leyenda")

	en, err := g.GenerateInvoicePDF(context.Background(), testDocument(entity.LangEnglish))
	require.NoError(t, err)
	assert.NotContains(t, string(en), "/Encoding /Identity-H")
	assert.Contains(t, string(en), "Float Ball Valve")
}

func TestGenerateInvoicePDF_Watermark(t *testing.T) {
	g := NewMarotoPDFGenerator()
	doc := testDocument(entity.LangEnglish)
	doc.Invoice.HeaderImageURL = ""

	plain, err := g.GenerateInvoicePDF(context.Background(), doc)
	require.NoError(t, err)

	doc.Invoice.WatermarkImageURL = pixelDataURL
	marked, err := g.GenerateInvoicePDF(context.Background(), doc)
	require.NoError(t, err)

	images := func(b []byte) int { return bytes.Count(b, []byte("/Subtype /Image")) }
	assert.Equal(t, images(plain)+1, images(marked))

	doc.Invoice.WatermarkImageURL = "https://example.com/mark.png"
	remote, err := g.GenerateInvoicePDF(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, images(plain), images(remote))
}

func TestGenerateInvoicePDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"5.5":       "5.50",
		"1234":      "1,234.00",
		"1234567.5": "1,234,567.50",
		"999.999":   "1,000.00",
		"-1500.25":  "-1,500.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestImageRow(t *testing.T) {
	_, ok := imageRow(pixelDataURL, 10)
	assert.True(t, ok)

	for _, bad := range []string{"", "https://example.com/logo.png", "data:image/gif;base64,R0lG", "data:image/png,xyz", "data:image/png;base64,@@"} {
		_, ok := imageRow(bad, 10)
		assert.False(t, ok, bad)
	}
}

func TestLabelsFor(t *testing.T) {
	assert.Len(t, orderCols(nil, true), 0)
	lb := labelsFor("ar")
	assert.True(t, lb.rtl)
	assert.False(t, labelsFor("xx").rtl)
}
