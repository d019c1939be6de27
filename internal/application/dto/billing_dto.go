package dto

import "github.com/shopspring/decimal"

// InvoiceRequest body para POST /api/invoices/preview, /pdf.
type InvoiceRequest struct {
	SellerName        string               `json:"seller_name"`
	SellerVATNo       string               `json:"seller_vat_no"`
	SellerAddress     string               `json:"seller_address,omitempty"`
	InvoiceNo         string               `json:"invoice_no"`
	PONo              string               `json:"po_no,omitempty"`
	InvoiceDate       string               `json:"invoice_date"` // YYYY-MM-DD o ISO-8601 completo
	BuyerName         string               `json:"buyer_name"`
	BuyerVATNo        string               `json:"buyer_vat_no,omitempty"`
	BuyerAddress      string               `json:"buyer_address,omitempty"`
	Items             []InvoiceItemRequest `json:"items"`
	HeaderImageURL    string               `json:"header_image_url,omitempty"`
	FooterImageURL    string               `json:"footer_image_url,omitempty"`
	WatermarkImageURL string               `json:"watermark_image_url,omitempty"`
}

// InvoiceItemRequest línea de factura. Si ID va vacío se genera un UUID.
type InvoiceItemRequest struct {
	ID                string          `json:"id,omitempty"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	TitleArabic       string          `json:"title_arabic,omitempty"`
	DescriptionArabic string          `json:"description_arabic,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Rate              decimal.Decimal `json:"rate"`
}

// TotalsResponse totales calculados.
type TotalsResponse struct {
	Taxable decimal.Decimal `json:"total_taxable"`
	VAT     decimal.Decimal `json:"total_tax"`
	Net     decimal.Decimal `json:"total_net"`
}

// InvoicePreviewResponse todo lo que necesita la plantilla para pintar la factura.
type InvoicePreviewResponse struct {
	InvoiceNo     string               `json:"invoice_no"`
	Items         []InvoiceItemRequest `json:"items"`
	Totals        TotalsResponse       `json:"totals"`
	QRPayload     string               `json:"qr_payload"`
	AmountInWords string               `json:"amount_in_words"`
	CaptionEN     string               `json:"caption_en"` // "<palabras> Riyals Only"
	CaptionAR     string               `json:"caption_ar"` // "<palabras> ريال فقط"
}

// QRRequest campos primitivos del QR ZATCA.
type QRRequest struct {
	SellerName   string `json:"seller_name"`
	SellerVATNo  string `json:"seller_vat_no"`
	Timestamp    string `json:"timestamp"`
	InvoiceTotal string `json:"invoice_total"`
	VATTotal     string `json:"vat_total"`
}

// QRResponse payload Base64 listo para el generador de imagen QR.
type QRResponse struct {
	Payload string `json:"payload"`
}

// QRBatchRequest body para POST /api/zatca/qr/batch.
type QRBatchRequest struct {
	Invoices []QRRequest `json:"invoices"`
}

// QRBatchResponse payloads en el mismo orden de la petición.
type QRBatchResponse struct {
	Payloads []string `json:"payloads"`
}

// QRDecodeRequest body para POST /api/zatca/qr/decode.
type QRDecodeRequest struct {
	Payload string `json:"payload"`
}

// QRFieldResponse registro TLV decodificado. Los tags 1 a 5 van en Value; los binarios en ValueBase64.
type QRFieldResponse struct {
	Tag         int    `json:"tag"`
	Name        string `json:"name"`
	Length      int    `json:"length"`
	Value       string `json:"value,omitempty"`
	ValueBase64 string `json:"value_base64,omitempty"`
}

// QRDecodeResponse registros en el orden del payload.
type QRDecodeResponse struct {
	Fields []QRFieldResponse `json:"fields"`
}

// AmountWordsRequest body para POST /api/amounts/words.
type AmountWordsRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"` // por defecto la moneda configurada
}

// AmountWordsResponse texto del monto.
type AmountWordsResponse struct {
	Words   string `json:"words"`
	Caption string `json:"caption"`
}

// TranslateItemsRequest body para POST /api/invoices/translate.
type TranslateItemsRequest struct {
	Items []InvoiceItemRequest `json:"items"`
}

// TranslateItemsResponse ítems con los campos en árabe. Fallback=true si se copió el texto en inglés.
type TranslateItemsResponse struct {
	Items    []InvoiceItemRequest `json:"items"`
	Fallback bool                 `json:"fallback"`
}

// ItemTranslation resultado del traductor para una línea.
type ItemTranslation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
