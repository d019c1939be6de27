package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// labels textos fijos de la plantilla por idioma.
type labels struct {
	rtl         bool
	start, end  align.Type
	title       string
	invoiceNo   string
	poNo        string
	date        string
	seller      string
	buyer       string
	vatNo       string
	description string
	quantity    string
	rate        string
	amount      string
	subtotal    string
	vat         string
	grandTotal  string
	inWords     string
	scan        string
	legend      string
}

var labelsEN = labels{
	start:       align.Left,
	end:         align.Right,
	title:       "TAX INVOICE",
	invoiceNo:   "Invoice No",
	poNo:        "PO No",
	date:        "Invoice Date",
	seller:      "SELLER",
	buyer:       "BUYER",
	vatNo:       "VAT No",
	description: "Description",
	quantity:    "Qty",
	rate:        "Rate",
	amount:      "Amount",
	subtotal:    "Subtotal",
	vat:         "VAT",
	grandTotal:  "Grand Total",
	inWords:     "Amount in words",
	scan:        "Scan the QR code with the ZATCA app to verify this invoice.",
	legend:      "Simplified Tax Invoice",
}

var labelsAR = labels{
	rtl:         true,
	start:       align.Right,
	end:         align.Left,
	title:       "فاتورة ضريبية",
	invoiceNo:   "رقم الفاتورة",
	poNo:        "رقم أمر الشراء",
	date:        "تاريخ الفاتورة",
	seller:      "البائع",
	buyer:       "المشتري",
	vatNo:       "الرقم الضريبي",
	description: "الوصف",
	quantity:    "الكمية",
	rate:        "السعر",
	amount:      "المبلغ",
	subtotal:    "المجموع",
	vat:         "ضريبة القيمة المضافة",
	grandTotal:  "الإجمالي",
	inWords:     "المبلغ كتابة",
	scan:        "امسح رمز الاستجابة السريعة للتحقق من الفاتورة.",
	legend:      "فاتورة ضريبية مبسطة",
}

func labelsFor(lang string) labels {
	if lang == entity.LangArabic {
		return labelsAR
	}
	return labelsEN
}

// text crea el componente de texto; en árabe aplica formas contextuales y orden visual.
func (l labels) text(s string, p props.Text) core.Component {
	if l.rtl {
		s = arabicVisual(s)
	}
	return text.New(s, p)
}
