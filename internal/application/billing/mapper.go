package billing

import (
	"github.com/google/uuid"

	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain/entity"
)

// toEntity copia la petición al modelo de dominio y asigna UUID a las líneas sin ID.
func toEntity(in dto.InvoiceRequest) entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.InvoiceItem{
			ID:                id,
			Title:             it.Title,
			Description:       it.Description,
			TitleArabic:       it.TitleArabic,
			DescriptionArabic: it.DescriptionArabic,
			Quantity:          it.Quantity,
			Rate:              it.Rate,
		})
	}
	return entity.Invoice{
		SellerName:        in.SellerName,
		SellerVATNo:       in.SellerVATNo,
		SellerAddress:     in.SellerAddress,
		InvoiceNo:         in.InvoiceNo,
		PONo:              in.PONo,
		InvoiceDate:       in.InvoiceDate,
		BuyerName:         in.BuyerName,
		BuyerVATNo:        in.BuyerVATNo,
		BuyerAddress:      in.BuyerAddress,
		Items:             items,
		HeaderImageURL:    in.HeaderImageURL,
		FooterImageURL:    in.FooterImageURL,
		WatermarkImageURL: in.WatermarkImageURL,
	}
}

func itemsToDTO(items []entity.InvoiceItem) []dto.InvoiceItemRequest {
	out := make([]dto.InvoiceItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InvoiceItemRequest{
			ID:                it.ID,
			Title:             it.Title,
			Description:       it.Description,
			TitleArabic:       it.TitleArabic,
			DescriptionArabic: it.DescriptionArabic,
			Quantity:          it.Quantity,
			Rate:              it.Rate,
		})
	}
	return out
}
