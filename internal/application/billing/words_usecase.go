package billing

import (
	"github.com/jhoicas/facturador-zatca/internal/application/dto"
	"github.com/jhoicas/facturador-zatca/internal/domain/words"
)

// WordsUseCase expone el conversor de montos a palabras.
type WordsUseCase struct {
	cfg Config
}

// NewWordsUseCase construye el caso de uso.
func NewWordsUseCase(cfg Config) *WordsUseCase {
	return &WordsUseCase{cfg: cfg}
}

// Convert devuelve el monto en palabras y la leyenda con moneda.
func (uc *WordsUseCase) Convert(in dto.AmountWordsRequest) (*dto.AmountWordsResponse, error) {
	w, err := words.Convert(in.Amount)
	if err != nil {
		return nil, err
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.cfg.CurrencyEN
	}
	caption, err := words.Caption(in.Amount, currency)
	if err != nil {
		return nil, err
	}
	return &dto.AmountWordsResponse{Words: w, Caption: caption}, nil
}
