package words_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-zatca/internal/domain/words"
)

func convert(t *testing.T, s string) string {
	t.Helper()
	out, err := words.Convert(decimal.RequireFromString(s))
	require.NoError(t, err, s)
	return out
}

func TestConvert_CasosDeReferencia(t *testing.T) {
	assert.Equal(t, "Zero", convert(t, "0"))
	assert.Equal(t, "One", convert(t, "1"))
	assert.Equal(t, "One Hundred", convert(t, "100"))
	assert.Equal(t, "One Thousand, Two Hundred and Thirty Four", convert(t, "1234"))
	assert.Equal(t, "One Million", convert(t, "1000000"))
	assert.Equal(t, "One Thousand, Two Hundred and Thirty Four and 56/100", convert(t, "1234.56"))
}

func TestConvert_Gramatica(t *testing.T) {
	cases := map[string]string{
		"0.00":       "Zero",
		"13":         "Thirteen",
		"20":         "Twenty",
		"21":         "Twenty One",
		"115":        "One Hundred and Fifteen",
		"690":        "Six Hundred and Ninety",
		"1001":       "One Thousand, One",
		"100000":     "One Hundred Thousand",
		"250300":     "Two Hundred and Fifty Thousand, Three Hundred",
		"1000001":    "One Million, One",
		"2000000.10": "Two Million and 10/100",
		"12.05":      "Twelve and 5/100",
		"0.5":        "and 50/100",
		"1.005":      "One and 1/100",
	}
	for in, want := range cases {
		assert.Equal(t, want, convert(t, in), in)
	}

	assert.Equal(t,
		"Nine Hundred and Ninety Nine Million, Nine Hundred and Ninety Nine Thousand, Nine Hundred and Ninety Nine and 99/100",
		convert(t, "999999999.99"))
}

func TestConvert_FueraDeRango(t *testing.T) {
	for _, s := range []string{"1000000000", "1000000000.01", "123456789012"} {
		_, err := words.Convert(decimal.RequireFromString(s))
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, words.ErrAmountOutOfRange), s)

		var oor *words.AmountOutOfRangeError
		assert.True(t, errors.As(err, &oor))
	}
}

func TestConvert_Negativo(t *testing.T) {
	_, err := words.Convert(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, words.ErrNegativeAmount)
}

func TestConvert_SinEspaciosSobrantes(t *testing.T) {
	for _, s := range []string{"0.01", "7", "40", "300", "5000", "7000000.70"} {
		out := convert(t, s)
		assert.NotEqual(t, ' ', out[0], s)
		assert.NotEqual(t, ' ', out[len(out)-1], s)
		assert.NotContains(t, out, "  ", s)
	}
}

func TestCaption(t *testing.T) {
	out, err := words.Caption(decimal.NewFromInt(690), "Riyals")
	require.NoError(t, err)
	assert.Equal(t, "Six Hundred and Ninety Riyals Only", out)

	out, err = words.Caption(decimal.NewFromInt(1), "")
	require.NoError(t, err)
	assert.Equal(t, "One Only", out)

	_, err = words.Caption(decimal.NewFromInt(words.MaxInteger), "Riyals")
	assert.ErrorIs(t, err, words.ErrAmountOutOfRange)
}
