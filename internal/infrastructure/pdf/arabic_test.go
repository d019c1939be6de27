package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeArabic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []rune
	}{
		{"inicial medial final aislada", "صمام", []rune{0xFEBB, 0xFEE4, 0xFE8E, 0xFEE1}},
		{"letra sola", "ب", []rune{0xFE8F}},
		{"lam alef aislado", "لا", []rune{0xFEFB}},
		{"lam alef final", "سلام", []rune{0xFEB3, 0xFEFC, 0xFEE1}},
		{"hamza no se une", "ماء", []rune{0xFEE3, 0xFE8E, 0xFE80}},
		{"palabras separadas", "من من", []rune{0xFEE3, 0xFEE6, ' ', 0xFEE3, 0xFEE6}},
		{"latín intacto", "INV-7", []rune("INV-7")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, string(tc.want), shapeArabic(tc.in))
		})
	}
}

func TestShapeArabic_Harakat(t *testing.T) {
	// El diacrítico no corta la unión: la ba sigue en forma inicial.
	got := []rune(shapeArabic("بَت"))
	assert.Equal(t, []rune{0xFE91, 0x064E, 0xFE96}, got)
}

func TestVisualOrder(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"INV-7":      "INV-7",
		"1,234.50":   "1,234.50",
		"رقم: INV-7": "INV-7 :مقر",
		"ريال فقط":   "طقف لاير",
		"Six ريال":   "لاير Six",
		"قيمة (15%)": "(15%) ةميق",
		"Acme Corp":  "Acme Corp",
	}
	for in, want := range cases {
		assert.Equal(t, want, visualOrder(in), in)
	}
}

func TestArabicVisual(t *testing.T) {
	assert.Equal(t, string([]rune{0xFEE1, 0xFE8E, 0xFEE4, 0xFEBB}), arabicVisual("صمام"))
}
