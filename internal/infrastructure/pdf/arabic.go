package pdf

import (
	"strings"
	"unicode"
)

// El motor PDF escribe las runas tal cual, de izquierda a derecha y sin
// shaping. Para que el árabe se lea bien hay que entregarle las formas de
// presentación (U+FE70–U+FEFF) ya en orden visual.

// arabicForms: aislada, final, inicial, medial. Sin inicial/medial la letra
// solo se une con la anterior; sin final no se une con ninguna.
var arabicForms = map[rune][4]rune{
	'ء': {0xFE80, 0, 0, 0},
	'آ': {0xFE81, 0xFE82, 0, 0},
	'أ': {0xFE83, 0xFE84, 0, 0},
	'ؤ': {0xFE85, 0xFE86, 0, 0},
	'إ': {0xFE87, 0xFE88, 0, 0},
	'ئ': {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	'ا': {0xFE8D, 0xFE8E, 0, 0},
	'ب': {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	'ة': {0xFE93, 0xFE94, 0, 0},
	'ت': {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	'ث': {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	'ج': {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	'ح': {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	'خ': {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	'د': {0xFEA9, 0xFEAA, 0, 0},
	'ذ': {0xFEAB, 0xFEAC, 0, 0},
	'ر': {0xFEAD, 0xFEAE, 0, 0},
	'ز': {0xFEAF, 0xFEB0, 0, 0},
	'س': {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	'ش': {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	'ص': {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	'ض': {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	'ط': {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	'ظ': {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	'ع': {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	'غ': {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	'ف': {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	'ق': {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	'ك': {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	'ل': {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	'م': {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	'ن': {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	'ه': {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	'و': {0xFEED, 0xFEEE, 0, 0},
	'ى': {0xFEEF, 0xFEF0, 0, 0},
	'ي': {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},
}

// lamAlef: ligadura lam + alef (aislada, final) según la variante de alef.
var lamAlef = map[rune][2]rune{
	'آ': {0xFEF5, 0xFEF6},
	'أ': {0xFEF7, 0xFEF8},
	'إ': {0xFEF9, 0xFEFA},
	'ا': {0xFEFB, 0xFEFC},
}

const (
	tatweel = 'ـ'
	lam     = 'ل'
)

// Diacríticos: no cortan la unión entre letras.
func isHaraka(r rune) bool { return r >= 0x064B && r <= 0x0652 }

func joinsBoth(r rune) bool {
	if r == tatweel {
		return true
	}
	f, ok := arabicForms[r]
	return ok && f[2] != 0
}

func joinable(r rune) bool {
	if r == tatweel {
		return true
	}
	f, ok := arabicForms[r]
	return ok && f[1] != 0
}

// shapeArabic sustituye cada letra por su forma contextual y aplica la
// ligadura lam-alef. El orden lógico no cambia.
func shapeArabic(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in))

	prevLetter := func(i int) (rune, bool) {
		for j := i - 1; j >= 0; j-- {
			if !isHaraka(in[j]) {
				return in[j], true
			}
		}
		return 0, false
	}
	nextLetter := func(i int) (rune, int) {
		for j := i + 1; j < len(in); j++ {
			if !isHaraka(in[j]) {
				return in[j], j
			}
		}
		return 0, -1
	}

	for i := 0; i < len(in); i++ {
		r := in[i]
		forms, ok := arabicForms[r]
		if !ok {
			out = append(out, r)
			continue
		}
		p, hasPrev := prevLetter(i)
		joinPrev := hasPrev && joinsBoth(p) && forms[1] != 0
		n, ni := nextLetter(i)

		if r == lam && ni == i+1 {
			if lig, ok := lamAlef[n]; ok {
				if joinPrev {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				i = ni
				continue
			}
		}

		joinNext := ni >= 0 && forms[2] != 0 && joinable(n)
		switch {
		case joinPrev && joinNext:
			out = append(out, forms[3])
		case joinPrev:
			out = append(out, forms[1])
		case joinNext:
			out = append(out, forms[2])
		default:
			out = append(out, forms[0])
		}
	}
	return string(out)
}

type direction int8

const (
	dirNeutral direction = iota
	dirLTR
	dirRTL
)

func isArabicScript(r rune) bool {
	switch {
	case r >= 0x0660 && r <= 0x0669, r >= 0x06F0 && r <= 0x06F9:
		return false
	case r >= 0x0600 && r <= 0x06FF, r >= 0xFB50 && r <= 0xFDFF, r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}

func strongDirection(r rune) direction {
	switch {
	case isArabicScript(r):
		return dirRTL
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return dirLTR
	}
	return dirNeutral
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
}

// visualOrder reordena una línea de base derecha-a-izquierda para imprimirla
// de izquierda a derecha. Los tramos latinos y numéricos conservan su orden
// interno; los neutros entre dos tramos latinos se quedan con ellos.
func visualOrder(s string) string {
	in := []rune(s)
	if len(in) == 0 {
		return s
	}
	dirs := make([]direction, len(in))
	for i, r := range in {
		dirs[i] = strongDirection(r)
		// "15%" se mantiene unido al número.
		if r == '%' && i > 0 && unicode.IsDigit(in[i-1]) {
			dirs[i] = dirLTR
		}
	}
	for i := 0; i < len(in); {
		if dirs[i] != dirNeutral {
			i++
			continue
		}
		j := i
		for j < len(in) && dirs[j] == dirNeutral {
			j++
		}
		d := dirRTL
		if i > 0 && j < len(in) && dirs[i-1] == dirLTR && dirs[j] == dirLTR {
			d = dirLTR
		}
		for k := i; k < j; k++ {
			dirs[k] = d
		}
		i = j
	}

	var b strings.Builder
	b.Grow(len(s))
	for end := len(in); end > 0; {
		start := end - 1
		for start > 0 && dirs[start-1] == dirs[end-1] {
			start--
		}
		if dirs[start] == dirLTR {
			b.WriteString(string(in[start:end]))
		} else {
			for k := end - 1; k >= start; k-- {
				r := in[k]
				if m, ok := mirrored[r]; ok {
					r = m
				}
				b.WriteRune(r)
			}
		}
		end = start
	}
	return b.String()
}

// arabicVisual prepara un texto árabe para el motor PDF.
func arabicVisual(s string) string {
	return visualOrder(shapeArabic(s))
}
