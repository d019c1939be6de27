package zatca_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-zatca/internal/domain"
	domainzatca "github.com/jhoicas/facturador-zatca/internal/domain/zatca"
	"github.com/jhoicas/facturador-zatca/internal/infrastructure/zatca/signer"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia: TLV de los tags 1..9 con el material fijo del signer,
// calculado por fuera del código (Base64 estándar con padding).
// ──────────────────────────────────────────────────────────────────────────────

const testPayloadExpected = "AQtUb3AgTm90ZXBhZAIOMzAwMDExMTIyMjMzNDMDGDIwMjMtMDItMDVUMDA6MDA6MDAuMDAwWgQGNjkwLjAwBQU5MC4wMAZANWU3OThkYTk4YTMzN2Y5ZDU3MTQwM2FkYWFhY2I3MDU3N2ZjMGU2YjM4MDI2YmMwN2Q1Y2E4ODc4ZDZjMjU2NQdGMEQCIE3QRrvp4P8C5eTRbQUK1pS2zBv4NaRaODf2V5c+n4yDAiAhAMuB+I2kYSPVzX2w56tnl5jK1ySFyCD+cjO8Q+c2PAhbMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEU6G0iBS4D48AMs7nGY2a6g3vQdFw+3Q+s9lPzVPxRODPLv7flz5rDs2Pwb2aeVIzPMNL2dJNv/MflR+7dB41eQlGMEQCIAYga533L53xhED3T5tS4aUn7c5moIM3tT5i+5T0NKT/AiA11jYjB2qK2RoJGzU6bvrslk/3QcZtV2p1w+arBv4zEA=="

func newTestBuilder(t *testing.T) *domainzatca.Builder {
	t.Helper()
	codec := zatca.DefaultCodec()
	s, err := signer.NewPlaceholderSigner(codec.DecodeString)
	require.NoError(t, err)
	return domainzatca.NewBuilder(s, codec)
}

func buildTestMeta() domainzatca.QRMeta {
	return domainzatca.QRMeta{
		SellerName:   "Top Notepad",
		SellerVATNo:  "30001112223343",
		Timestamp:    "2023-02-05",
		InvoiceTotal: "690.00",
		VATTotal:     "90.00",
	}
}

func decodePayload(t *testing.T, payload string) []zatca.Field {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	fields, err := zatca.Decode(raw)
	require.NoError(t, err)
	return fields
}

func TestBuild_VectorExacto(t *testing.T) {
	payload, err := newTestBuilder(t).Build(buildTestMeta())
	require.NoError(t, err)
	assert.Equal(t, testPayloadExpected, payload)
}

func TestBuild_RoundTripCamposDeTexto(t *testing.T) {
	meta := domainzatca.QRMeta{
		SellerName:   "شركة النوتة العليا",
		SellerVATNo:  "310122393500003",
		Timestamp:    "2024-03-10T14:25:36+03:00",
		InvoiceTotal: "1150.5",
		VATTotal:     "150.07",
	}
	payload, err := newTestBuilder(t).Build(meta)
	require.NoError(t, err)

	fields := decodePayload(t, payload)
	require.Len(t, fields, zatca.FieldCount)
	assert.Equal(t, meta.SellerName, string(fields[0].Value))
	assert.Equal(t, meta.SellerVATNo, string(fields[1].Value))
	assert.Equal(t, "2024-03-10T11:25:36.000Z", string(fields[2].Value), "el timestamp se normaliza a UTC")
	assert.Equal(t, "1150.50", string(fields[3].Value), "los totales llevan exactamente 2 decimales")
	assert.Equal(t, "150.07", string(fields[4].Value))
}

func TestBuild_TagsAscendentesSinHuecos(t *testing.T) {
	payload, err := newTestBuilder(t).Build(buildTestMeta())
	require.NoError(t, err)

	fields := decodePayload(t, payload)
	require.Len(t, fields, 9)
	for i, f := range fields {
		assert.Equal(t, byte(i+1), f.Tag)
	}
}

func TestBuild_Determinista(t *testing.T) {
	b := newTestBuilder(t)
	p1, err1 := b.Build(buildTestMeta())
	p2, err2 := b.Build(buildTestMeta())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2)
}

func TestBuild_EntradasDistintasNoColisionan(t *testing.T) {
	b := newTestBuilder(t)
	base, _ := b.Build(buildTestMeta())

	variants := []func(m *domainzatca.QRMeta){
		func(m *domainzatca.QRMeta) { m.SellerName = "Top Notepad LLC" },
		func(m *domainzatca.QRMeta) { m.Timestamp = "2023-02-06" },
		func(m *domainzatca.QRMeta) { m.InvoiceTotal = "690.01" },
		func(m *domainzatca.QRMeta) { m.VATTotal = "91.00" },
	}
	seen := map[string]bool{base: true}
	for _, mutate := range variants {
		m := buildTestMeta()
		mutate(&m)
		p, err := b.Build(m)
		require.NoError(t, err)
		assert.False(t, seen[p], "payload repetido para %+v", m)
		seen[p] = true
	}
}

func TestBuild_ConcurrenteMismoResultado(t *testing.T) {
	b := newTestBuilder(t)
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = b.Build(buildTestMeta())
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, testPayloadExpected, r)
	}
}

// ── Errores ───────────────────────────────────────────────────────────────────

func TestBuild_VendedorDemasiadoLargo(t *testing.T) {
	m := buildTestMeta()
	m.SellerName = strings.Repeat("a", 256)
	_, err := newTestBuilder(t).Build(m)

	var tooLarge *zatca.FieldTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, zatca.TagSellerName, tooLarge.Tag)
}

func TestBuild_TimestampInvalido(t *testing.T) {
	for _, ts := range []string{"", "ayer", "2023-13-01", "05/02/2023"} {
		m := buildTestMeta()
		m.Timestamp = ts
		_, err := newTestBuilder(t).Build(m)
		assert.ErrorIs(t, err, zatca.ErrInvalidTimestamp, ts)
	}
}

func TestBuild_MontoInvalido(t *testing.T) {
	m := buildTestMeta()
	m.InvoiceTotal = "mil"
	_, err := newTestBuilder(t).Build(m)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	m = buildTestMeta()
	m.VATTotal = "-1.00"
	_, err = newTestBuilder(t).Build(m)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// fakeSigner devuelve material configurable para probar la inyección.
type fakeSigner struct {
	hash    []byte
	content []byte
}

func (f *fakeSigner) Hash(content []byte) ([]byte, error) {
	f.content = append([]byte(nil), content...)
	return f.hash, nil
}
func (f *fakeSigner) Sign([]byte) ([]byte, error)  { return []byte("sig"), nil }
func (f *fakeSigner) PublicKey() []byte            { return []byte("pk") }
func (f *fakeSigner) CertificateSignature() []byte { return []byte("cs") }

func TestBuild_SignerInyectado(t *testing.T) {
	fs := &fakeSigner{hash: []byte("h")}
	b := domainzatca.NewBuilder(fs, zatca.DefaultCodec())

	raw, err := b.BuildTLV(buildTestMeta())
	require.NoError(t, err)

	fields, err := zatca.Decode(raw)
	require.NoError(t, err)
	require.Len(t, fields, 9)
	assert.Equal(t, []byte("h"), fields[5].Value)
	assert.Equal(t, []byte("sig"), fields[6].Value)
	assert.Equal(t, []byte("pk"), fields[7].Value)
	assert.Equal(t, []byte("cs"), fields[8].Value)

	// El signer recibe exactamente los registros 1 a 5.
	assert.Equal(t, raw[:len(fs.content)], fs.content)
	textFields, err := zatca.Decode(fs.content)
	require.NoError(t, err)
	assert.Len(t, textFields, 5)
}

func TestBuild_SignerConMaterialDemasiadoLargo(t *testing.T) {
	fs := &fakeSigner{hash: make([]byte, 300)}
	_, err := domainzatca.NewBuilder(fs, zatca.DefaultCodec()).Build(buildTestMeta())
	assert.ErrorIs(t, err, zatca.ErrFieldTooLarge)
}

func TestBuild_CodecInyectado(t *testing.T) {
	codec := zatca.DefaultCodec()
	codec.EncodeToString = base64.RawURLEncoding.EncodeToString
	b := domainzatca.NewBuilder(&fakeSigner{hash: []byte("h")}, codec)

	payload, err := b.Build(buildTestMeta())
	require.NoError(t, err)
	assert.NotContains(t, payload, "=")
}

func TestNormalizeTimestamp(t *testing.T) {
	cases := map[string]string{
		"2023-02-05":                     "2023-02-05T00:00:00.000Z",
		"2023-02-05T10:11:12":            "2023-02-05T10:11:12.000Z",
		"2023-02-05T10:11:12Z":           "2023-02-05T10:11:12.000Z",
		"2023-02-05T10:11:12.345Z":       "2023-02-05T10:11:12.345Z",
		"2023-02-05T10:11:12.3456789Z":   "2023-02-05T10:11:12.345Z",
		"2023-02-05T01:00:00+03:00":      "2023-02-04T22:00:00.000Z",
		"  2023-02-05T10:11:12.5-05:00 ": "2023-02-05T15:11:12.500Z",
	}
	for in, want := range cases {
		got, err := domainzatca.NormalizeTimestamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
