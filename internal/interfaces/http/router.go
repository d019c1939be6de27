package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/application/usecase"
	"github.com/jhoicas/facturador-zatca/pkg/jwt"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PreviewUC   *billing.PreviewUseCase
	PDFUC       *billing.PDFUseCase
	QRUC        *billing.QRUseCase
	WordsUC     *billing.WordsUseCase
	TranslateUC *usecase.TranslateUseCase
	Log         *logger.Logger
	JWTSecret   string // vacío = API abierta (desarrollo)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con JWT_SECRET todas las rutas /api requieren Bearer Token; el lote además exige rol.
	batchGuard := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		batchGuard = RequireRole(jwt.RoleAdmin, jwt.RoleIntegration)
	}

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.PreviewUC, deps.PDFUC, deps.TranslateUC, deps.Log)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/pdf", invoiceHandler.PDF)
	invoices.Post("/translate", invoiceHandler.Translate)

	zatcaGroup := api.Group("/zatca")
	zatcaHandler := NewZATCAHandler(deps.QRUC, deps.Log)
	zatcaGroup.Post("/qr", zatcaHandler.QR)
	zatcaGroup.Post("/qr/batch", batchGuard, zatcaHandler.Batch)
	zatcaGroup.Post("/qr/decode", zatcaHandler.Decode)
	zatcaGroup.Post("/qr.png", zatcaHandler.PNG)

	amounts := api.Group("/amounts")
	wordsHandler := NewWordsHandler(deps.WordsUC, deps.Log)
	amounts.Post("/words", wordsHandler.Convert)
}
