package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/facturador-zatca/docs"
	"github.com/jhoicas/facturador-zatca/internal/application/billing"
	"github.com/jhoicas/facturador-zatca/internal/application/ports"
	"github.com/jhoicas/facturador-zatca/internal/application/usecase"
	domainzatca "github.com/jhoicas/facturador-zatca/internal/domain/zatca"
	infraai "github.com/jhoicas/facturador-zatca/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/facturador-zatca/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador-zatca/internal/infrastructure/qrimage"
	"github.com/jhoicas/facturador-zatca/internal/infrastructure/zatca/signer"
	httpRouter "github.com/jhoicas/facturador-zatca/internal/interfaces/http"
	"github.com/jhoicas/facturador-zatca/pkg/config"
	"github.com/jhoicas/facturador-zatca/pkg/logger"
	"github.com/jhoicas/facturador-zatca/pkg/zatca"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("vat_rate", cfg.ZATCA.VATRate.String()).
		Str("ai_provider", cfg.AI.Provider).
		Bool("auth", cfg.JWT.Secret != "").
		Msg("iniciando aplicación")

	// QR ZATCA: codec estándar + firmante de marcador (tags 6–9)
	codec := zatca.DefaultCodec()
	qrSigner, err := signer.NewPlaceholderSigner(codec.DecodeString)
	if err != nil {
		log.Fatal().Err(err).Msg("firmante ZATCA")
	}
	builder := domainzatca.NewBuilder(qrSigner, codec)

	billingCfg := billing.Config{
		VATRate:      cfg.ZATCA.VATRate,
		CurrencyCode: "SAR",
		CurrencyEN:   cfg.ZATCA.CurrencyEN,
		CurrencyAR:   cfg.ZATCA.CurrencyAR,
		QRSize:       cfg.ZATCA.QRSize,
	}
	previewUC := billing.NewPreviewUseCase(builder, billingCfg)
	pdfUC := billing.NewPDFUseCase(previewUC, infrapdf.NewMarotoPDFGenerator())
	qrUC := billing.NewQRUseCase(builder, codec, qrimage.NewPNGRenderer(), billingCfg)
	wordsUC := billing.NewWordsUseCase(billingCfg)

	var translator ports.Translator
	switch cfg.AI.Provider {
	case config.ProviderAnthropic:
		translator = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		translator = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	translateUC := usecase.NewTranslateUseCase(translator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // imágenes de cabecera/pie en data URL
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PreviewUC:   previewUC,
		PDFUC:       pdfUC,
		QRUC:        qrUC,
		WordsUC:     wordsUC,
		TranslateUC: translateUC,
		Log:         log,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
