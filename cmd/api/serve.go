package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/ilms-api/internal/application/inventory"
	"github.com/jhoicas/ilms-api/internal/application/trace"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
	"github.com/jhoicas/ilms-api/internal/infrastructure/labelxml"
	infrapdf "github.com/jhoicas/ilms-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ilms-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ilms-api/internal/infrastructure/qr"
	httpRouter "github.com/jhoicas/ilms-api/internal/interfaces/http"
)

const swaggerFile = "./docs/swagger.json"

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()
	log := rt.log
	cfg := rt.cfg

	if err := rt.connectMirror(ctx); err != nil {
		// el espejo es opcional: la API local sigue funcionando sin él
		log.Error().Err(err).Msg("base espejo no disponible, copia deshabilitada")
	}

	pool := rt.pool
	materialRepo := postgres.NewMaterialRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	containerRepo := postgres.NewContainerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	traceRepo := postgres.NewTraceEventRepository(pool)
	labelRepo := postgres.NewLabelTemplateRepository(pool)
	packagingRepo := postgres.NewPackagingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(txRunner, materialRepo, inventoryRepo, containerRepo, log)
	traceUC := trace.NewUseCase(inventoryRepo, containerRepo, traceRepo, qr.NewEncoder(), cfg.Trace.BaseURL)
	labelUC := usecase.NewLabelTemplateUseCase(
		labelRepo, materialRepo, inventoryRepo,
		infrapdf.NewMarotoLabelGenerator(), labelxml.NewExporter(), traceUC.TraceURL,
	)
	mirrorJob := rt.mirrorJob()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "ILMS API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Log:         log,
		InventoryUC: inventoryUC,
		TraceUC:     traceUC,
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		MaterialUC:  usecase.NewMaterialUseCase(materialRepo),
		PackagingUC: usecase.NewPackagingUseCase(packagingRepo),
		LabelUC:     labelUC,
		Mirror:      mirrorJob,
	})

	if rt.sink != nil && cfg.Mirror.Interval > 0 {
		log.Info().Dur("interval", cfg.Mirror.Interval).Msg("copia periódica al espejo activada")
		go mirrorJob.Every(ctx, cfg.Mirror.Interval)
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	shutdown, err := awaitStop(listenErr, quit)
	if !shutdown {
		cancel()
		if err != nil {
			log.Error().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP no pudo escuchar")
		}
		return err
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// awaitStop bloquea hasta que llega una señal (shutdown=true) o el listener termina.
// Un fallo al escuchar se devuelve envuelto para que el proceso salga con error.
func awaitStop(listenErr <-chan error, quit <-chan os.Signal) (shutdown bool, err error) {
	select {
	case err := <-listenErr:
		if err != nil {
			return false, fmt.Errorf("servidor HTTP: %w", err)
		}
		return false, nil
	case <-quit:
		return true, nil
	}
}
