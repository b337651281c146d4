package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
	inframirror "github.com/jhoicas/ilms-api/internal/infrastructure/mirror"
	"github.com/jhoicas/ilms-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ilms-api/pkg/config"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE:  runServe,
	}
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Copia el catálogo local a la base espejo y termina",
		RunE:  runSync,
	}
	rootCmd := &cobra.Command{
		Use:           "ilms",
		Short:         "ILMS: inventario serializado, empaque y trazabilidad",
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd, syncCmd)
	return rootCmd
}

// runtime recursos compartidos por los subcomandos.
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	pool     *pgxpool.Pool
	embedded *postgres.Embedded
	sink     *inframirror.Sink
}

// bootstrap carga configuración, abre el almacén local (embebido si DB_EMBEDDED) y aplica el esquema.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Msg("iniciando aplicación")

	rt := &runtime{cfg: cfg, log: log}
	dsn := cfg.DB.ConnectionString()
	if cfg.DB.Embedded {
		rt.embedded, err = postgres.StartEmbedded(cfg.DB, log.Component("embedded-postgres"))
		if err != nil {
			return nil, err
		}
		dsn = rt.embedded.DSN()
	}

	rt.pool, err = postgres.NewPool(ctx, dsn)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, rt.pool); err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

// connectMirror abre la base espejo si está configurada. Sin configuración devuelve nil.
func (rt *runtime) connectMirror(ctx context.Context) error {
	if !rt.cfg.Mirror.Enabled() {
		return nil
	}
	sink, err := inframirror.Connect(ctx, rt.cfg.Mirror.DatabaseURL, rt.log)
	if err != nil {
		return err
	}
	rt.sink = sink
	return nil
}

// mirrorJob arma el job con el catálogo local como origen; sin espejo queda deshabilitado.
func (rt *runtime) mirrorJob() *appmirror.Job {
	var sink appmirror.Sink
	if rt.sink != nil {
		sink = rt.sink
	}
	return appmirror.NewJob(postgres.NewCatalogSnapshot(rt.pool), sink, rt.log)
}

func (rt *runtime) Close() {
	if rt.sink != nil {
		if err := rt.sink.Close(); err != nil {
			rt.log.Warn().Err(err).Msg("cerrar espejo")
		}
	}
	if rt.pool != nil {
		rt.pool.Close()
	}
	if rt.embedded != nil {
		if err := rt.embedded.Stop(); err != nil {
			rt.log.Error().Err(err).Msg("detener postgres embebido")
		}
	}
}
