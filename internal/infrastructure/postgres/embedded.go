package postgres

import (
	"fmt"
	"net"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"

	"github.com/jhoicas/ilms-api/pkg/config"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

const embeddedPassword = "postgres"

// Embedded proceso PostgreSQL local para instalaciones sin servidor de base de datos.
type Embedded struct {
	db  *embeddedpostgres.EmbeddedPostgres
	dsn string
}

// StartEmbedded levanta el PostgreSQL embebido con los datos en cfg.EmbeddedPath.
func StartEmbedded(cfg config.DBConfig, log *logger.Logger) (*Embedded, error) {
	if portInUse(cfg.EmbeddedPort) {
		return nil, fmt.Errorf("puerto %d en uso, ¿otra instancia embebida corriendo?", cfg.EmbeddedPort)
	}
	user := cfg.User
	if user == "" {
		user = "postgres"
	}

	pgCfg := embeddedpostgres.DefaultConfig().
		DataPath(cfg.EmbeddedPath).
		Port(uint32(cfg.EmbeddedPort)).
		Database(cfg.DBName).
		Username(user).
		Password(embeddedPassword).
		StartTimeout(45 * time.Second).
		Logger(log.Zerolog())

	db := embeddedpostgres.NewDatabase(pgCfg)
	if err := db.Start(); err != nil {
		return nil, fmt.Errorf("iniciar postgres embebido: %w", err)
	}
	log.Info().Int("port", cfg.EmbeddedPort).Str("path", cfg.EmbeddedPath).Msg("postgres embebido iniciado")

	local := config.DBConfig{
		Host:     "127.0.0.1",
		Port:     cfg.EmbeddedPort,
		User:     user,
		Password: embeddedPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
	}
	return &Embedded{db: db, dsn: local.DSN()}, nil
}

// DSN connection string del proceso embebido.
func (e *Embedded) DSN() string { return e.dsn }

// Stop detiene el proceso.
func (e *Embedded) Stop() error {
	return e.db.Stop()
}

func portInUse(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
