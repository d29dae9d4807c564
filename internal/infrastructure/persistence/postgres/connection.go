package postgres

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// ConnState é o estado da conexão com o banco
type ConnState int

const (
	StateNotConfigured ConnState = iota
	StateFailed
	StateReady
)

func (s ConnState) String() string {
	switch s {
	case StateNotConfigured:
		return "not_configured"
	case StateFailed:
		return "failed"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Handle entrega o *gorm.DB aos repositórios. Retorna erro envolvendo
// ErrDatabaseUnavailable quando não há banco.
type Handle interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

// Connector abre o pool na primeira utilização e guarda o resultado.
// Uma falha de abertura fica registrada e não é tentada de novo.
type Connector struct {
	cfg *config.DatabaseConfig
	log ports.Logger

	once  sync.Once
	db    *gorm.DB
	state ConnState
	err   error
}

// NewConnector cria um Connector preguiçoso
func NewConnector(cfg *config.DatabaseConfig, log ports.Logger) *Connector {
	return &Connector{cfg: cfg, log: log}
}

// NewConnectorFromDB envolve uma conexão já aberta
func NewConnectorFromDB(db *gorm.DB) *Connector {
	c := &Connector{db: db, state: StateReady}
	c.once.Do(func() {})
	return c
}

// DB retorna a conexão associada ao contexto da chamada
func (c *Connector) DB(ctx context.Context) (*gorm.DB, error) {
	c.once.Do(c.connect)
	if c.state != StateReady {
		return nil, c.err
	}
	return c.db.WithContext(ctx), nil
}

// State inicializa a conexão se necessário e retorna o estado
func (c *Connector) State() ConnState {
	c.once.Do(c.connect)
	return c.state
}

// Close fecha o pool, se aberto
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Connector) connect() {
	if c.cfg == nil || !c.cfg.Configured() {
		c.state = StateNotConfigured
		c.err = fmt.Errorf("%w: DATABASE_URL not set", domainerrors.ErrDatabaseUnavailable)
		c.log.Warn("database not configured, persistence disabled")
		return
	}

	db, err := openDatabase(c.cfg, c.log)
	if err != nil {
		c.state = StateFailed
		c.err = fmt.Errorf("%w: %w", domainerrors.ErrDatabaseUnavailable, err)
		c.log.Error("failed to connect to database", "error", err)
		return
	}

	c.db = db
	c.state = StateReady
}

// openDatabase cria o pool do PostgreSQL e verifica a conexão
func openDatabase(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewGormLogger(log, cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxIdleTime(cfg.IdleTimeout())

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns,
	)

	return db, nil
}

// gormWriter encaminha o log do GORM para o ports.Logger
type gormWriter struct {
	log ports.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}

// NewGormLogger cria o logger do GORM com nível silent/error/warn/info
func NewGormLogger(log ports.Logger, level string) logger.Interface {
	return logger.New(gormWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseGormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Ping implementa ports.DatabaseProbe
func (c *Connector) Ping(ctx context.Context) error {
	return Ping(ctx, c)
}

var _ ports.DatabaseProbe = (*Connector)(nil)
