package testkit

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui (também satisfeito por GinkgoT())
type TB interface {
	Helper()
	Name() string
	Fatalf(format string, args ...any)
	Cleanup(func())
}

var seq atomic.Int64

// OpenTestDB retorna um sqlite em memória com o schema migrado,
// exposto como o mesmo Connector usado em produção.
func OpenTestDB(t TB) *postgres.Connector {
	t.Helper()

	name := fmt.Sprintf("%s_%d", t.Name(), seq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.QueryEscape(name))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("gorm.Open(sqlite): %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("gdb.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	conn := postgres.NewConnectorFromDB(gdb)
	if err := postgres.Migrate(context.Background(), conn); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return conn
}
