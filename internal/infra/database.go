package infra

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/TenochLab/mochila-85/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDisponible is returned by every store operation attempted before the
// database open handshake completes (or after Cerrar).
var ErrNoDisponible = errors.New("base de datos no inicializada")

// Database wraps the GORM connection behind an explicit open handshake.
// Repositories obtain the live handle through Conn, which fails with
// ErrNoDisponible until Abrir has completed.
type Database struct {
	mu      sync.RWMutex
	dsn     string
	gdb     *gorm.DB
	abierta bool
}

// NewDatabase prepares a database for the given DSN without opening it.
// A plain file path opens an embedded SQLite file; a postgres:// URL
// connects to an external server.
func NewDatabase(dsn string) *Database {
	return &Database{dsn: dsn}
}

// Abrir opens the connection and migrates the schema: three tables keyed by a
// string primary key, plus the declared secondary indexes (items by categoria,
// items by mochila_id, mochilas by nombre and fecha de revisión, categorias
// by nombre). Calling Abrir on an already-open database is a no-op.
func (d *Database) Abrir() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.abierta {
		return nil
	}

	dialector := sqlite.Open(d.dsn)
	if strings.HasPrefix(d.dsn, "postgres://") || strings.HasPrefix(d.dsn, "postgresql://") {
		dialector = postgres.Open(d.dsn)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("abriendo base de datos: %w", err)
	}

	if err := gdb.AutoMigrate(&model.Mochila{}, &model.Categoria{}, &model.Item{}); err != nil {
		return fmt.Errorf("migrando esquema: %w", err)
	}

	d.gdb = gdb
	d.abierta = true
	return nil
}

// Conn returns the live GORM handle, or ErrNoDisponible before Abrir.
func (d *Database) Conn() (*gorm.DB, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.abierta {
		return nil, ErrNoDisponible
	}
	return d.gdb, nil
}

// Cerrar closes the underlying connection. Idempotent.
func (d *Database) Cerrar() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.abierta {
		return nil
	}
	sqlDB, err := d.gdb.DB()
	if err != nil {
		return err
	}
	d.abierta = false
	d.gdb = nil
	return sqlDB.Close()
}
