package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Guardar(ctx context.Context, c *model.Categoria) error
	Eliminar(ctx context.Context, id string) error
}

type categoriaRepository struct {
	*Coleccion[model.Categoria]
	db *infra.Database
}

func NewCategoriaRepository(db *infra.Database) CategoriaRepository {
	return &categoriaRepository{
		Coleccion: NewColeccion[model.Categoria](db, "categorias"),
		db:        db,
	}
}

// ObtenerPorNombre matches case-insensitively; absence returns (nil, nil).
func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	gdb, err := r.db.Conn()
	if err != nil {
		return nil, err
	}
	var c model.Categoria
	err = gdb.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscando categoria %q: %w", nombre, err)
	}
	return &c, nil
}
