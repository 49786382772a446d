package repository

import (
	"context"
	"fmt"

	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/model"
)

// ItemRepository defines CRUD operations for Item plus the two
// index-backed lookups (by categoria, by mochila).
type ItemRepository interface {
	Listar(ctx context.Context) ([]model.Item, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Item, error)
	Guardar(ctx context.Context, i *model.Item) error
	Eliminar(ctx context.Context, id string) error
	ListarPorCategoria(ctx context.Context, categoriaID string) ([]model.Item, error)
	ListarPorMochila(ctx context.Context, mochilaID string) ([]model.Item, error)
}

type itemRepository struct {
	*Coleccion[model.Item]
	db *infra.Database
}

func NewItemRepository(db *infra.Database) ItemRepository {
	return &itemRepository{
		Coleccion: NewColeccion[model.Item](db, "items"),
		db:        db,
	}
}

func (r *itemRepository) ListarPorCategoria(ctx context.Context, categoriaID string) ([]model.Item, error) {
	gdb, err := r.db.Conn()
	if err != nil {
		return nil, err
	}
	var list []model.Item
	if err := gdb.WithContext(ctx).Where("categoria = ?", categoriaID).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listando items por categoria: %w", err)
	}
	return list, nil
}

func (r *itemRepository) ListarPorMochila(ctx context.Context, mochilaID string) ([]model.Item, error) {
	gdb, err := r.db.Conn()
	if err != nil {
		return nil, err
	}
	var list []model.Item
	if err := gdb.WithContext(ctx).Where("mochila_id = ?", mochilaID).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listando items por mochila: %w", err)
	}
	return list, nil
}
