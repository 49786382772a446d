package service

import (
	"context"
	"time"

	"github.com/TenochLab/mochila-85/internal/data"
	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ItemService defines business operations for items, including the derived
// expiry/review queries that feed the special lists.
type ItemService interface {
	Crear(ctx context.Context, req dto.CrearItemRequest) (*model.Item, error)
	Listar(ctx context.Context) ([]model.Item, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Item, error)
	Actualizar(ctx context.Context, i model.Item) (*model.Item, error)
	Eliminar(ctx context.Context, id string) error
	MarcarComoRevisado(ctx context.Context, id string) (*model.Item, error)
	ListarPorCategoria(ctx context.Context, categoriaID string) ([]model.Item, error)
	ListarPorMochila(ctx context.Context, mochilaID string) ([]model.Item, error)
	ListarPorVencer(ctx context.Context, diasLimite int) ([]model.Item, error)
	ListarVencidos(ctx context.Context) ([]model.Item, error)
	ListarParaRevisar(ctx context.Context) ([]model.Item, error)
	InicializarPredeterminados(ctx context.Context, categoriaID string) error
}

type itemService struct {
	repo       repository.ItemRepository
	categorias CategoriaService
	ahora      func() time.Time
}

func NewItemService(repo repository.ItemRepository, categorias CategoriaService) ItemService {
	return &itemService{repo: repo, categorias: categorias, ahora: time.Now}
}

// Crear assigns the id and fechaCreacion, defaulting personalizado to true
// and predefinido to false when the caller left them unset.
func (s *itemService) Crear(ctx context.Context, req dto.CrearItemRequest) (*model.Item, error) {
	personalizado := true
	if req.Personalizado != nil {
		personalizado = *req.Personalizado
	}
	predefinido := false
	if req.Predefinido != nil {
		predefinido = *req.Predefinido
	}

	i := &model.Item{
		ID:               uuid.NewString(),
		Nombre:           req.Nombre,
		Categoria:        req.Categoria,
		Cantidad:         req.Cantidad,
		Descripcion:      req.Descripcion,
		Personalizado:    personalizado,
		Predefinido:      predefinido,
		FechaCreacion:    s.ahora(),
		FechaVencimiento: req.FechaVencimiento,
		DiasParaRevisar:  req.DiasParaRevisar,
		Comentarios:      req.Comentarios,
		Estado:           req.Estado,
		Imagen:           req.Imagen,
		MochilaID:        req.MochilaID,
	}
	if err := s.repo.Guardar(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *itemService) Listar(ctx context.Context) ([]model.Item, error) {
	return s.repo.Listar(ctx)
}

func (s *itemService) ObtenerPorID(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

// Actualizar is a full-record replace; fechaModificacion is stamped
// unconditionally.
func (s *itemService) Actualizar(ctx context.Context, i model.Item) (*model.Item, error) {
	mod := s.ahora()
	i.FechaModificacion = &mod
	if err := s.repo.Guardar(ctx, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *itemService) Eliminar(ctx context.Context, id string) error {
	return s.repo.Eliminar(ctx, id)
}

// MarcarComoRevisado stamps fechaUltimaRevision and fechaModificacion.
// A missing id returns (nil, nil) and performs no write.
func (s *itemService) MarcarComoRevisado(ctx context.Context, id string) (*model.Item, error) {
	i, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}
	hoy := s.ahora()
	i.FechaUltimaRevision = &hoy
	i.FechaModificacion = &hoy
	if err := s.repo.Guardar(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *itemService) ListarPorCategoria(ctx context.Context, categoriaID string) ([]model.Item, error) {
	return s.repo.ListarPorCategoria(ctx, categoriaID)
}

func (s *itemService) ListarPorMochila(ctx context.Context, mochilaID string) ([]model.Item, error) {
	return s.repo.ListarPorMochila(ctx, mochilaID)
}

// ListarPorVencer returns items whose expiry falls within [0, diasLimite]
// whole days from now (default 30 when diasLimite <= 0). Items without an
// expiry date are excluded.
func (s *itemService) ListarPorVencer(ctx context.Context, diasLimite int) ([]model.Item, error) {
	if diasLimite <= 0 {
		diasLimite = DiasLimiteVencimiento
	}
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	hoy := s.ahora()
	result := make([]model.Item, 0)
	for _, i := range items {
		if i.FechaVencimiento == nil {
			continue
		}
		restantes := diasEnteros(hoy, *i.FechaVencimiento)
		if restantes >= 0 && restantes <= diasLimite {
			result = append(result, i)
		}
	}
	return result, nil
}

// ListarVencidos returns items whose expiry is strictly before now.
func (s *itemService) ListarVencidos(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	hoy := s.ahora()
	result := make([]model.Item, 0)
	for _, i := range items {
		if i.FechaVencimiento != nil && i.FechaVencimiento.Before(hoy) {
			result = append(result, i)
		}
	}
	return result, nil
}

// ListarParaRevisar returns items whose elapsed whole days since the last
// review reach their review interval. Items missing either the interval or
// a last-review date are excluded — an item that was never reviewed is not
// flagged by this rule.
func (s *itemService) ListarParaRevisar(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	hoy := s.ahora()
	result := make([]model.Item, 0)
	for _, i := range items {
		if i.DiasParaRevisar == nil || i.FechaUltimaRevision == nil {
			continue
		}
		if diasEnteros(*i.FechaUltimaRevision, hoy) >= *i.DiasParaRevisar {
			result = append(result, i)
		}
	}
	return result, nil
}

// InicializarPredeterminados stores the predefined item templates for one
// category — or all categories when categoriaID is empty — stamping each
// template with the resolved category id. The templates are embedded in the
// category record itself; no standalone item rows are created. Failures are
// logged and swallowed.
func (s *itemService) InicializarPredeterminados(ctx context.Context, categoriaID string) error {
	if categoriaID != "" {
		cat, err := s.categorias.ObtenerPorID(ctx, categoriaID)
		if err != nil {
			log.Warn().Err(err).Msg("error al buscar la categoria para sembrar articulos")
			return nil
		}
		if cat == nil {
			return nil
		}
		s.sembrarArticulos(ctx, cat)
		return nil
	}

	cats, err := s.categorias.Listar(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error al listar categorias para sembrar articulos")
		return nil
	}
	for idx := range cats {
		s.sembrarArticulos(ctx, &cats[idx])
	}
	return nil
}

func (s *itemService) sembrarArticulos(ctx context.Context, cat *model.Categoria) {
	plantillas, ok := data.ArticulosPredefinidos[cat.Nombre]
	if !ok {
		return
	}
	articulos := make([]model.Item, len(plantillas))
	for i, p := range plantillas {
		p.Categoria = cat.ID
		articulos[i] = p
	}
	cat.ArticulosPredefinidos = articulos
	if _, err := s.categorias.Actualizar(ctx, *cat); err != nil {
		log.Warn().Err(err).Str("categoria", cat.Nombre).Msg("error al guardar articulos predefinidos")
	}
}
