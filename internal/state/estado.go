// Package state holds the in-memory snapshot a presentation layer reads:
// every mochila and categoria, the three special item lists, and the
// currently selected mochila hydrated with its live items. All mutations go
// through this facade, which keeps the snapshot and the store in sync.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/TenochLab/mochila-85/internal/dto"
	"github.com/TenochLab/mochila-85/internal/model"
	"github.com/TenochLab/mochila-85/internal/notify"
	"github.com/TenochLab/mochila-85/internal/service"

	"github.com/rs/zerolog/log"
)

// ErrMochilaNoEncontrada is returned by SeleccionarMochila for unknown ids.
var ErrMochilaNoEncontrada = errors.New("no se encontró la mochila")

// Abridor is the database handle the facade opens during Inicializar.
type Abridor interface {
	Abrir() error
}

// Estado aggregates the three domain services behind a single,
// mutex-guarded snapshot. It is safe for concurrent readers; writers are
// serialized per operation but two racing mutators follow last-writer-wins
// on the snapshot, mirroring the store they both already committed to.
type Estado struct {
	db          Abridor
	mochilas    service.MochilaService
	categorias  service.CategoriaService
	items       service.ItemService
	notificador notify.Notificador

	diasRevisionMochila  int
	diasAvisoVencimiento int

	mu              sync.RWMutex
	listaMochilas   []model.Mochila
	listaCategorias []model.Categoria
	porVencer       []model.Item
	vencidos        []model.Item
	paraRevisar     []model.Item
	cargando        bool
	ultimoError     string
	mochilaActual   *model.Mochila
}

// New builds the facade. diasRevision and diasAviso fall back to the
// service defaults when <= 0.
func New(db Abridor, mochilas service.MochilaService, categorias service.CategoriaService, items service.ItemService, notificador notify.Notificador, diasRevision, diasAviso int) *Estado {
	if diasRevision <= 0 {
		diasRevision = service.DiasRevisionMochila
	}
	if diasAviso <= 0 {
		diasAviso = 7
	}
	return &Estado{
		db:                   db,
		mochilas:             mochilas,
		categorias:           categorias,
		items:                items,
		notificador:          notificador,
		diasRevisionMochila:  diasRevision,
		diasAvisoVencimiento: diasAviso,
		cargando:             true,
	}
}

// Inicializar opens the database, seeds the default categories, then loads
// mochilas, categorias and the special lists concurrently. A failing
// sub-load records the shared error slot without aborting its siblings.
func (e *Estado) Inicializar(ctx context.Context) error {
	e.mu.Lock()
	e.cargando = true
	e.ultimoError = ""
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.cargando = false
		e.mu.Unlock()
	}()

	if err := e.db.Abrir(); err != nil {
		e.registrarError("Error al inicializar la base de datos", err)
		return err
	}

	// Seeding failures are logged inside the service and never propagate.
	_ = e.categorias.InicializarPredeterminadas(ctx)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); e.cargarMochilas(ctx) }()
	go func() { defer wg.Done(); e.cargarCategorias(ctx) }()
	go func() { defer wg.Done(); e.cargarItemsEspeciales(ctx) }()
	wg.Wait()

	return nil
}

func (e *Estado) cargarMochilas(ctx context.Context) {
	lista, err := e.mochilas.Listar(ctx)
	if err != nil {
		e.registrarError("Error al cargar mochilas", err)
		return
	}
	e.mu.Lock()
	e.listaMochilas = lista
	e.mu.Unlock()
}

func (e *Estado) cargarCategorias(ctx context.Context) {
	lista, err := e.categorias.Listar(ctx)
	if err != nil {
		e.registrarError("Error al cargar categorías", err)
		return
	}
	e.mu.Lock()
	e.listaCategorias = lista
	e.mu.Unlock()
}

// cargarItemsEspeciales recomputes the three special lists from scratch.
func (e *Estado) cargarItemsEspeciales(ctx context.Context) {
	porVencer, err := e.items.ListarPorVencer(ctx, 0)
	if err != nil {
		e.registrarError("Error al cargar items especiales", err)
		return
	}
	vencidos, err := e.items.ListarVencidos(ctx)
	if err != nil {
		e.registrarError("Error al cargar items especiales", err)
		return
	}
	paraRevisar, err := e.items.ListarParaRevisar(ctx)
	if err != nil {
		e.registrarError("Error al cargar items especiales", err)
		return
	}
	e.mu.Lock()
	e.porVencer = porVencer
	e.vencidos = vencidos
	e.paraRevisar = paraRevisar
	e.mu.Unlock()
}

// SeleccionarMochila loads the mochila and hydrates it with a fresh item
// query. An unknown id clears the current selection and returns
// ErrMochilaNoEncontrada.
func (e *Estado) SeleccionarMochila(ctx context.Context, mochilaID string) (*model.Mochila, error) {
	m, err := e.mochilas.ObtenerPorID(ctx, mochilaID)
	if err != nil {
		e.registrarError("Error al seleccionar mochila", err)
		return nil, err
	}
	if m == nil {
		e.mu.Lock()
		e.mochilaActual = nil
		e.mu.Unlock()
		e.registrarError("Error al seleccionar mochila", ErrMochilaNoEncontrada)
		return nil, ErrMochilaNoEncontrada
	}

	articulos, err := e.items.ListarPorMochila(ctx, mochilaID)
	if err != nil {
		e.registrarError("Error al seleccionar mochila", err)
		return nil, err
	}
	m.Articulos = articulos

	e.mu.Lock()
	e.mochilaActual = m
	e.mu.Unlock()
	return copiarMochila(m), nil
}

// ── Mutadores de mochilas ────────────────────────────────────────────────────

func (e *Estado) CrearMochila(ctx context.Context, req dto.CrearMochilaRequest) (*model.Mochila, error) {
	m, err := e.mochilas.Crear(ctx, req)
	if err != nil {
		e.registrarError("Error al crear mochila", err)
		return nil, err
	}

	e.mu.Lock()
	e.listaMochilas = append(e.listaMochilas, *m)
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	e.programarRevision(ctx, m)
	return m, nil
}

func (e *Estado) ActualizarMochila(ctx context.Context, m model.Mochila) (*model.Mochila, error) {
	actualizada, err := e.mochilas.Actualizar(ctx, m)
	if err != nil {
		e.registrarError("Error al actualizar mochila", err)
		return nil, err
	}

	e.mu.Lock()
	reemplazarMochila(e.listaMochilas, actualizada)
	if e.mochilaActual != nil && e.mochilaActual.ID == actualizada.ID {
		copia := *actualizada
		copia.Articulos = e.mochilaActual.Articulos
		e.mochilaActual = &copia
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	return actualizada, nil
}

func (e *Estado) EliminarMochila(ctx context.Context, mochilaID string) error {
	if err := e.mochilas.Eliminar(ctx, mochilaID); err != nil {
		e.registrarError("Error al eliminar mochila", err)
		return err
	}

	e.mu.Lock()
	filtrada := e.listaMochilas[:0]
	for _, m := range e.listaMochilas {
		if m.ID != mochilaID {
			filtrada = append(filtrada, m)
		}
	}
	e.listaMochilas = filtrada
	if e.mochilaActual != nil && e.mochilaActual.ID == mochilaID {
		e.mochilaActual = nil
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	if err := e.notificador.Cancelar(ctx, notify.IDRevisionMochila(mochilaID)); err != nil {
		log.Warn().Err(err).Msg("error al cancelar recordatorio de revisión")
	}
	return nil
}

func (e *Estado) MarcarMochilaComoRevisada(ctx context.Context, mochilaID string) (*model.Mochila, error) {
	revisada, err := e.mochilas.MarcarComoRevisada(ctx, mochilaID)
	if err != nil {
		e.registrarError("Error al marcar mochila como revisada", err)
		return nil, err
	}
	if revisada == nil {
		return nil, nil
	}

	e.mu.Lock()
	reemplazarMochila(e.listaMochilas, revisada)
	if e.mochilaActual != nil && e.mochilaActual.ID == revisada.ID {
		copia := *revisada
		copia.Articulos = e.mochilaActual.Articulos
		e.mochilaActual = &copia
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	e.programarRevision(ctx, revisada)
	return revisada, nil
}

// ── Mutadores de categorías ──────────────────────────────────────────────────

func (e *Estado) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	cat, err := e.categorias.Crear(ctx, req)
	if err != nil {
		e.registrarError("Error al crear categoría", err)
		return nil, err
	}

	e.mu.Lock()
	e.listaCategorias = append(e.listaCategorias, *cat)
	e.mu.Unlock()
	return cat, nil
}

func (e *Estado) ActualizarCategoria(ctx context.Context, cat model.Categoria) (*model.Categoria, error) {
	actualizada, err := e.categorias.Actualizar(ctx, cat)
	if err != nil {
		e.registrarError("Error al actualizar categoría", err)
		return nil, err
	}

	e.mu.Lock()
	for i := range e.listaCategorias {
		if e.listaCategorias[i].ID == actualizada.ID {
			e.listaCategorias[i] = *actualizada
			break
		}
	}
	e.mu.Unlock()
	return actualizada, nil
}

func (e *Estado) EliminarCategoria(ctx context.Context, categoriaID string) error {
	if err := e.categorias.Eliminar(ctx, categoriaID); err != nil {
		e.registrarError("Error al eliminar categoría", err)
		return err
	}

	e.mu.Lock()
	filtrada := e.listaCategorias[:0]
	for _, cat := range e.listaCategorias {
		if cat.ID != categoriaID {
			filtrada = append(filtrada, cat)
		}
	}
	e.listaCategorias = filtrada
	e.mu.Unlock()
	return nil
}

// SembrarCategoriasPredeterminadas re-runs the default-category seeding and
// refreshes the category list. Safe to call repeatedly.
func (e *Estado) SembrarCategoriasPredeterminadas(ctx context.Context) {
	_ = e.categorias.InicializarPredeterminadas(ctx)
	e.cargarCategorias(ctx)
}

// SembrarArticulosPredefinidos stores the predefined item templates for one
// category, or for all when categoriaID is empty, and refreshes the category
// list so the embedded templates are visible in the snapshot.
func (e *Estado) SembrarArticulosPredefinidos(ctx context.Context, categoriaID string) {
	_ = e.items.InicializarPredeterminados(ctx, categoriaID)
	e.cargarCategorias(ctx)
}

// ── Mutadores de artículos ───────────────────────────────────────────────────

// AgregarArticulo creates an item owned by mochilaID, or by the currently
// selected mochila when mochilaID is empty.
func (e *Estado) AgregarArticulo(ctx context.Context, mochilaID string, req dto.CrearItemRequest) (*model.Item, error) {
	if mochilaID == "" {
		e.mu.RLock()
		if e.mochilaActual != nil {
			mochilaID = e.mochilaActual.ID
		}
		e.mu.RUnlock()
		if mochilaID == "" {
			err := errors.New("no hay una mochila seleccionada")
			e.registrarError("No hay una mochila seleccionada", err)
			return nil, err
		}
	}
	req.MochilaID = mochilaID

	item, err := e.items.Crear(ctx, req)
	if err != nil {
		e.registrarError("Error al agregar artículo", err)
		return nil, err
	}

	e.mu.Lock()
	if e.mochilaActual != nil && e.mochilaActual.ID == item.MochilaID {
		e.mochilaActual.Articulos = append(e.mochilaActual.Articulos, *item)
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	e.programarVencimiento(ctx, item)
	return item, nil
}

func (e *Estado) ActualizarArticulo(ctx context.Context, item model.Item) (*model.Item, error) {
	actualizado, err := e.items.Actualizar(ctx, item)
	if err != nil {
		e.registrarError("Error al actualizar artículo", err)
		return nil, err
	}

	e.mu.Lock()
	if e.mochilaActual != nil {
		for i := range e.mochilaActual.Articulos {
			if e.mochilaActual.Articulos[i].ID == actualizado.ID {
				e.mochilaActual.Articulos[i] = *actualizado
				break
			}
		}
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	e.programarVencimiento(ctx, actualizado)
	return actualizado, nil
}

func (e *Estado) EliminarArticulo(ctx context.Context, itemID string) error {
	if err := e.items.Eliminar(ctx, itemID); err != nil {
		e.registrarError("Error al eliminar artículo", err)
		return err
	}

	e.mu.Lock()
	if e.mochilaActual != nil {
		filtrados := e.mochilaActual.Articulos[:0]
		for _, a := range e.mochilaActual.Articulos {
			if a.ID != itemID {
				filtrados = append(filtrados, a)
			}
		}
		e.mochilaActual.Articulos = filtrados
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	if err := e.notificador.Cancelar(ctx, notify.IDVencimientoItem(itemID)); err != nil {
		log.Warn().Err(err).Msg("error al cancelar recordatorio de vencimiento")
	}
	return nil
}

func (e *Estado) MarcarArticuloComoRevisado(ctx context.Context, itemID string) (*model.Item, error) {
	revisado, err := e.items.MarcarComoRevisado(ctx, itemID)
	if err != nil {
		e.registrarError("Error al marcar artículo como revisado", err)
		return nil, err
	}
	if revisado == nil {
		return nil, nil
	}

	e.mu.Lock()
	if e.mochilaActual != nil {
		for i := range e.mochilaActual.Articulos {
			if e.mochilaActual.Articulos[i].ID == revisado.ID {
				e.mochilaActual.Articulos[i] = *revisado
				break
			}
		}
	}
	e.mu.Unlock()

	e.cargarItemsEspeciales(ctx)
	return revisado, nil
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

func (e *Estado) Mochilas() []model.Mochila {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Mochila(nil), e.listaMochilas...)
}

func (e *Estado) Categorias() []model.Categoria {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Categoria(nil), e.listaCategorias...)
}

func (e *Estado) ItemsPorVencer() []model.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Item(nil), e.porVencer...)
}

func (e *Estado) ItemsVencidos() []model.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Item(nil), e.vencidos...)
}

func (e *Estado) ItemsParaRevisar() []model.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Item(nil), e.paraRevisar...)
}

func (e *Estado) MochilaActual() *model.Mochila {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.mochilaActual == nil {
		return nil
	}
	return copiarMochila(e.mochilaActual)
}

func (e *Estado) Cargando() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cargando
}

// UltimoError returns the human-readable message of the most recent failure;
// last writer wins, there is no error history.
func (e *Estado) UltimoError() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ultimoError
}

// ItemsPorCategoria groups the current mochila's items by category id.
// Empty when no mochila is selected.
func (e *Estado) ItemsPorCategoria() map[string][]model.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make(map[string][]model.Item)
	if e.mochilaActual == nil {
		return result
	}
	for _, item := range e.mochilaActual.Articulos {
		result[item.Categoria] = append(result[item.Categoria], item)
	}
	return result
}

// ── Internos ─────────────────────────────────────────────────────────────────

func (e *Estado) registrarError(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	e.mu.Lock()
	e.ultimoError = msg
	e.mu.Unlock()
}

func (e *Estado) programarRevision(ctx context.Context, m *model.Mochila) {
	if err := notify.ProgramarRevisionMochila(ctx, e.notificador, m, e.diasRevisionMochila); err != nil {
		log.Warn().Err(err).Msg("error al programar recordatorio de revisión")
	}
}

func (e *Estado) programarVencimiento(ctx context.Context, i *model.Item) {
	if err := notify.ProgramarVencimientoItem(ctx, e.notificador, i, e.diasAvisoVencimiento); err != nil {
		log.Warn().Err(err).Msg("error al programar recordatorio de vencimiento")
	}
}

func reemplazarMochila(lista []model.Mochila, m *model.Mochila) {
	for i := range lista {
		if lista[i].ID == m.ID {
			articulos := lista[i].Articulos
			lista[i] = *m
			lista[i].Articulos = articulos
			return
		}
	}
}

func copiarMochila(m *model.Mochila) *model.Mochila {
	copia := *m
	copia.Articulos = append([]model.Item(nil), m.Articulos...)
	return &copia
}
