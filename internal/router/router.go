package router

import (
	"time"

	"github.com/TenochLab/mochila-85/internal/config"
	"github.com/TenochLab/mochila-85/internal/handler"
	"github.com/TenochLab/mochila-85/internal/imagen"
	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/middleware"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps carries the already-constructed collaborators the router wires into
// handlers. rdb may be nil when reminders run in-process.
type Deps struct {
	DB         *infra.Database
	Redis      *redis.Client
	Estado     *state.Estado
	Mochilas   service.MochilaService
	Categorias service.CategoriaService
	Items      service.ItemService
	Imagenes   *imagen.Almacen
}

// New returns a configured Gin engine.
// Dependency graph: Handler ← Estado/Service ← Repository ← DB
func New(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Handlers ─────────────────────────────────────────────────────────────
	mochilasH := handler.NewMochilasHandler(d.Estado, d.Mochilas)
	categoriasH := handler.NewCategoriasHandler(d.Estado, d.Categorias)
	itemsH := handler.NewItemsHandler(d.Estado, d.Items)
	imagenesH := handler.NewImagenesHandler(d.Imagenes)
	estadoH := handler.NewEstadoHandler(d.Estado)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(d.DB, d.Redis))

	v1 := r.Group("/v1")
	{
		v1.GET("/estado", estadoH.Obtener)

		mochilas := v1.Group("/mochilas")
		{
			mochilas.POST("", mochilasH.Crear)
			mochilas.GET("", mochilasH.Listar)
			mochilas.GET("/por-revisar", mochilasH.PorRevisar)
			mochilas.GET("/:id", mochilasH.ObtenerPorID)
			mochilas.PUT("/:id", mochilasH.Actualizar)
			mochilas.DELETE("/:id", mochilasH.Eliminar)
			mochilas.POST("/:id/revisar", mochilasH.Revisar)
			mochilas.POST("/:id/seleccionar", mochilasH.Seleccionar)
			mochilas.GET("/:id/items", itemsH.ListarPorMochila)
			mochilas.POST("/:id/items", itemsH.CrearEnMochila)
		}

		items := v1.Group("/items")
		{
			items.POST("", itemsH.Crear)
			items.GET("", itemsH.Listar)
			items.GET("/por-vencer", itemsH.PorVencer)
			items.GET("/vencidos", itemsH.Vencidos)
			items.GET("/por-revisar", itemsH.ParaRevisar)
			items.GET("/:id", itemsH.ObtenerPorID)
			items.PUT("/:id", itemsH.Actualizar)
			items.DELETE("/:id", itemsH.Eliminar)
			items.POST("/:id/revisar", itemsH.Revisar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.POST("/inicializar", categoriasH.Inicializar)
			categorias.GET("/:id", categoriasH.ObtenerPorID)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.GET("/:id/items", itemsH.ListarPorCategoria)
			categorias.POST("/:id/articulos-predefinidos", categoriasH.SembrarArticulos)
		}

		imagenes := v1.Group("/imagenes")
		{
			imagenes.POST("", imagenesH.Subir)
			imagenes.GET("/:nombre", imagenesH.Obtener)
			imagenes.DELETE("/:nombre", imagenesH.Eliminar)
		}
	}

	return r
}
