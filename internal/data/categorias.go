// Package data holds the fixed reference lists used to seed the database
// with default categories and their predefined item templates.
package data

import "github.com/TenochLab/mochila-85/internal/model"

// CategoriasPredefinidas is the default category set created on first run.
// Seeding matches on Nombre case-insensitively, so re-running never duplicates.
var CategoriasPredefinidas = []model.Categoria{
	{
		Nombre:      "Alimentos",
		Descripcion: "Alimentos no perecederos y de larga duración",
		Emojis:      []string{"🍞", "🥫", "🍪"},
	},
	{
		Nombre:      "Agua",
		Descripcion: "Agua y elementos para purificar agua",
		Emojis:      []string{"💧", "🚰", "🧴"},
	},
	{
		Nombre:      "Medicamentos",
		Descripcion: "Medicamentos esenciales y kit de primeros auxilios",
		Emojis:      []string{"💊", "🩹", "🧪"},
	},
	{
		Nombre:      "Comunicación",
		Descripcion: "Elementos para comunicación de emergencia",
		Emojis:      []string{"📻", "📱", "🔋"},
	},
	{
		Nombre:      "Documentos",
		Descripcion: "Documentos importantes y copias de respaldo",
		Emojis:      []string{"📄", "📝", "🗂️"},
	},
	{
		Nombre:      "Herramientas",
		Descripcion: "Herramientas útiles en situaciones de emergencia",
		Emojis:      []string{"🔧", "🔦", "🧰"},
	},
	{
		Nombre:      "Higiene",
		Descripcion: "Artículos de higiene personal",
		Emojis:      []string{"🧼", "🧻", "🪥"},
	},
	{
		Nombre:      "Ropa",
		Descripcion: "Ropa y elementos para protección",
		Emojis:      []string{"👕", "🧥", "👖"},
	},
	{
		Nombre:      "Otros",
		Descripcion: "Otros elementos importantes",
		Emojis:      []string{"📦", "🧳", "🛠️"},
	},
}
