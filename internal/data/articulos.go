package data

import "github.com/TenochLab/mochila-85/internal/model"

// ArticulosPredefinidos maps a category name to its item templates. Templates
// carry Predefinido=true / Personalizado=false; the seeding step stamps each
// template's Categoria with the resolved category id before storing the list
// inside the category record.
var ArticulosPredefinidos = map[string][]model.Item{
	"Alimentos": {
		{Nombre: "Latas de conserva", Cantidad: 6, Predefinido: true, Descripcion: "Atún, legumbres o verduras en lata"},
		{Nombre: "Barras energéticas", Cantidad: 10, Predefinido: true},
		{Nombre: "Galletas de agua", Cantidad: 2, Predefinido: true},
	},
	"Agua": {
		{Nombre: "Botella de agua 1.5L", Cantidad: 4, Predefinido: true},
		{Nombre: "Pastillas potabilizadoras", Cantidad: 1, Predefinido: true},
	},
	"Medicamentos": {
		{Nombre: "Botiquín de primeros auxilios", Cantidad: 1, Predefinido: true},
		{Nombre: "Analgésicos", Cantidad: 1, Predefinido: true},
		{Nombre: "Medicamentos personales", Cantidad: 1, Predefinido: true, Descripcion: "Dosis para al menos 7 días"},
	},
	"Comunicación": {
		{Nombre: "Radio a pilas", Cantidad: 1, Predefinido: true},
		{Nombre: "Pilas de repuesto", Cantidad: 4, Predefinido: true},
		{Nombre: "Cargador portátil", Cantidad: 1, Predefinido: true},
	},
	"Documentos": {
		{Nombre: "Copia de documentos de identidad", Cantidad: 1, Predefinido: true},
		{Nombre: "Dinero en efectivo", Cantidad: 1, Predefinido: true},
	},
	"Herramientas": {
		{Nombre: "Linterna", Cantidad: 1, Predefinido: true},
		{Nombre: "Navaja multiuso", Cantidad: 1, Predefinido: true},
		{Nombre: "Silbato", Cantidad: 1, Predefinido: true},
	},
	"Higiene": {
		{Nombre: "Jabón", Cantidad: 1, Predefinido: true},
		{Nombre: "Papel higiénico", Cantidad: 2, Predefinido: true},
		{Nombre: "Cepillo y pasta de dientes", Cantidad: 1, Predefinido: true},
	},
	"Ropa": {
		{Nombre: "Muda de ropa completa", Cantidad: 1, Predefinido: true},
		{Nombre: "Abrigo", Cantidad: 1, Predefinido: true},
		{Nombre: "Manta térmica", Cantidad: 2, Predefinido: true},
	},
}
