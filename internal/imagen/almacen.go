// Package imagen persists item and mochila photos on the local filesystem.
// References are file names; a data: URL is treated as an already-inline
// reference and passes through untouched.
package imagen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1024

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// allowedMIME lists the accepted input formats.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Almacen stores processed images under a single directory.
type Almacen struct {
	dir string
}

func NewAlmacen(dir string) (*Almacen, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de imagenes: %w", err)
	}
	return &Almacen{dir: dir}, nil
}

// Guardar decodes a base64 payload (with or without the data-URL prefix),
// validates and downscales it, and writes it under nombre — generated when
// empty. Returns the stored reference.
func (a *Almacen) Guardar(datos, nombre string) (string, error) {
	b64 := datos
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decodificando imagen: %w", err)
	}

	procesada, err := procesar(raw)
	if err != nil {
		return "", err
	}

	if nombre == "" {
		nombre = fmt.Sprintf("img_%s.jpeg", uuid.NewString())
	}
	if err := os.WriteFile(filepath.Join(a.dir, nombre), procesada, 0o644); err != nil {
		return "", fmt.Errorf("guardando imagen: %w", err)
	}
	return nombre, nil
}

// Leer resolves a reference back to an inline data URL. A reference that is
// already a data URL is returned as-is.
func (a *Almacen) Leer(ref string) (string, error) {
	if strings.HasPrefix(ref, "data:image") {
		return ref, nil
	}
	raw, err := os.ReadFile(filepath.Join(a.dir, filepath.Base(ref)))
	if err != nil {
		return "", fmt.Errorf("leyendo imagen: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Eliminar removes a stored image. Data URLs and already-missing files are
// not errors.
func (a *Almacen) Eliminar(ref string) error {
	if strings.HasPrefix(ref, "data:image") {
		return nil
	}
	err := os.Remove(filepath.Join(a.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminando imagen: %w", err)
	}
	return nil
}

// procesar sniffs the actual format from the bytes, decodes, downscales if
// larger than MaxDimension, and re-encodes as JPEG.
func procesar(raw []byte) ([]byte, error) {
	detectado := http.DetectContentType(raw)
	if !allowedMIME[detectado] {
		return nil, fmt.Errorf("formato de imagen no soportado: %s", detectado)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decodificando imagen: %w", err)
	}

	img = reducir(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("codificando JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// reducir resizes so neither dimension exceeds maxDim, preserving aspect
// ratio. Returns the original image if already within bounds.
func reducir(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
