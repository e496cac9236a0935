package ports

import (
	"context"
	"io"
)

// MediaStorage puerto del colaborador de almacenamiento binario (fotos de QC,
// fotos de avance, portfolio). A diferencia del Notifier, aquí el resultado
// SÍ es el dato pedido, así que los fallos se propagan al caller.
type MediaStorage interface {
	// Upload sube el objeto y devuelve su URL pública.
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
