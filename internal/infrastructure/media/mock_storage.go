package media

import (
	"context"
	"io"
	"sync"

	"github.com/tu-usuario/sastre-api/internal/application/ports"
)

var _ ports.MediaStorage = (*MockStorage)(nil)

// MockStorage implementación en memoria para tests y desarrollo sin AWS.
type MockStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

// NewMockStorage construye el mock con el mapa inicializado.
func NewMockStorage() *MockStorage {
	return &MockStorage{Objects: make(map[string][]byte)}
}

// Upload guarda el objeto en memoria y devuelve una URL sintética.
func (m *MockStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return "https://media.test/" + key, nil
}

// Delete elimina el objeto del mapa.
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.Objects, key)
	m.mu.Unlock()
	return nil
}
