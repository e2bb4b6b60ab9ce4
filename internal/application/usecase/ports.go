package usecase

import (
	"context"
	"time"
)

// FacetCache cachea respuestas de facetas ya serializadas. Una implementación
// nil desactiva el cacheo sin tocar la lógica del caso de uso.
type FacetCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
