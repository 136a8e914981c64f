package repository

import (
	"context"

	"named-colors-backend/internal/domain"
)

// ColorRepository abstrahiert den Datenzugriff auf benannte Farben.
type ColorRepository interface {
	GetAll(ctx context.Context) ([]domain.NamedColor, error)
	GetByName(ctx context.Context, name string) (domain.Color, error)
	Add(ctx context.Context, color domain.NamedColor) error
}
