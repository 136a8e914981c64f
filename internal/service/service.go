package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"named-colors-backend/internal/domain"
	"named-colors-backend/internal/repository"
)

// ColorService kapselt die Geschäftslogik für Farboperationen.
type ColorService struct {
	repo   repository.ColorRepository
	logger *zap.Logger
}

// NewColorService gibt einen einsatzbereiten ColorService zurück.
func NewColorService(repo repository.ColorRepository, logger *zap.Logger) *ColorService {
	return &ColorService{repo: repo, logger: logger}
}

// GetAll gibt alle bekannten Farben zurück.
func (s *ColorService) GetAll(ctx context.Context) ([]domain.NamedColor, error) {
	return s.repo.GetAll(ctx)
}

// GetByName löst einen Farbnamen fallunabhängig auf. Leerzeichen werden
// bewusst nicht entfernt; nur die Groß-/Kleinschreibung wird normalisiert.
func (s *ColorService) GetByName(ctx context.Context, name string) (domain.Color, error) {
	if name == "" {
		return domain.Color{}, fmt.Errorf("name darf nicht leer sein: %w", domain.ErrInvalidInput)
	}
	return s.repo.GetByName(ctx, strings.ToLower(name))
}

// Add validiert und fügt eine neue Farbe hinzu. Der Name wird normalisiert;
// ein bereits vergebener Name wird abgelehnt.
func (s *ColorService) Add(ctx context.Context, color domain.NamedColor) (domain.NamedColor, error) {
	if color.Name == "" {
		return domain.NamedColor{}, fmt.Errorf("name darf nicht leer sein: %w", domain.ErrInvalidInput)
	}
	color.Name = strings.ToLower(color.Name)
	if err := s.repo.Add(ctx, color); err != nil {
		s.logger.Warn("farbe konnte nicht hinzugefügt werden",
			zap.String("name", color.Name),
			zap.Error(err),
		)
		return domain.NamedColor{}, err
	}
	return color, nil
}
