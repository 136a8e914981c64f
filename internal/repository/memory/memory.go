package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"named-colors-backend/internal/colors"
	"named-colors-backend/internal/domain"
)

// ColorRepository implementiert repository.ColorRepository und hält alle
// Farben im Arbeitsspeicher. Die geladene ColorMap wird beim Anlegen
// kopiert; nachträglich hinzugefügte Farben überleben den Prozess nicht.
type ColorRepository struct {
	mu     sync.RWMutex
	colors map[string]domain.Color
	logger *zap.Logger
}

// NewColorRepository legt ein neues In-Memory-Repository an und übernimmt
// alle Einträge aus der bereits geladenen ColorMap.
func NewColorRepository(m colors.ColorMap, logger *zap.Logger) *ColorRepository {
	cp := make(map[string]domain.Color, len(m))
	for name, c := range m {
		cp[name] = c
	}
	logger.Info("farben in den speicher übernommen", zap.Int("anzahl", len(cp)))
	return &ColorRepository{colors: cp, logger: logger}
}

// GetAll gibt alle Farben alphabetisch sortiert zurück.
func (r *ColorRepository) GetAll(_ context.Context) ([]domain.NamedColor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.NamedColor, 0, len(r.colors))
	for name, c := range r.colors {
		out = append(out, domain.NamedColor{Name: name, Color: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByName sucht eine Farbe anhand ihres bereits normalisierten Namens.
func (r *ColorRepository) GetByName(_ context.Context, name string) (domain.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.colors[name]
	if !ok {
		return domain.Color{}, fmt.Errorf("farbe %q: %w", name, domain.ErrNotFound)
	}
	return c, nil
}

// Add fügt eine neue Farbe hinzu. Ein bereits vorhandener Name wird
// abgelehnt; bestehende Einträge werden nie überschrieben.
func (r *ColorRepository) Add(_ context.Context, color domain.NamedColor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.colors[color.Name]; ok {
		return fmt.Errorf("farbe %q: %w", color.Name, domain.ErrColorExists)
	}
	r.colors[color.Name] = color.Color
	return nil
}
