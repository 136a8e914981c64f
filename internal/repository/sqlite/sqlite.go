package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"named-colors-backend/internal/colors"
	"named-colors-backend/internal/domain"
)

// ColorRepository implementiert repository.ColorRepository über eine
// SQLite-Datenbank.
type ColorRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewColorRepository öffnet die SQLite-Datenbank unter dsn, erstellt das
// Schema und befüllt es mit den Einträgen der bereits geladenen ColorMap.
func NewColorRepository(dsn string, m colors.ColorMap, logger *zap.Logger) (*ColorRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite öffnen: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS colors (
			name TEXT PRIMARY KEY,
			r    INTEGER NOT NULL CHECK (r BETWEEN 0 AND 255),
			g    INTEGER NOT NULL CHECK (g BETWEEN 0 AND 255),
			b    INTEGER NOT NULL CHECK (b BETWEEN 0 AND 255)
		)
	`); err != nil {
		return nil, fmt.Errorf("tabelle erstellen: %w", err)
	}

	repo := &ColorRepository{db: db, logger: logger}
	if err := repo.seed(m); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite-repository initialisiert",
		zap.String("dsn", dsn),
		zap.Int("anzahl", len(m)),
	)
	return repo, nil
}

// seed übernimmt alle geladenen Farben in einer Transaktion.
func (r *ColorRepository) seed(m colors.ColorMap) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("transaktion starten: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO colors (name, r, g, b) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("statement vorbereiten: %w", err)
	}
	defer stmt.Close()

	for name, c := range m {
		if _, err := stmt.Exec(name, c.R, c.G, c.B); err != nil {
			return fmt.Errorf("farbe %q einfügen: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close schließt die zugrunde liegende Datenbankverbindung.
func (r *ColorRepository) Close() error {
	return r.db.Close()
}

// GetAll gibt alle Farben alphabetisch sortiert zurück.
func (r *ColorRepository) GetAll(ctx context.Context) ([]domain.NamedColor, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, r, g, b FROM colors ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("abfrage: %w", err)
	}
	defer rows.Close()

	out := make([]domain.NamedColor, 0)
	for rows.Next() {
		var nc domain.NamedColor
		if err := rows.Scan(&nc.Name, &nc.Color.R, &nc.Color.G, &nc.Color.B); err != nil {
			return nil, fmt.Errorf("zeile lesen: %w", err)
		}
		out = append(out, nc)
	}
	return out, rows.Err()
}

// GetByName sucht eine Farbe anhand ihres bereits normalisierten Namens.
func (r *ColorRepository) GetByName(ctx context.Context, name string) (domain.Color, error) {
	var c domain.Color
	err := r.db.QueryRowContext(ctx,
		"SELECT r, g, b FROM colors WHERE name = ?", name,
	).Scan(&c.R, &c.G, &c.B)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Color{}, fmt.Errorf("farbe %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Color{}, fmt.Errorf("abfrage farbe %q: %w", name, err)
	}
	return c, nil
}

// Add fügt eine neue Farbe hinzu. Ein bereits vorhandener Name wird abgelehnt.
func (r *ColorRepository) Add(ctx context.Context, color domain.NamedColor) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO colors (name, r, g, b) VALUES (?, ?, ?, ?)",
		color.Name, color.Color.R, color.Color.G, color.Color.B,
	)
	if err != nil {
		return fmt.Errorf("farbe einfügen: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("betroffene zeilen: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("farbe %q: %w", color.Name, domain.ErrColorExists)
	}
	return nil
}
