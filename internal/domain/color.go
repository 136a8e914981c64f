package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// Ladefehler der Farbquelle.
	ErrSourceUnavailable = errors.New("quelle nicht erreichbar")
	ErrMalformedSource   = errors.New("fehlerhafte quelle")
	ErrEmptySource       = errors.New("leere quelle")

	// Fehler der Service-Schicht.
	ErrNotFound     = errors.New("nicht gefunden")
	ErrInvalidInput = errors.New("ungültige eingabe")
	ErrColorExists  = errors.New("farbe existiert bereits")
)

// Color ist ein unveränderliches RGB-Tripel mit Komponenten in [0,255].
type Color struct {
	R uint8
	G uint8
	B uint8
}

// NamedColor verbindet einen normalisierten Farbnamen mit seinem RGB-Wert.
type NamedColor struct {
	Name  string `json:"name"`
	Color Color  `json:"rgb"`
}

// UnmarshalJSON akzeptiert die beiden Quellformate einer Farbe:
// das Drei-Elemente-Array [r, g, b] sowie das Objekt {"r":…, "g":…, "b":…}.
// Nicht-ganzzahlige oder außerhalb von [0,255] liegende Komponenten
// schlagen fehl und brechen damit das Laden der gesamten Quelle ab.
func (c *Color) UnmarshalJSON(data []byte) error {
	var arr []int64
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) != 3 {
			return fmt.Errorf("erwartet 3 komponenten, erhalten %d", len(arr))
		}
		return c.set(arr[0], arr[1], arr[2])
	}

	var obj struct {
		R *int64 `json:"r"`
		G *int64 `json:"g"`
		B *int64 `json:"b"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("weder rgb-array noch rgb-objekt: %w", err)
	}
	if obj.R == nil || obj.G == nil || obj.B == nil {
		return fmt.Errorf("rgb-objekt unvollständig")
	}
	return c.set(*obj.R, *obj.G, *obj.B)
}

// MarshalJSON schreibt eine Farbe stets als Drei-Elemente-Array.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

func (c *Color) set(r, g, b int64) error {
	for _, v := range [3]int64{r, g, b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("komponente %d außerhalb von [0,255]", v)
		}
	}
	c.R, c.G, c.B = uint8(r), uint8(g), uint8(b)
	return nil
}
