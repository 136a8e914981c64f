// Package colors lädt Farbquellen im JSON-Format und löst Farbnamen
// fallunabhängig zu ihren RGB-Werten auf. Alle Ladefunktionen teilen sich
// denselben Parse- und Validierungspfad; sie unterscheiden sich nur darin,
// woher die Rohbytes stammen.
package colors

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"named-colors-backend/internal/domain"
)

//go:embed assets/named_colors.json
var bundledColors []byte

// ColorMap bildet normalisierte (kleingeschriebene) Farbnamen auf ihre
// RGB-Werte ab. Nach dem Laden wird die Map nicht mehr verändert.
type ColorMap map[string]domain.Color

// Load parst die mitgelieferte Standard-Farbpalette (CSS-Farbnamen).
func Load() (ColorMap, error) {
	return parse(bundledColors)
}

// LoadFromString parst einen vom Aufrufer bereitgestellten JSON-Text.
// Schlüssel, die sich nur in der Groß-/Kleinschreibung unterscheiden,
// werden nach der Normalisierung zusammengeführt; der zuletzt gelesene
// Eintrag gewinnt.
func LoadFromString(jsonText string) (ColorMap, error) {
	return parse([]byte(jsonText))
}

// LoadFromFile liest eine lokale JSON-Datei und parst sie.
func LoadFromFile(path string) (ColorMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datei lesen %s: %w: %w", path, domain.ErrSourceUnavailable, err)
	}
	return parse(data)
}

// LoadURL lädt eine JSON-Farbquelle per HTTP. Der Abruf läuft unter dem
// übergebenen Context; bricht der Aufrufer ab, wird keine (Teil-)Map
// zurückgegeben. Parsen und Validieren finden erst nach vollständigem
// Lesen der Antwort statt.
func LoadURL(ctx context.Context, url string) (ColorMap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("anfrage erstellen %s: %w: %w", url, domain.ErrSourceUnavailable, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("abruf %s: %w: %w", url, domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("abruf %s: status %d: %w", url, resp.StatusCode, domain.ErrSourceUnavailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("antwort lesen %s: %w: %w", url, domain.ErrSourceUnavailable, err)
	}
	return parse(data)
}

// GetColorByName schlägt einen Farbnamen fallunabhängig in der Map nach.
// Führende oder abschließende Leerzeichen werden bewusst nicht entfernt.
func GetColorByName(m ColorMap, name string) (domain.Color, bool) {
	c, ok := m[strings.ToLower(name)]
	return c, ok
}

// parse wandelt Rohbytes in eine ColorMap um. Ein einziger fehlerhafter
// Eintrag lässt das gesamte Laden fehlschlagen; es entsteht nie eine
// unvollständige Map. Die Einträge werden in Dokumentreihenfolge
// eingefügt, damit bei nach Normalisierung gleichen Schlüsseln
// verlässlich der letzte gewinnt.
func parse(data []byte) (ColorMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json parsen: %w: %w", domain.ErrMalformedSource, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("oberste ebene ist kein json-objekt: %w", domain.ErrMalformedSource)
	}

	m := make(ColorMap)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json parsen: %w: %w", domain.ErrMalformedSource, err)
		}
		name := keyTok.(string)

		var c domain.Color
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("eintrag %q: %w: %w", name, domain.ErrMalformedSource, err)
		}
		m[strings.ToLower(name)] = c
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("json parsen: %w: %w", domain.ErrMalformedSource, err)
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("quelle enthält keine farben: %w", domain.ErrEmptySource)
	}
	return m, nil
}
