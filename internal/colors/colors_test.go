package colors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"named-colors-backend/internal/domain"
)

func tempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ─── Load (mitgelieferte Palette) ─────────────────────────────────────────────

func TestLoad_MitgeliefertePalette(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, m)

	red, ok := GetColorByName(m, "red")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 255, G: 0, B: 0}, red)

	navy, ok := GetColorByName(m, "navy")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 0, G: 0, B: 128}, navy)
}

func TestLoad_AlleSchluesselKleingeschrieben(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	for name := range m {
		_, ok := GetColorByName(m, name)
		assert.True(t, ok, "name %q muss über sich selbst auffindbar sein", name)
	}
}

// ─── LoadFromString ───────────────────────────────────────────────────────────

func TestLoadFromString_Gueltig(t *testing.T) {
	m, err := LoadFromString(`{"navy": [0, 0, 128], "chartreuse": [127, 255, 0]}`)
	require.NoError(t, err)
	require.Len(t, m, 2)

	navy, ok := GetColorByName(m, "navy")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 0, G: 0, B: 128}, navy)

	chartreuse, ok := GetColorByName(m, "CHARTREUSE")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 127, G: 255, B: 0}, chartreuse)

	_, ok = GetColorByName(m, "teal")
	assert.False(t, ok)
}

func TestLoadFromString_ObjektForm(t *testing.T) {
	// Das Objektformat {"r":…, "g":…, "b":…} ist ein gültiges Quellformat.
	m, err := LoadFromString(`{"blue": {"r": 0, "g": 0, "b": 255}}`)
	require.NoError(t, err)

	blue, ok := GetColorByName(m, "blue")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 0, G: 0, B: 255}, blue)
}

func TestLoadFromString_KeinJSON(t *testing.T) {
	_, err := LoadFromString("not json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_KeinObjektAufObersterEbene(t *testing.T) {
	_, err := LoadFromString(`[1, 2, 3]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_LeeresObjekt(t *testing.T) {
	_, err := LoadFromString(`{}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptySource)
}

func TestLoadFromString_WertAusserhalbDesBereichs(t *testing.T) {
	// Ein einziger fehlerhafter Eintrag lässt das gesamte Laden fehlschlagen.
	_, err := LoadFromString(`{"good": [1, 2, 3], "bad": [300, 0, 0]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_NegativeKomponente(t *testing.T) {
	_, err := LoadFromString(`{"bad": [-1, 0, 0]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_NichtNumerischeKomponente(t *testing.T) {
	_, err := LoadFromString(`{"bad": ["ff", 0, 0]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_FalscheKomponentenzahl(t *testing.T) {
	_, err := LoadFromString(`{"bad": [1, 2]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)

	_, err = LoadFromString(`{"bad": [1, 2, 3, 4]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestLoadFromString_DuplikateLetzterGewinnt(t *testing.T) {
	// Schlüssel, die nach der Normalisierung zusammenfallen: der zuletzt
	// gelesene Eintrag gewinnt.
	m, err := LoadFromString(`{"Red": [1, 2, 3], "RED": [4, 5, 6]}`)
	require.NoError(t, err)
	require.Len(t, m, 1)

	red, ok := GetColorByName(m, "red")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 4, G: 5, B: 6}, red)
}

// ─── LoadFromFile ─────────────────────────────────────────────────────────────

func TestLoadFromFile_Gueltig(t *testing.T) {
	path := tempJSON(t, `{"teal": [0, 128, 128]}`)
	m, err := LoadFromFile(path)
	require.NoError(t, err)

	teal, ok := GetColorByName(m, "Teal")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 0, G: 128, B: 128}, teal)
}

func TestLoadFromFile_DateiFehlt(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "gibt-es-nicht.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// ─── LoadURL ──────────────────────────────────────────────────────────────────

func TestLoadURL_Gueltig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"navy": [0, 0, 128]}`))
	}))
	defer srv.Close()

	m, err := LoadURL(context.Background(), srv.URL)
	require.NoError(t, err)

	navy, ok := GetColorByName(m, "NAVY")
	require.True(t, ok)
	assert.Equal(t, domain.Color{R: 0, G: 0, B: 128}, navy)
}

func TestLoadURL_FehlerStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := LoadURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestLoadURL_Abgebrochen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"navy": [0, 0, 128]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := LoadURL(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Nil(t, m, "nach abbruch darf keine teil-map zurückkommen")
}

func TestLoadURL_NichtErreichbar(t *testing.T) {
	_, err := LoadURL(context.Background(), "http://127.0.0.1:1/colors.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

// ─── GetColorByName ───────────────────────────────────────────────────────────

func TestGetColorByName_Fallunabhaengig(t *testing.T) {
	m, err := LoadFromString(`{"red": [255, 0, 0]}`)
	require.NoError(t, err)

	for _, name := range []string{"red", "Red", "RED", "rEd"} {
		c, ok := GetColorByName(m, name)
		require.True(t, ok, "variante %q muss gefunden werden", name)
		assert.Equal(t, domain.Color{R: 255, G: 0, B: 0}, c)
	}
}

func TestGetColorByName_Unbekannt(t *testing.T) {
	m, err := LoadFromString(`{"red": [255, 0, 0]}`)
	require.NoError(t, err)

	_, ok := GetColorByName(m, "invalid_color")
	assert.False(t, ok)
}

func TestGetColorByName_LeererName(t *testing.T) {
	m, err := LoadFromString(`{"red": [255, 0, 0]}`)
	require.NoError(t, err)

	_, ok := GetColorByName(m, "")
	assert.False(t, ok)
}

func TestGetColorByName_LeerzeichenWerdenNichtEntfernt(t *testing.T) {
	m, err := LoadFromString(`{"red": [255, 0, 0]}`)
	require.NoError(t, err)

	_, ok := GetColorByName(m, " red")
	assert.False(t, ok)
	_, ok = GetColorByName(m, "red ")
	assert.False(t, ok)
}
