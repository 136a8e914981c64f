package env

import (
	"os"
	"strconv"
)

// Config enthält alle konfigurierbaren Werte der Anwendung, die über Umgebungsvariablen gesetzt werden können.
type Config struct {
	ServerAddr     string  // SERVER_ADDR – Adresse des HTTP-Servers (Standard: ":8081")
	DataSource     string  // DATA_SOURCE – "memory" oder "sqlite" (Standard: "memory")
	ColorsFilePath string  // COLORS_FILE_PATH – optionale JSON-Datei statt der mitgelieferten Palette
	ColorsURL      string  // COLORS_URL – optionale Remote-Quelle; hat Vorrang vor COLORS_FILE_PATH
	FetchTimeoutS  int     // FETCH_TIMEOUT_S – Timeout für den Remote-Abruf in Sekunden (Standard: 10)
	RateLimit      float64 // RATE_LIMIT – Erlaubte Anfragen pro Sekunde (Standard: 100)
}

// MustLoad liest die Konfiguration aus Umgebungsvariablen.
func MustLoad() Config {
	return Config{
		ServerAddr:     getOr("SERVER_ADDR", ":8081"),
		DataSource:     getOr("DATA_SOURCE", "memory"),
		ColorsFilePath: os.Getenv("COLORS_FILE_PATH"),
		ColorsURL:      os.Getenv("COLORS_URL"),
		FetchTimeoutS:  getIntOr("FETCH_TIMEOUT_S", 10),
		RateLimit:      getFloatOr("RATE_LIMIT", 100),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
