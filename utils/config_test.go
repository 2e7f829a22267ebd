package utils

import (
	"os"
	"path/filepath"
	"testing"
)

type configDePrueba struct {
	LogLevel       string `json:"LOG_LEVEL"`
	CantidadMarcos int    `json:"CANTIDAD_MARCOS"`
}

func TestCargarConfiguracion(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")
	contenido := `{"LOG_LEVEL": "debug", "CANTIDAD_MARCOS": 64}`
	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		t.Fatalf("escribiendo config de prueba: %v", err)
	}

	config := CargarConfiguracion[configDePrueba](ruta)

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, se esperaba %q", config.LogLevel, "debug")
	}
	if config.CantidadMarcos != 64 {
		t.Errorf("CantidadMarcos = %d, se esperaba 64", config.CantidadMarcos)
	}
}

func TestCargarConfiguracionCamposAusentes(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(ruta, []byte(`{}`), 0644); err != nil {
		t.Fatalf("escribiendo config de prueba: %v", err)
	}

	config := CargarConfiguracion[configDePrueba](ruta)

	if config.LogLevel != "" || config.CantidadMarcos != 0 {
		t.Errorf("los campos ausentes no quedaron en su valor cero: %+v", config)
	}
}
