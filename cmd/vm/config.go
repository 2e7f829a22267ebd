package main

// VMConfig representa la configuración del simulador de memoria virtual
type VMConfig struct {
	LogLevel         string `json:"LOG_LEVEL"`
	CantidadMarcos   int    `json:"CANTIDAD_MARCOS"`    // Total de marcos físicos
	EntradasPorTabla int    `json:"ENTRADAS_POR_TABLA"` // Entradas por nivel de tabla (ambos niveles)
	RetardoMemoria   int    `json:"RETARDO_MEMORIA"`    // Retardo simulado por acceso en ms
	ScriptPath       string `json:"SCRIPT_PATH"`        // Script de comandos; vacío = stdin
	PIDInicial       int    `json:"PID_INICIAL"`        // PID del proceso inicial
}

var config *VMConfig

// aplicarValoresPorDefecto completa los campos que el archivo no especifica
func aplicarValoresPorDefecto(cfg *VMConfig) {
	if cfg.CantidadMarcos <= 0 {
		cfg.CantidadMarcos = 128
	}
	if cfg.EntradasPorTabla <= 0 {
		cfg.EntradasPorTabla = 16
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
