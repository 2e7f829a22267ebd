package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/vm-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("info", "VM")
	utils.InfoLog.Info("Iniciando simulador de memoria virtual")

	rutaConfig := os.Args[1]
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: El archivo de configuración no existe: %s\n", rutaConfig)
		os.Exit(1)
	}

	config = utils.CargarConfiguracion[VMConfig](rutaConfig)
	aplicarValoresPorDefecto(config)

	// Actualizar logger con el nivel del archivo
	utils.InicializarLogger(config.LogLevel, "VM")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	inicializarSistema()

	entrada, err := abrirEntrada()
	if err != nil {
		utils.ErrorLog.Error("No se pudo abrir el script", "ruta", config.ScriptPath, "error", err)
		os.Exit(1)
	}

	ejecutarSimulacion(entrada)

	volcarEstado()
	utils.InfoLog.Info("Simulación finalizada")
}

// abrirEntrada devuelve el script configurado, o la entrada estándar si no
// se configuró ninguno
func abrirEntrada() (io.Reader, error) {
	if config.ScriptPath == "" {
		utils.InfoLog.Info("Leyendo comandos de la entrada estándar")
		return os.Stdin, nil
	}

	archivo, err := os.Open(config.ScriptPath)
	if err != nil {
		return nil, err
	}
	utils.InfoLog.Info("Ejecutando script", "ruta", config.ScriptPath)
	return archivo, nil
}
