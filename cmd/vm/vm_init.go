package main

import (
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// inicializarSistema construye el estado global del simulador: los
// contadores de referencias de los marcos físicos, la cola de listos vacía
// y el proceso inicial ya instalado como proceso en ejecución
func inicializarSistema() {
	utils.InfoLog.Info("Inicializando sistema",
		"marcos_fisicos", config.CantidadMarcos,
		"entradas_por_tabla", config.EntradasPorTabla,
		"espacio_virtual", espacioVirtual())

	contadorReferencias = make([]int, config.CantidadMarcos)
	colaReady = []*Proceso{}
	metricasPorProceso = make(map[int]*MetricasProceso)

	procesoActual = nuevoProceso(config.PIDInicial)
	ptbr = &procesoActual.Tabla

	utils.InfoLog.Info("Sistema inicializado", "pid_inicial", procesoActual.PID)
}
