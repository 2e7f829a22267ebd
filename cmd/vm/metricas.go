package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// MetricasProceso almacena estadísticas de uso de memoria de un proceso
type MetricasProceso struct {
	Asignaciones     int
	Liberaciones     int
	FallosAtendidos  int
	PromocionesCOW   int
	CopiasCOW        int
	CambiosDeProceso int
}

var metricasPorProceso map[int]*MetricasProceso

func obtenerMetricas(pid int) *MetricasProceso {
	if _, existe := metricasPorProceso[pid]; !existe {
		metricasPorProceso[pid] = &MetricasProceso{}
	}
	return metricasPorProceso[pid]
}

func registrarAsignacion(pid int) {
	obtenerMetricas(pid).Asignaciones++
}

func registrarLiberacion(pid int) {
	obtenerMetricas(pid).Liberaciones++
}

func registrarFalloAtendido(pid int) {
	obtenerMetricas(pid).FallosAtendidos++
}

func registrarPromocionCOW(pid int) {
	obtenerMetricas(pid).PromocionesCOW++
}

func registrarCopiaCOW(pid int) {
	obtenerMetricas(pid).CopiasCOW++
}

func registrarCambioDeProceso(pid int) {
	obtenerMetricas(pid).CambiosDeProceso++
}

// volcarMetricas registra las métricas acumuladas de un proceso
func volcarMetricas(pid int) {
	m := obtenerMetricas(pid)
	utils.InfoLog.Info(fmt.Sprintf(
		"(%d) - Métricas: Asignaciones (%d), Liberaciones (%d), Fallos atendidos (%d), Promociones COW (%d), Copias COW (%d), Cambios de proceso (%d)",
		pid, m.Asignaciones, m.Liberaciones, m.FallosAtendidos, m.PromocionesCOW, m.CopiasCOW, m.CambiosDeProceso))
}
