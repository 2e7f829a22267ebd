package main

import (
	"fmt"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// volcarEstado registra las tablas de páginas de todos los procesos (el
// actual primero, luego la cola de listos en orden) y los contadores de
// referencias de los marcos ocupados
func volcarEstado() {
	volcarProceso(procesoActual, "EXEC")
	for _, proceso := range colaReady {
		volcarProceso(proceso, "READY")
	}

	ocupados := []string{}
	for marco, referencias := range contadorReferencias {
		if referencias > 0 {
			ocupados = append(ocupados, fmt.Sprintf("%d:%d", marco, referencias))
		}
	}
	utils.InfoLog.Info("Marcos ocupados (marco:referencias)",
		"marcos", strings.Join(ocupados, " "),
		"libres", contarMarcosLibres())
}

func volcarProceso(proceso *Proceso, estado string) {
	paginas := []string{}

	for indiceDir, directorio := range proceso.Tabla.Directorios {
		if directorio == nil {
			continue
		}
		for indiceEnt, entrada := range directorio.Entradas {
			if !entrada.Valido {
				continue
			}

			vpn := indiceDir*config.EntradasPorTabla + indiceEnt
			flags := "r-"
			if entrada.Escribible {
				flags = "rw"
			}
			if entrada.Privada {
				flags += "p"
			}
			paginas = append(paginas, fmt.Sprintf("%d->%d(%s)", vpn, entrada.Marco, flags))
		}
	}

	utils.InfoLog.Info(fmt.Sprintf("(%d) - Estado: %s - Páginas: %s",
		proceso.PID, estado, strings.Join(paginas, " ")))
}
