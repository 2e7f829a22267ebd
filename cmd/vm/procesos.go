package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// nuevoProceso crea un proceso con su tabla de páginas vacía
func nuevoProceso(pid int) *Proceso {
	return &Proceso{
		PID: pid,
		Tabla: TablaPaginas{
			Directorios: make([]*DirectorioPaginas, config.EntradasPorTabla),
		},
	}
}

// cambiarProceso pone en ejecución al proceso pid. Si está en la cola de
// listos lo desencola y encola al actual; si no existe, lo crea como fork
// copy-on-write del proceso actual. PIDs duplicados son una violación de
// contrato del que llama, no se verifican.
func cambiarProceso(pid int) {
	for i, proceso := range colaReady {
		if proceso.PID != pid {
			continue
		}

		colaReady = append(colaReady, procesoActual)
		colaReady = append(colaReady[:i], colaReady[i+1:]...)
		instalarProceso(proceso)
		return
	}

	hijo := nuevoProceso(pid)
	duplicarTablaCOW(procesoActual, hijo)

	// El recorrido completo de la tabla ocurre antes de tocar la cola y el
	// proceso actual: la tabla del padre sigue siendo la autoritativa
	// mientras se copia.
	colaReady = append(colaReady, procesoActual)
	instalarProceso(hijo)
}

// instalarProceso reasigna el proceso en ejecución y el registro base de la
// tabla de páginas. Es el único punto del simulador que los muta.
func instalarProceso(proceso *Proceso) {
	anterior := procesoActual.PID
	procesoActual = proceso
	ptbr = &proceso.Tabla

	registrarCambioDeProceso(proceso.PID)
	utils.InfoLog.Info(fmt.Sprintf("(%d) - Pasa a ejecución - Anterior: %d - En cola: %d",
		proceso.PID, anterior, len(colaReady)))
}

// duplicarTablaCOW copia en la tabla del hijo cada entrada válida del padre.
// Marco y Privada se copian tal cual; ambas entradas quedan sin permiso de
// escritura aunque el padre lo tuviera, y el marco compartido suma una
// referencia. La primera escritura de cualquiera de los dos dispara la
// división o la promoción en atenderFallo.
func duplicarTablaCOW(padre, hijo *Proceso) {
	paginasCompartidas := 0

	for indiceDir, directorio := range padre.Tabla.Directorios {
		if directorio == nil {
			continue
		}

		for indiceEnt := range directorio.Entradas {
			entrada := &directorio.Entradas[indiceEnt]
			if !entrada.Valido {
				continue
			}

			directorioHijo := hijo.Tabla.directorio(indiceDir)

			entrada.Escribible = false
			directorioHijo.Entradas[indiceEnt] = EntradaTabla{
				Valido:  true,
				Privada: entrada.Privada,
				Marco:   entrada.Marco,
			}
			contadorReferencias[entrada.Marco]++
			paginasCompartidas++
		}
	}

	utils.InfoLog.Info("Tabla duplicada con copy-on-write",
		"pid_padre", padre.PID,
		"pid_hijo", hijo.PID,
		"paginas_compartidas", paginasCompartidas)
}
