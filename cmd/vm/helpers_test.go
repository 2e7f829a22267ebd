package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// inicializarPrueba deja el simulador en su estado inicial, con la cantidad
// de marcos pedida y el proceso inicial con pid 0 en ejecución
func inicializarPrueba(t *testing.T, marcos int) {
	t.Helper()
	utils.InicializarLogger("error", "VM")
	config = &VMConfig{
		LogLevel:         "error",
		CantidadMarcos:   marcos,
		EntradasPorTabla: 16,
	}
	inicializarSistema()
}

func todosLosProcesos() []*Proceso {
	return append([]*Proceso{procesoActual}, colaReady...)
}

// verificarConsistencia comprueba las dos invariantes globales del sistema:
// el contador de cada marco es igual a la cantidad de entradas válidas que
// lo referencian (sumadas sobre todos los procesos), y ningún marco
// compartido tiene una entrada con permiso de escritura
func verificarConsistencia(t *testing.T) {
	t.Helper()

	esperado := make([]int, len(contadorReferencias))
	escribibles := make([]int, len(contadorReferencias))

	for _, proceso := range todosLosProcesos() {
		for _, directorio := range proceso.Tabla.Directorios {
			if directorio == nil {
				continue
			}
			for _, entrada := range directorio.Entradas {
				if !entrada.Valido {
					continue
				}
				esperado[entrada.Marco]++
				if entrada.Escribible {
					escribibles[entrada.Marco]++
				}
			}
		}
	}

	if diff := cmp.Diff(esperado, contadorReferencias); diff != "" {
		t.Errorf("contadores de referencias inconsistentes (-esperado +actual):\n%s", diff)
	}

	for marco, referencias := range contadorReferencias {
		if referencias > 1 && escribibles[marco] > 0 {
			t.Errorf("marco %d compartido por %d entradas pero %d son escribibles",
				marco, referencias, escribibles[marco])
		}
	}
}

// entradaDe devuelve la entrada de vpn en la tabla de un proceso
func entradaDe(t *testing.T, proceso *Proceso, vpn int) EntradaTabla {
	t.Helper()
	indiceDir, indiceEnt := descomponerVPN(vpn)
	directorio := proceso.Tabla.Directorios[indiceDir]
	if directorio == nil {
		t.Fatalf("vpn %d: el directorio %d no fue creado", vpn, indiceDir)
	}
	return directorio.Entradas[indiceEnt]
}

func asignarOK(t *testing.T, vpn int, acceso ModoAcceso) int {
	t.Helper()
	marco, err := asignarPagina(vpn, acceso)
	if err != nil {
		t.Fatalf("asignarPagina(%d, %s): %v", vpn, acceso, err)
	}
	return marco
}
