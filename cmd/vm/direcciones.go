package main

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

var (
	// ErrDireccionInvalida indica un vpn fuera del espacio virtual
	ErrDireccionInvalida = errors.New("dirección fuera del espacio virtual")
	// ErrFalloIrresoluble indica una escritura sobre un mapeo de solo lectura
	ErrFalloIrresoluble = errors.New("fallo de página irresoluble")

	// Causas internas de fallo de traducción
	errEntradaInvalida     = errors.New("entrada no válida")
	errSinPermisoEscritura = errors.New("entrada sin permiso de escritura")
)

// espacioVirtual devuelve la cantidad de páginas virtuales direccionables
func espacioVirtual() int {
	return config.EntradasPorTabla * config.EntradasPorTabla
}

// traducirDireccion resuelve vpn contra la tabla apuntada por el PTBR.
// Devuelve el marco en caso de acierto; en caso contrario la causa del
// fallo, que el front end usa para decidir cómo resolverlo.
func traducirDireccion(vpn int, acceso ModoAcceso) (int, error) {
	if vpn < 0 || vpn >= espacioVirtual() {
		return marcoInvalido, fmt.Errorf("%w: vpn %d", ErrDireccionInvalida, vpn)
	}

	indiceDir, indiceEnt := descomponerVPN(vpn)

	directorio := ptbr.Directorios[indiceDir]
	if directorio == nil {
		return marcoInvalido, errEntradaInvalida
	}

	entrada := directorio.Entradas[indiceEnt]
	if !entrada.Valido {
		return marcoInvalido, errEntradaInvalida
	}
	if acceso == AccesoEscritura && !entrada.Escribible {
		return marcoInvalido, errSinPermisoEscritura
	}

	return entrada.Marco, nil
}

// accederPagina simula un acceso de la CPU a vpn. La traducción se intenta
// primero; las operaciones del núcleo se invocan únicamente como respuesta a
// un fallo de traducción. Un fallo por entrada inválida se resuelve con
// asignación por demanda; una escritura denegada, con atenderFallo.
func accederPagina(vpn int, acceso ModoAcceso) (int, error) {
	marco, err := traducirDireccion(vpn, acceso)
	if err == nil {
		return marco, nil
	}

	switch {
	case errors.Is(err, errEntradaInvalida):
		return asignarPagina(vpn, acceso)

	case errors.Is(err, errSinPermisoEscritura):
		if atenderFallo(vpn, acceso) {
			registrarFalloAtendido(procesoActual.PID)
			return traducirDireccion(vpn, acceso)
		}

		indiceDir, indiceEnt := descomponerVPN(vpn)
		if !ptbr.Directorios[indiceDir].Entradas[indiceEnt].Privada {
			utils.ErrorLog.Error("Acceso inválido",
				"pid", procesoActual.PID,
				"vpn", vpn,
				"acceso", acceso.String())
			return marcoInvalido, fmt.Errorf("%w: vpn %d", ErrFalloIrresoluble, vpn)
		}
		return marcoInvalido, ErrSinMarcosLibres

	default:
		return marcoInvalido, err
	}
}
