package main

import (
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// descomponerVPN separa un número de página virtual en índice de directorio
// e índice de entrada dentro del directorio
func descomponerVPN(vpn int) (int, int) {
	return vpn / config.EntradasPorTabla, vpn % config.EntradasPorTabla
}

// nuevoDirectorio crea un directorio con todas sus entradas invalidadas
func nuevoDirectorio() *DirectorioPaginas {
	directorio := &DirectorioPaginas{
		Entradas: make([]EntradaTabla, config.EntradasPorTabla),
	}
	for i := range directorio.Entradas {
		directorio.Entradas[i].Marco = marcoInvalido
	}
	return directorio
}

// directorio devuelve el directorio del índice pedido, creándolo si no existe
func (t *TablaPaginas) directorio(indice int) *DirectorioPaginas {
	if t.Directorios[indice] == nil {
		t.Directorios[indice] = nuevoDirectorio()
	}
	return t.Directorios[indice]
}

// asignarPagina mapea vpn a un marco libre en la tabla del proceso actual.
// Devuelve el marco asignado, o ErrSinMarcosLibres sin mutar ningún estado
// si toda la memoria física está ocupada. Una página pedida solo para
// lectura nunca queda marcada como privada: no podrá recuperar permiso de
// escritura sin una nueva asignación explícita.
func asignarPagina(vpn int, acceso ModoAcceso) (int, error) {
	marco, err := buscarMarcoLibre()
	if err != nil {
		return marcoInvalido, err
	}

	indiceDir, indiceEnt := descomponerVPN(vpn)
	directorio := procesoActual.Tabla.directorio(indiceDir)

	contadorReferencias[marco] = 1

	escribible := acceso == AccesoEscritura
	directorio.Entradas[indiceEnt] = EntradaTabla{
		Valido:     true,
		Escribible: escribible,
		Privada:    escribible,
		Marco:      marco,
	}

	registrarAsignacion(procesoActual.PID)
	utils.InfoLog.Info("Página asignada",
		"pid", procesoActual.PID,
		"vpn", vpn,
		"marco", marco,
		"acceso", acceso.String())

	return marco, nil
}

// liberarPagina desmapea vpn en la tabla del proceso actual y descuenta la
// referencia sobre su marco, que puede quedar libre para cualquier proceso.
// El que llama garantiza que la entrada es válida.
func liberarPagina(vpn int) {
	indiceDir, indiceEnt := descomponerVPN(vpn)
	entrada := &procesoActual.Tabla.Directorios[indiceDir].Entradas[indiceEnt]

	marco := entrada.Marco
	contadorReferencias[marco]--
	*entrada = EntradaTabla{Marco: marcoInvalido}

	registrarLiberacion(procesoActual.PID)
	utils.InfoLog.Info("Página liberada",
		"pid", procesoActual.PID,
		"vpn", vpn,
		"marco", marco,
		"referencias_restantes", contadorReferencias[marco])
}
