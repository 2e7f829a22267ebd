package main

import (
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// atenderFallo intenta resolver un fallo de escritura sobre una entrada
// válida pero no escribible del proceso actual. Devuelve true si el fallo
// quedó resuelto y el acceso puede reintentarse.
//
// Una entrada privada cuyo marco ya no comparte con nadie recupera el
// permiso de escritura en el lugar, sin copiar nada. Si el marco sigue
// compartido se hace la división copy-on-write: la entrada pasa a un marco
// nuevo con una única referencia y el marco viejo descuenta la suya.
func atenderFallo(vpn int, acceso ModoAcceso) bool {
	if acceso != AccesoEscritura {
		return false
	}

	indiceDir, indiceEnt := descomponerVPN(vpn)
	entrada := &procesoActual.Tabla.Directorios[indiceDir].Entradas[indiceEnt]

	if !entrada.Privada {
		utils.ErrorLog.Error("Escritura sobre página de solo lectura",
			"pid", procesoActual.PID,
			"vpn", vpn,
			"marco", entrada.Marco)
		return false
	}

	if contadorReferencias[entrada.Marco] == 1 {
		// Único dueño: promoción en el lugar
		entrada.Escribible = true
		registrarPromocionCOW(procesoActual.PID)
		utils.InfoLog.Info("Escritura recuperada sin copia",
			"pid", procesoActual.PID,
			"vpn", vpn,
			"marco", entrada.Marco)
		return true
	}

	nuevoMarco, err := buscarMarcoLibre()
	if err != nil {
		return false
	}

	contadorReferencias[nuevoMarco] = 1
	contadorReferencias[entrada.Marco]--

	marcoAnterior := entrada.Marco
	entrada.Marco = nuevoMarco
	entrada.Escribible = true

	registrarCopiaCOW(procesoActual.PID)
	utils.InfoLog.Info("División copy-on-write",
		"pid", procesoActual.PID,
		"vpn", vpn,
		"marco_anterior", marcoAnterior,
		"marco_nuevo", nuevoMarco,
		"referencias_anterior", contadorReferencias[marcoAnterior])

	return true
}
