package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// ejecutarSimulacion procesa línea por línea los comandos del script o de la
// entrada estándar. Un acceso fallido se registra y la simulación continúa.
//
// Comandos:
//
//	L <vpn>        lectura
//	E <vpn>        escritura
//	A <vpn> <L|E>  asignación explícita
//	F <vpn>        liberar página
//	C <pid>        cambiar de proceso (fork si el pid no existe)
//	D              volcar estado y métricas
//	S              salir
//	#              comentario
func ejecutarSimulacion(entrada io.Reader) {
	scanner := bufio.NewScanner(entrada)

	for scanner.Scan() {
		linea := strings.TrimSpace(scanner.Text())
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}

		if !ejecutarComando(linea) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		utils.ErrorLog.Error("Error leyendo comandos", "error", err)
	}
}

// ejecutarComando interpreta un comando. Devuelve false cuando la
// simulación debe terminar.
func ejecutarComando(linea string) bool {
	partes := strings.Fields(linea)
	operacion := strings.ToUpper(partes[0])

	switch operacion {
	case "L", "E":
		vpn, ok := leerEntero(partes, 1, "vpn")
		if !ok {
			break
		}
		acceso := AccesoLectura
		if operacion == "E" {
			acceso = AccesoEscritura
		}

		utils.AplicarRetardo("acceso a memoria", config.RetardoMemoria)
		marco, err := accederPagina(vpn, acceso)
		if err != nil {
			utils.ErrorLog.Error("Acceso no servido",
				"pid", procesoActual.PID, "vpn", vpn, "acceso", acceso.String(), "error", err)
			break
		}
		utils.InfoLog.Info("Acceso servido",
			"pid", procesoActual.PID, "vpn", vpn, "acceso", acceso.String(), "marco", marco)

	case "A":
		vpn, ok := leerEntero(partes, 1, "vpn")
		if !ok {
			break
		}
		acceso := AccesoLectura
		if len(partes) > 2 && strings.ToUpper(partes[2]) == "E" {
			acceso = AccesoEscritura
		}
		if vpn < 0 || vpn >= espacioVirtual() {
			utils.ErrorLog.Error("VPN fuera de rango", "vpn", vpn)
			break
		}
		if _, err := asignarPagina(vpn, acceso); err != nil {
			utils.ErrorLog.Error("Asignación fallida", "vpn", vpn, "error", err)
		}

	case "F":
		vpn, ok := leerEntero(partes, 1, "vpn")
		if !ok {
			break
		}
		// liberarPagina exige una entrada válida; el driver lo garantiza
		if _, err := traducirDireccion(vpn, AccesoLectura); err != nil {
			utils.ErrorLog.Error("No se puede liberar una página no mapeada", "vpn", vpn)
			break
		}
		liberarPagina(vpn)

	case "C":
		pid, ok := leerEntero(partes, 1, "pid")
		if !ok {
			break
		}
		cambiarProceso(pid)

	case "D":
		volcarEstado()
		volcarMetricas(procesoActual.PID)

	case "S":
		utils.InfoLog.Info("Fin de la simulación solicitado")
		return false

	default:
		utils.ErrorLog.Error("Comando desconocido", "comando", operacion)
	}

	return true
}

func leerEntero(partes []string, posicion int, nombre string) (int, bool) {
	if len(partes) <= posicion {
		utils.ErrorLog.Error("Falta parámetro", "parametro", nombre, "comando", partes[0])
		return 0, false
	}
	valor, err := strconv.Atoi(partes[posicion])
	if err != nil {
		utils.ErrorLog.Error("Parámetro inválido", "parametro", nombre, "valor", partes[posicion])
		return 0, false
	}
	return valor, true
}
