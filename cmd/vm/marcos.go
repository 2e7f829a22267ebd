package main

import (
	"errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorMV/utils"
)

// ErrSinMarcosLibres indica que ningún marco físico tiene cero referencias
var ErrSinMarcosLibres = errors.New("no hay marcos libres disponibles")

// buscarMarcoLibre devuelve el marco libre de menor índice. La política de
// menor índice primero es parte del contrato del simulador, no una
// optimización. No muta los contadores: el que reclama el marco lo hace.
func buscarMarcoLibre() (int, error) {
	for marco, referencias := range contadorReferencias {
		if referencias == 0 {
			return marco, nil
		}
	}

	utils.ErrorLog.Error("No hay marcos libres disponibles", "total_marcos", len(contadorReferencias))
	return marcoInvalido, ErrSinMarcosLibres
}

// contarMarcosLibres cuenta los marcos con cero referencias
func contarMarcosLibres() int {
	libres := 0
	for _, referencias := range contadorReferencias {
		if referencias == 0 {
			libres++
		}
	}
	return libres
}
