package main

import (
	"errors"
	"testing"
)

func TestBuscarMarcoLibreDevuelveElMenorIndice(t *testing.T) {
	inicializarPrueba(t, 4)
	contadorReferencias = []int{1, 0, 2, 0}

	marco, err := buscarMarcoLibre()
	if err != nil {
		t.Fatalf("buscarMarcoLibre: %v", err)
	}
	if marco != 1 {
		t.Errorf("marco = %d, se esperaba 1 (el menor índice libre)", marco)
	}
}

func TestBuscarMarcoLibreSinLibres(t *testing.T) {
	inicializarPrueba(t, 3)
	contadorReferencias = []int{1, 2, 1}

	marco, err := buscarMarcoLibre()
	if !errors.Is(err, ErrSinMarcosLibres) {
		t.Fatalf("err = %v, se esperaba ErrSinMarcosLibres", err)
	}
	if marco != marcoInvalido {
		t.Errorf("marco = %d, se esperaba marcoInvalido", marco)
	}
}

func TestContarMarcosLibres(t *testing.T) {
	inicializarPrueba(t, 4)

	if libres := contarMarcosLibres(); libres != 4 {
		t.Fatalf("libres = %d, se esperaba 4", libres)
	}

	contadorReferencias = []int{1, 0, 3, 0}
	if libres := contarMarcosLibres(); libres != 2 {
		t.Errorf("libres = %d, se esperaba 2", libres)
	}
}
