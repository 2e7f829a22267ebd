package main

// marcoInvalido marca una entrada que no referencia ningún marco físico.
// El campo Valido sigue siendo la única autoridad sobre si Marco tiene
// sentido; el centinela evita confundir una entrada liberada con el marco 0.
const marcoInvalido = -1

// ModoAcceso indica la intención de un acceso a memoria
type ModoAcceso int

const (
	AccesoLectura ModoAcceso = iota
	AccesoEscritura
)

func (m ModoAcceso) String() string {
	if m == AccesoEscritura {
		return "ESCRITURA"
	}
	return "LECTURA"
}

// EntradaTabla representa una entrada del último nivel de la tabla de páginas
type EntradaTabla struct {
	Valido     bool // La entrada mapea un marco físico
	Escribible bool // La página admite escrituras
	Privada    bool // Provista con intención de escritura; puede recuperar exclusividad vía COW
	Marco      int  // Marco físico referenciado (marcoInvalido si !Valido)
}

// DirectorioPaginas agrupa las entradas de un rango contiguo de páginas virtuales
type DirectorioPaginas struct {
	Entradas []EntradaTabla
}

// TablaPaginas es la tabla de páginas de dos niveles de un proceso. Los
// directorios se crean en el primer uso y nunca se comparten entre procesos,
// aunque los marcos que referencian sí puedan estarlo.
type TablaPaginas struct {
	Directorios []*DirectorioPaginas
}

// Proceso representa un proceso del simulador con su tabla de páginas propia
type Proceso struct {
	PID   int
	Tabla TablaPaginas
}

// Estado global del simulador. Un único hilo lógico de control: una sola
// operación muta este estado a la vez, invocada secuencialmente por el driver.
var (
	contadorReferencias []int         // Referencias por marco físico; 0 = marco libre
	colaReady           []*Proceso    // Procesos listos, FIFO
	procesoActual       *Proceso      // Proceso en ejecución (nunca está en colaReady)
	ptbr                *TablaPaginas // Tabla que recorre la MMU; siempre &procesoActual.Tabla
)
