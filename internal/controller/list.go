package controller

import (
	"strings"
	"sync"
)

// FiltroTodos es el valor centinela de un filtro desactivado.
const FiltroTodos = "todos"

// ListConfig configura un ListController para una colección de T.
type ListConfig[T any] struct {
	// FetchItems trae la colección completa del store.
	FetchItems func() ([]T, error)
	// CalculateStats recalcula las estadísticas derivadas a partir del set
	// completo recién traído; el mapa etiqueta -> conteo lo define cada
	// entidad.
	CalculateStats func(items []T) map[string]int
	// SearchFields son rutas con puntos (posiblemente anidadas, por tag
	// json) que participan en la búsqueda de texto libre.
	SearchFields []string
}

// ListController posee el ciclo fetch-ejecutar-almacenar de una colección.
// Un Refresh mientras otro está en vuelo no se de-duplica: cada fetch lleva
// un número de generación y los resultados de generaciones viejas se
// descartan al llegar.
type ListController[T any] struct {
	cfg ListConfig[T]

	mu       sync.Mutex
	gen      uint64
	items    []T
	stats    map[string]int
	filtros  map[string]string
	filterFn map[string]func(item T, valor string) bool
	loading  bool
	err      error
}

func NewList[T any](cfg ListConfig[T]) *ListController[T] {
	return &ListController[T]{
		cfg:      cfg,
		stats:    map[string]int{},
		filtros:  map[string]string{"busqueda": ""},
		filterFn: map[string]func(T, string) bool{},
	}
}

// Refresh vuelve a ejecutar el fetch. Es seguro llamarlo repetidamente; los
// datos anteriores siguen visibles hasta que el nuevo fetch resuelve, y un
// fallo los conserva (política stale-but-available).
func (c *ListController[T]) Refresh() error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.mu.Unlock()

	items, err := c.cfg.FetchItems()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Resultado de una generación vieja: ya hay un fetch más nuevo en vuelo
	// o resuelto, este se descarta.
	if gen != c.gen {
		return nil
	}

	c.loading = false
	if err != nil {
		c.err = err
		return err
	}

	c.err = nil
	c.items = items
	if c.cfg.CalculateStats != nil {
		c.stats = c.cfg.CalculateStats(items)
	} else {
		c.stats = map[string]int{}
	}
	return nil
}

func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *ListController[T]) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := make(map[string]int, len(c.stats))
	for k, v := range c.stats {
		stats[k] = v
	}
	return stats
}

func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// RegisterFiltro instala un filtro propio de la entidad con su valor por
// defecto "todos".
func (c *ListController[T]) RegisterFiltro(clave string, fn func(item T, valor string) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros[clave] = FiltroTodos
	c.filterFn[clave] = fn
}

func (c *ListController[T]) SetFiltro(clave, valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filtros[clave] = valor
}

func (c *ListController[T]) Filtro(clave string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtros[clave]
}

// ItemsFiltrados aplica la búsqueda libre sobre SearchFields y los filtros
// registrados cuyo valor no sea el centinela "todos".
func (c *ListController[T]) ItemsFiltrados() []T {
	c.mu.Lock()
	items := c.items
	busqueda := strings.ToLower(strings.TrimSpace(c.filtros["busqueda"]))
	activos := map[string]string{}
	fns := map[string]func(T, string) bool{}
	for clave, valor := range c.filtros {
		if clave == "busqueda" || valor == FiltroTodos {
			continue
		}
		if fn, ok := c.filterFn[clave]; ok {
			activos[clave] = valor
			fns[clave] = fn
		}
	}
	c.mu.Unlock()

	var filtrados []T
	for _, item := range items {
		if busqueda != "" && !c.coincide(item, busqueda) {
			continue
		}
		ok := true
		for clave, valor := range activos {
			if !fns[clave](item, valor) {
				ok = false
				break
			}
		}
		if ok {
			filtrados = append(filtrados, item)
		}
	}
	return filtrados
}

func (c *ListController[T]) coincide(item T, busqueda string) bool {
	for _, campo := range c.cfg.SearchFields {
		valor, ok := valorDeCampo(item, campo)
		if ok && strings.Contains(strings.ToLower(valor), busqueda) {
			return true
		}
	}
	return false
}
