// Package memory implementa los repositorios del dominio en memoria del proceso.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en las pruebas de los casos de uso.
// Los registros se copian al guardar y al leer: quien llama nunca comparte punteros con el almacén.
package memory

import (
	"sort"
	"time"
)

// page aplica limit/offset sobre una lista ya ordenada.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// newestFirst ordena por created_at DESC, desempate por id.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) > id(items[j])
	})
}
