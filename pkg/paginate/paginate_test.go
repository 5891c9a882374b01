package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/billing-api/pkg/paginate"
)

// Con 25 filas y tamaño 10: 3 páginas. La página 4 sigue siendo válida
// (offset 30, listado vacío) y reporta el TotalPages real.
func TestNew_VeinticincoFilas(t *testing.T) {
	cases := []struct {
		page       int
		offset     int
		totalPages int
	}{
		{page: 1, offset: 0, totalPages: 3},
		{page: 2, offset: 10, totalPages: 3},
		{page: 3, offset: 20, totalPages: 3},
		{page: 4, offset: 30, totalPages: 3}, // más allá de la última: sin recorte
	}
	for _, tc := range cases {
		pg := paginate.New(tc.page, paginate.DefaultPageSize, 25)
		assert.Equal(t, tc.page, pg.Number, "page %d", tc.page)
		assert.Equal(t, tc.offset, pg.Offset, "page %d", tc.page)
		assert.Equal(t, tc.totalPages, pg.TotalPages, "page %d", tc.page)
	}
}

// page <= 0 o ausente se normaliza a 1.
func TestNew_PaginaNoPositiva(t *testing.T) {
	for _, page := range []int{0, -1, -99} {
		pg := paginate.New(page, paginate.DefaultPageSize, 25)
		assert.Equal(t, 1, pg.Number)
		assert.Equal(t, 0, pg.Offset)
	}
}

// Sin filas: 0 páginas, no 1.
func TestNew_SinFilas(t *testing.T) {
	pg := paginate.New(1, paginate.DefaultPageSize, 0)
	assert.Equal(t, 0, pg.TotalPages)
	assert.Equal(t, 0, pg.Offset)
}

// Conteo exactamente divisible por el tamaño de página.
func TestNew_ConteoExacto(t *testing.T) {
	pg := paginate.New(2, paginate.DefaultPageSize, 30)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 10, pg.Offset)
}

// pageSize <= 0 usa el tamaño por defecto.
func TestNew_TamañoPorDefecto(t *testing.T) {
	pg := paginate.New(1, 0, 25)
	assert.Equal(t, paginate.DefaultPageSize, pg.Size)
	assert.Equal(t, 3, pg.TotalPages)
}
