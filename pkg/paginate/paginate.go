// Package paginate implementa el cálculo de paginación del dashboard:
// páginas 1-indexadas de tamaño fijo, con total de páginas derivado del
// conteo de filas.
package paginate

// DefaultPageSize tamaño de página fijo del listado de clientes.
const DefaultPageSize = 10

// Page resultado del cálculo: offset/limit para la consulta y total de páginas.
type Page struct {
	Number     int // página efectiva (>= 1)
	Size       int
	Offset     int
	TotalPages int
}

// New calcula la página a consultar. page <= 0 se normaliza a 1; pageSize <= 0
// usa DefaultPageSize. TotalPages = ceil(totalCount/pageSize), 0 si no hay filas.
//
// No se recorta page contra TotalPages: pedir una página más allá de la última
// devuelve un listado vacío con el TotalPages real. El cliente es quien deja
// de paginar al llegar a TotalPages.
func New(page, pageSize, totalCount int) Page {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}
	return Page{
		Number:     page,
		Size:       pageSize,
		Offset:     (page - 1) * pageSize,
		TotalPages: (totalCount + pageSize - 1) / pageSize,
	}
}
