package dtos

// Page envuelve un listado paginado junto con el filtro de búsqueda aplicado.
type Page[T any] struct {
	Data       []T    `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	TotalPages int    `json:"totalPages"`
	Search     string `json:"search"`
}
