package constants

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
