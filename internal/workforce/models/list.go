package models

// DefaultPageSize is the number of items returned per page.
const DefaultPageSize = 30

// Order is one ORDER BY term. Field is the API name of the field.
type Order struct {
	Field string
	Desc  bool
}

// Pagination selects a 1-based page.
type Pagination struct {
	Page    int
	PerPage int
}

// Normalize fills in defaults for unset or out-of-range values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPageSize
	}
	return p
}

// Offset is the number of rows to skip for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ProvinceFilter narrows a province listing. Name is a partial match.
type ProvinceFilter struct {
	Name string
	Pagination
}

// EmployeeFilter narrows an employee listing. Name, FirstSurname and
// NationalID are partial matches; PostalCode and ProvinceID are exact.
type EmployeeFilter struct {
	Name         string
	FirstSurname string
	NationalID   string
	PostalCode   string
	ProvinceID   uint
	Order        []Order
	Pagination
}

// WorkCenterFilter narrows a work center listing. Name, Address, City and
// Phone are partial matches; PostalCode and ProvinceID are exact.
type WorkCenterFilter struct {
	Name       string
	Address    string
	City       string
	Phone      string
	PostalCode string
	ProvinceID uint
	Order      []Order
	Pagination
}

// Page is one page of a listing.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}
