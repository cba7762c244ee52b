package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gartstein/workforce/internal/pkg/utils"
	"github.com/gartstein/workforce/internal/workforce/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DateLayout is the wire format of birth dates.
const DateLayout = "2006-01-02"

type ProvinceRequest struct {
	Name *string `json:"name"`
}

// EmployeeRequest is the body of employee create and update requests.
// On update, fields left out or null keep their stored values; an empty
// birthDate clears it.
type EmployeeRequest struct {
	Name          *string `json:"name"`
	FirstSurname  *string `json:"firstSurname"`
	SecondSurname *string `json:"secondSurname"`
	NationalID    *string `json:"nationalId"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	PostalCode    *string `json:"postalCode"`
	BirthDate     *string `json:"birthDate"`
	Province      *uint   `json:"province"`
	WorkCenters   *[]uint `json:"workCenters"`
}

// WorkCenterRequest is the body of work center create and update requests.
type WorkCenterRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Phone      *string `json:"phone"`
	Province   *uint   `json:"province"`
	Employees  *[]uint `json:"employees"`
}

type ProvinceResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name,omitempty"`
}

type WorkCenterRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EmployeeRef struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FirstSurname string `json:"firstSurname"`
}

type EmployeeResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	FirstSurname  string           `json:"firstSurname"`
	SecondSurname string           `json:"secondSurname,omitempty"`
	NationalID    string           `json:"nationalId"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	PostalCode    string           `json:"postalCode"`
	BirthDate     string           `json:"birthDate,omitempty"`
	Province      ProvinceResponse `json:"province"`
	WorkCenters   []WorkCenterRef  `json:"workCenters"`
}

type WorkCenterResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Address    string           `json:"address"`
	City       string           `json:"city"`
	PostalCode string           `json:"postalCode"`
	Phone      string           `json:"phone"`
	Province   ProvinceResponse `json:"province"`
	Employees  []EmployeeRef    `json:"employees"`
}

// ListResponse is one page of a listing.
type ListResponse[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "birthDate must use the %s layout", DateLayout)
	}
	return &d, nil
}

func (r *ProvinceRequest) toModel() *models.Province {
	return &models.Province{Name: utils.Deref(r.Name)}
}

func (r *ProvinceRequest) toUpdate(id uint) *models.ProvinceUpdate {
	return &models.ProvinceUpdate{ID: id, Name: r.Name}
}

func (r *EmployeeRequest) toModel() (*models.Employee, []uint, error) {
	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return nil, nil, err
	}
	return &models.Employee{
		Name:          utils.Deref(r.Name),
		FirstSurname:  utils.Deref(r.FirstSurname),
		SecondSurname: utils.Deref(r.SecondSurname),
		NationalID:    utils.Deref(r.NationalID),
		Address:       utils.Deref(r.Address),
		City:          utils.Deref(r.City),
		PostalCode:    utils.Deref(r.PostalCode),
		BirthDate:     birthDate,
		ProvinceID:    utils.Deref(r.Province),
	}, utils.Deref(r.WorkCenters), nil
}

func (r *EmployeeRequest) toUpdate(id uint) (*models.EmployeeUpdate, error) {
	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &models.EmployeeUpdate{
		ID:             id,
		Name:           r.Name,
		FirstSurname:   r.FirstSurname,
		SecondSurname:  r.SecondSurname,
		NationalID:     r.NationalID,
		Address:        r.Address,
		City:           r.City,
		PostalCode:     r.PostalCode,
		BirthDate:      birthDate,
		ClearBirthDate: r.BirthDate != nil && *r.BirthDate == "",
		ProvinceID:     r.Province,
		WorkCenterIDs:  r.WorkCenters,
	}, nil
}

func (r *WorkCenterRequest) toModel() (*models.WorkCenter, []uint) {
	return &models.WorkCenter{
		Name:       utils.Deref(r.Name),
		Address:    utils.Deref(r.Address),
		City:       utils.Deref(r.City),
		PostalCode: utils.Deref(r.PostalCode),
		Phone:      utils.Deref(r.Phone),
		ProvinceID: utils.Deref(r.Province),
	}, utils.Deref(r.Employees)
}

func (r *WorkCenterRequest) toUpdate(id uint) *models.WorkCenterUpdate {
	return &models.WorkCenterUpdate{
		ID:          id,
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Phone:       r.Phone,
		ProvinceID:  r.Province,
		EmployeeIDs: r.Employees,
	}
}

func provinceResponse(p *models.Province) ProvinceResponse {
	return ProvinceResponse{ID: p.ID, Name: p.Name}
}

func provinceRef(id uint, p *models.Province) ProvinceResponse {
	if p == nil {
		return ProvinceResponse{ID: id}
	}
	return provinceResponse(p)
}

func employeeResponse(emp *models.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		FirstSurname:  emp.FirstSurname,
		SecondSurname: emp.SecondSurname,
		NationalID:    emp.NationalID,
		Address:       emp.Address,
		City:          emp.City,
		PostalCode:    emp.PostalCode,
		Province:      provinceRef(emp.ProvinceID, emp.Province),
		WorkCenters:   workCenterRefs(emp.WorkCenters),
	}
	if emp.BirthDate != nil {
		resp.BirthDate = emp.BirthDate.Format(DateLayout)
	}
	return resp
}

func workCenterResponse(c *models.WorkCenter) WorkCenterResponse {
	return WorkCenterResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Province:   provinceRef(c.ProvinceID, c.Province),
		Employees:  employeeRefs(c.Employees),
	}
}

func workCenterRefs(centers []*models.WorkCenter) []WorkCenterRef {
	out := make([]WorkCenterRef, 0, len(centers))
	for _, c := range centers {
		out = append(out, WorkCenterRef{ID: c.ID, Name: c.Name})
	}
	return out
}

func employeeRefs(employees []*models.Employee) []EmployeeRef {
	out := make([]EmployeeRef, 0, len(employees))
	for _, emp := range employees {
		out = append(out, EmployeeRef{ID: emp.ID, Name: emp.Name, FirstSurname: emp.FirstSurname})
	}
	return out
}

func listResponse[M any, T any](page *models.Page[M], convert func(M) T) ListResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return ListResponse[T]{Items: items, Total: page.Total, Page: page.Page, PerPage: page.PerPage}
}

// parsePagination reads the 1-based page parameter.
func parsePagination(q url.Values) (models.Pagination, error) {
	p := models.Pagination{PerPage: models.DefaultPageSize}
	raw := q.Get("page")
	if raw == "" {
		p.Page = 1
		return p, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return p, status.Errorf(codes.InvalidArgument, "invalid page %q", raw)
	}
	p.Page = page
	return p, nil
}

func parseProvinceParam(q url.Values) (uint, error) {
	raw := q.Get("province")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "invalid province %q", raw)
	}
	return uint(id), nil
}

// parseOrder reads order[field]=asc|desc parameters in the order they
// appear in the query string. Only fields in allowed are accepted.
func parseOrder(r *http.Request, allowed ...string) ([]models.Order, error) {
	var orders []models.Order
	for _, pair := range strings.Split(r.URL.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || !strings.HasPrefix(key, "order[") || !strings.HasSuffix(key, "]") {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, "order["), "]")
		if !contains(allowed, field) {
			return nil, status.Errorf(codes.InvalidArgument, "cannot order by %q", field)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid order direction for %q", field)
		}
		switch strings.ToLower(value) {
		case "", "asc":
			orders = append(orders, models.Order{Field: field})
		case "desc":
			orders = append(orders, models.Order{Field: field, Desc: true})
		default:
			return nil, status.Errorf(codes.InvalidArgument, "invalid order direction %q", value)
		}
	}
	return orders, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func employeeFilter(r *http.Request) (models.EmployeeFilter, error) {
	q := r.URL.Query()
	page, err := parsePagination(q)
	if err != nil {
		return models.EmployeeFilter{}, err
	}
	province, err := parseProvinceParam(q)
	if err != nil {
		return models.EmployeeFilter{}, err
	}
	order, err := parseOrder(r, "name", "firstSurname", "nationalId", "province")
	if err != nil {
		return models.EmployeeFilter{}, err
	}
	return models.EmployeeFilter{
		Name:         q.Get("name"),
		FirstSurname: q.Get("firstSurname"),
		NationalID:   q.Get("nationalId"),
		PostalCode:   q.Get("postalCode"),
		ProvinceID:   province,
		Order:        order,
		Pagination:   page,
	}, nil
}

func workCenterFilter(r *http.Request) (models.WorkCenterFilter, error) {
	q := r.URL.Query()
	page, err := parsePagination(q)
	if err != nil {
		return models.WorkCenterFilter{}, err
	}
	province, err := parseProvinceParam(q)
	if err != nil {
		return models.WorkCenterFilter{}, err
	}
	order, err := parseOrder(r, "name", "address", "province")
	if err != nil {
		return models.WorkCenterFilter{}, err
	}
	return models.WorkCenterFilter{
		Name:       q.Get("name"),
		Address:    q.Get("address"),
		City:       q.Get("city"),
		Phone:      q.Get("phone"),
		PostalCode: q.Get("postalCode"),
		ProvinceID: province,
		Order:      order,
		Pagination: page,
	}, nil
}

func provinceFilter(r *http.Request) (models.ProvinceFilter, error) {
	q := r.URL.Query()
	page, err := parsePagination(q)
	if err != nil {
		return models.ProvinceFilter{}, err
	}
	return models.ProvinceFilter{Name: q.Get("name"), Pagination: page}, nil
}
