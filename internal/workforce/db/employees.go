package db

import (
	"context"
	"errors"

	dbmodels "github.com/gartstein/workforce/internal/workforce/db/models"
	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/models"
	"gorm.io/gorm"
)

var employeeOrderColumns = map[string]string{
	"name":         "name",
	"firstSurname": "first_surname",
	"nationalId":   "national_id",
	"province":     "province_id",
}

// CreateEmployee stores emp together with the join rows of its work
// centers, which must already exist.
func (r *Repository) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	row := fromEmployee(emp)
	row.ID = 0
	if err := r.db.WithContext(ctx).Omit("Province", "WorkCenters.*").Create(row).Error; err != nil {
		return err
	}
	emp.ID = row.ID
	return nil
}

// GetEmployee loads an employee with its province and work centers.
func (r *Repository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var row dbmodels.Employee
	result := r.db.WithContext(ctx).
		Preload("Province").
		Preload("WorkCenters", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return toEmployee(&row), nil
}

// FindEmployees returns the employees among ids that exist, without their
// associations.
func (r *Repository) FindEmployees(ctx context.Context, ids []uint) ([]*models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []dbmodels.Employee
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Employee, 0, len(rows))
	for i := range rows {
		out = append(out, employeeScalars(&rows[i]))
	}
	return out, nil
}

func (r *Repository) ListEmployees(ctx context.Context, filter models.EmployeeFilter) (*models.Page[*models.Employee], error) {
	page := filter.Pagination.Normalize()

	q := r.db.WithContext(ctx).Model(&dbmodels.Employee{})
	q = partial(q, "name", filter.Name)
	q = partial(q, "first_surname", filter.FirstSurname)
	q = partial(q, "national_id", filter.NationalID)
	q = exact(q, "postal_code", filter.PostalCode)
	q = exact(q, "province_id", filter.ProvinceID)
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []dbmodels.Employee
	err := orderBy(q, filter.Order, employeeOrderColumns).
		Preload("Province").
		Preload("WorkCenters", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*models.Employee, 0, len(rows))
	for i := range rows {
		items = append(items, toEmployee(&rows[i]))
	}
	return &models.Page[*models.Employee]{Items: items, Total: total, Page: page.Page, PerPage: page.PerPage}, nil
}

// UpdateEmployee writes the scalar fields of emp and replaces its join rows
// with emp's current work centers, in one transaction.
func (r *Repository) UpdateEmployee(ctx context.Context, emp *models.Employee) error {
	row := fromEmployee(emp)
	return r.WithTransaction(ctx, func(tx *Repository) error {
		result := tx.db.Model(&dbmodels.Employee{ID: row.ID}).Updates(map[string]any{
			"name":           row.Name,
			"first_surname":  row.FirstSurname,
			"second_surname": row.SecondSurname,
			"national_id":    row.NationalID,
			"address":        row.Address,
			"city":           row.City,
			"postal_code":    row.PostalCode,
			"birth_date":     row.BirthDate,
			"province_id":    row.ProvinceID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return tx.replaceEmployeeWorkCenters(&dbmodels.Employee{ID: row.ID}, row.WorkCenters)
	})
}

// LinkEmployeeWorkCenter inserts the join row of one pair. An existing row
// is left as is.
func (r *Repository) LinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error {
	return r.db.WithContext(ctx).
		Model(&dbmodels.Employee{ID: employeeID}).
		Omit("WorkCenters.*").
		Association("WorkCenters").
		Append(&dbmodels.WorkCenter{ID: centerID})
}

// UnlinkEmployeeWorkCenter deletes the join row of one pair, if any.
func (r *Repository) UnlinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error {
	return r.db.WithContext(ctx).
		Model(&dbmodels.Employee{ID: employeeID}).
		Association("WorkCenters").
		Delete(&dbmodels.WorkCenter{ID: centerID})
}

func (r *Repository) replaceEmployeeWorkCenters(owner *dbmodels.Employee, centers []dbmodels.WorkCenter) error {
	assoc := r.db.Model(owner).Omit("WorkCenters.*").Association("WorkCenters")
	if len(centers) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(centers)
}

// DeleteEmployee removes the employee and its join rows.
func (r *Repository) DeleteEmployee(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(tx *Repository) error {
		if err := tx.db.Model(&dbmodels.Employee{ID: id}).Association("WorkCenters").Clear(); err != nil {
			return err
		}
		result := tx.db.Delete(&dbmodels.Employee{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
