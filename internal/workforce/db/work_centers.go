package db

import (
	"context"
	"errors"

	dbmodels "github.com/gartstein/workforce/internal/workforce/db/models"
	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/models"
	"gorm.io/gorm"
)

var workCenterOrderColumns = map[string]string{
	"name":     "name",
	"address":  "address",
	"province": "province_id",
}

func (r *Repository) CreateWorkCenter(ctx context.Context, center *models.WorkCenter) error {
	row := fromWorkCenter(center)
	row.ID = 0
	if err := r.db.WithContext(ctx).Omit("Province", "Employees.*").Create(row).Error; err != nil {
		return err
	}
	center.ID = row.ID
	return nil
}

func (r *Repository) GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error) {
	var row dbmodels.WorkCenter
	result := r.db.WithContext(ctx).
		Preload("Province").
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return toWorkCenter(&row), nil
}

// FindWorkCenters returns the work centers among ids that exist, without
// their associations.
func (r *Repository) FindWorkCenters(ctx context.Context, ids []uint) ([]*models.WorkCenter, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []dbmodels.WorkCenter
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.WorkCenter, 0, len(rows))
	for i := range rows {
		out = append(out, workCenterScalars(&rows[i]))
	}
	return out, nil
}

func (r *Repository) ListWorkCenters(ctx context.Context, filter models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error) {
	page := filter.Pagination.Normalize()

	q := r.db.WithContext(ctx).Model(&dbmodels.WorkCenter{})
	q = partial(q, "name", filter.Name)
	q = partial(q, "address", filter.Address)
	q = partial(q, "city", filter.City)
	q = partial(q, "phone", filter.Phone)
	q = exact(q, "postal_code", filter.PostalCode)
	q = exact(q, "province_id", filter.ProvinceID)
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []dbmodels.WorkCenter
	err := orderBy(q, filter.Order, workCenterOrderColumns).
		Preload("Province").
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*models.WorkCenter, 0, len(rows))
	for i := range rows {
		items = append(items, toWorkCenter(&rows[i]))
	}
	return &models.Page[*models.WorkCenter]{Items: items, Total: total, Page: page.Page, PerPage: page.PerPage}, nil
}

// UpdateWorkCenter writes the scalar fields of center and replaces its
// join rows with center's current employees, in one transaction.
func (r *Repository) UpdateWorkCenter(ctx context.Context, center *models.WorkCenter) error {
	row := fromWorkCenter(center)
	return r.WithTransaction(ctx, func(tx *Repository) error {
		result := tx.db.Model(&dbmodels.WorkCenter{ID: row.ID}).Updates(map[string]any{
			"name":        row.Name,
			"address":     row.Address,
			"city":        row.City,
			"postal_code": row.PostalCode,
			"phone":       row.Phone,
			"province_id": row.ProvinceID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return tx.replaceWorkCenterEmployees(&dbmodels.WorkCenter{ID: row.ID}, row.Employees)
	})
}

func (r *Repository) replaceWorkCenterEmployees(owner *dbmodels.WorkCenter, employees []dbmodels.Employee) error {
	assoc := r.db.Model(owner).Omit("Employees.*").Association("Employees")
	if len(employees) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(employees)
}

// DeleteWorkCenter removes the work center and its join rows.
func (r *Repository) DeleteWorkCenter(ctx context.Context, id uint) error {
	return r.WithTransaction(ctx, func(tx *Repository) error {
		if err := tx.db.Model(&dbmodels.WorkCenter{ID: id}).Association("Employees").Clear(); err != nil {
			return err
		}
		result := tx.db.Delete(&dbmodels.WorkCenter{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		return nil
	})
}
