package db

import (
	"context"
	"errors"

	dbmodels "github.com/gartstein/workforce/internal/workforce/db/models"
	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateProvince(ctx context.Context, province *models.Province) error {
	row := &dbmodels.Province{Name: province.Name}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	province.ID = row.ID
	return nil
}

func (r *Repository) GetProvince(ctx context.Context, id uint) (*models.Province, error) {
	var row dbmodels.Province
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return toProvince(&row), nil
}

func (r *Repository) ListProvinces(ctx context.Context, filter models.ProvinceFilter) (*models.Page[*models.Province], error) {
	page := filter.Pagination.Normalize()

	q := r.db.WithContext(ctx).Model(&dbmodels.Province{})
	q = partial(q, "name", filter.Name).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []dbmodels.Province
	if err := orderBy(q, nil, nil).Offset(page.Offset()).Limit(page.PerPage).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*models.Province, 0, len(rows))
	for i := range rows {
		items = append(items, toProvince(&rows[i]))
	}
	return &models.Page[*models.Province]{Items: items, Total: total, Page: page.Page, PerPage: page.PerPage}, nil
}

func (r *Repository) UpdateProvince(ctx context.Context, province *models.Province) error {
	result := r.db.WithContext(ctx).Model(&dbmodels.Province{ID: province.ID}).
		Updates(map[string]any{"name": province.Name})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteProvince(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Province{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// ProvinceInUse reports whether any employee or work center references id.
func (r *Repository) ProvinceInUse(ctx context.Context, id uint) (bool, error) {
	for _, model := range []any{&dbmodels.Employee{}, &dbmodels.WorkCenter{}} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Where("province_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
