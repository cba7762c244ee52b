package db

import (
	dbmodels "github.com/gartstein/workforce/internal/workforce/db/models"
	"github.com/gartstein/workforce/internal/workforce/models"
)

func toProvince(row *dbmodels.Province) *models.Province {
	return &models.Province{ID: row.ID, Name: row.Name}
}

func loadedProvince(row *dbmodels.Province) *models.Province {
	if row.ID == 0 {
		return nil
	}
	return toProvince(row)
}

// toEmployee converts row and the work centers preloaded with it. The
// resulting graph is symmetric: every center lists the employee back.
func toEmployee(row *dbmodels.Employee) *models.Employee {
	emp := employeeScalars(row)
	for i := range row.WorkCenters {
		emp.AddWorkCenter(workCenterScalars(&row.WorkCenters[i]))
	}
	return emp
}

// toWorkCenter converts row and the employees preloaded with it.
func toWorkCenter(row *dbmodels.WorkCenter) *models.WorkCenter {
	center := workCenterScalars(row)
	for i := range row.Employees {
		center.AddEmployee(employeeScalars(&row.Employees[i]))
	}
	return center
}

func employeeScalars(row *dbmodels.Employee) *models.Employee {
	emp := &models.Employee{
		ID:           row.ID,
		Name:         row.Name,
		FirstSurname: row.FirstSurname,
		NationalID:   row.NationalID,
		Address:      row.Address,
		City:         row.City,
		PostalCode:   row.PostalCode,
		BirthDate:    row.BirthDate,
		ProvinceID:   row.ProvinceID,
		Province:     loadedProvince(&row.Province),
	}
	if row.SecondSurname != nil {
		emp.SecondSurname = *row.SecondSurname
	}
	return emp
}

func workCenterScalars(row *dbmodels.WorkCenter) *models.WorkCenter {
	return &models.WorkCenter{
		ID:         row.ID,
		Name:       row.Name,
		Address:    row.Address,
		City:       row.City,
		PostalCode: row.PostalCode,
		Phone:      row.Phone,
		ProvinceID: row.ProvinceID,
		Province:   loadedProvince(&row.Province),
	}
}

func fromEmployee(emp *models.Employee) *dbmodels.Employee {
	row := &dbmodels.Employee{
		ID:           emp.ID,
		Name:         emp.Name,
		FirstSurname: emp.FirstSurname,
		NationalID:   emp.NationalID,
		Address:      emp.Address,
		City:         emp.City,
		PostalCode:   emp.PostalCode,
		BirthDate:    emp.BirthDate,
		ProvinceID:   emp.ProvinceID,
		WorkCenters:  workCenterRefs(emp.WorkCenterIDs()),
	}
	if emp.SecondSurname != "" {
		second := emp.SecondSurname
		row.SecondSurname = &second
	}
	return row
}

func fromWorkCenter(center *models.WorkCenter) *dbmodels.WorkCenter {
	return &dbmodels.WorkCenter{
		ID:         center.ID,
		Name:       center.Name,
		Address:    center.Address,
		City:       center.City,
		PostalCode: center.PostalCode,
		Phone:      center.Phone,
		ProvinceID: center.ProvinceID,
		Employees:  employeeRefs(center.EmployeeIDs()),
	}
}

// workCenterRefs builds key-only rows, enough for gorm to write join rows.
func workCenterRefs(ids []uint) []dbmodels.WorkCenter {
	refs := make([]dbmodels.WorkCenter, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, dbmodels.WorkCenter{ID: id})
	}
	return refs
}

func employeeRefs(ids []uint) []dbmodels.Employee {
	refs := make([]dbmodels.Employee, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, dbmodels.Employee{ID: id})
	}
	return refs
}
