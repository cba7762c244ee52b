// Package models contains the persistence models of the directory,
// configured to work using GORM as the ORM.
package models

import (
	"time"
)

// Province is a row of the provinces table.
type Province struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:45;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Employee is a row of the employees table. WorkCenters is mapped through
// the employee_work_centers join table, shared with WorkCenter.Employees.
type Employee struct {
	ID            uint         `gorm:"primaryKey"`
	Name          string       `gorm:"size:45;not null"`
	FirstSurname  string       `gorm:"size:45;not null"`
	SecondSurname *string      `gorm:"size:45"`
	NationalID    string       `gorm:"not null"`
	Address       string       `gorm:"size:45;not null"`
	City          string       `gorm:"size:45;not null"`
	PostalCode    string       `gorm:"size:45;not null;index"`
	BirthDate     *time.Time   `gorm:"type:date"`
	ProvinceID    uint         `gorm:"not null;index"`
	Province      Province     `gorm:"foreignKey:ProvinceID"`
	WorkCenters   []WorkCenter `gorm:"many2many:employee_work_centers;"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WorkCenter is a row of the work_centers table.
type WorkCenter struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"size:45;not null"`
	Address    string     `gorm:"size:45;not null"`
	City       string     `gorm:"size:45;not null"`
	PostalCode string     `gorm:"size:45;not null;index"`
	Phone      string     `gorm:"size:45;not null"`
	ProvinceID uint       `gorm:"not null;index"`
	Province   Province   `gorm:"foreignKey:ProvinceID"`
	Employees  []Employee `gorm:"many2many:employee_work_centers;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// All lists the models to migrate, in dependency order.
func All() []any {
	return []any{&Province{}, &Employee{}, &WorkCenter{}}
}
