// Package models defines the core domain models of the workforce directory:
// provinces, employees and work centers, plus the update and filter types the
// service layer accepts.
package models

import (
	"time"
)

// Province is a reference entity referenced by employees and work centers.
type Province struct {
	// ID is assigned by the store on first save.
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,min=2,max=45"`
}

// Employee is a person assigned to zero or more work centers. It is the
// owning side of the employee/work center association.
type Employee struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name" validate:"required,min=2,max=45"`
	FirstSurname  string     `json:"firstSurname" validate:"required,min=2,max=45"`
	SecondSurname string     `json:"secondSurname,omitempty" validate:"omitempty,min=2,max=45"`
	NationalID    string     `json:"nationalId" validate:"required"`
	Address       string     `json:"address" validate:"required,min=2,max=45"`
	City          string     `json:"city" validate:"required,min=2,max=45"`
	PostalCode    string     `json:"postalCode" validate:"required,min=4,max=5"`
	BirthDate     *time.Time `json:"birthDate,omitempty"`
	ProvinceID    uint       `json:"province" validate:"reference"`
	// Province is populated on reads only.
	Province *Province `json:"-" validate:"-"`
	// WorkCenters must be changed through AddWorkCenter and RemoveWorkCenter.
	WorkCenters []*WorkCenter `json:"-" validate:"-"`
}

// WorkCenter is a physical location. It is the inverse side of the
// employee/work center association.
type WorkCenter struct {
	ID         uint   `json:"id"`
	Name       string `json:"name" validate:"required,min=2,max=45"`
	Address    string `json:"address" validate:"required,min=2,max=45"`
	City       string `json:"city" validate:"required,min=2,max=45"`
	PostalCode string `json:"postalCode" validate:"required,min=4,max=5"`
	Phone      string `json:"phone" validate:"required,phone"`
	ProvinceID uint   `json:"province" validate:"reference"`
	// Province is populated on reads only.
	Province *Province `json:"-" validate:"-"`
	// Employees must be changed through AddEmployee and RemoveEmployee.
	Employees []*Employee `json:"-" validate:"-"`
}

// ProvinceUpdate holds the fields that can be changed on a Province.
// A nil field keeps the stored value.
type ProvinceUpdate struct {
	ID   uint
	Name *string
}

// EmployeeUpdate holds the fields that can be changed on an Employee.
// A nil field keeps the stored value; a non-nil WorkCenterIDs replaces the
// whole association.
type EmployeeUpdate struct {
	ID             uint
	Name           *string
	FirstSurname   *string
	SecondSurname  *string
	NationalID     *string
	Address        *string
	City           *string
	PostalCode     *string
	BirthDate      *time.Time
	// ClearBirthDate removes the stored birth date; BirthDate is ignored.
	ClearBirthDate bool
	ProvinceID     *uint
	WorkCenterIDs  *[]uint
}

// WorkCenterUpdate holds the fields that can be changed on a WorkCenter.
// A non-nil EmployeeIDs replaces the whole association.
type WorkCenterUpdate struct {
	ID          uint
	Name        *string
	Address     *string
	City        *string
	PostalCode  *string
	Phone       *string
	ProvinceID  *uint
	EmployeeIDs *[]uint
}

// Apply copies the non-nil scalar fields of u onto p.
func (u *ProvinceUpdate) Apply(p *Province) {
	if u.Name != nil {
		p.Name = *u.Name
	}
}

// Apply copies the non-nil scalar fields of u onto e. The association is
// reconciled by the caller.
func (u *EmployeeUpdate) Apply(e *Employee) {
	setString(&e.Name, u.Name)
	setString(&e.FirstSurname, u.FirstSurname)
	setString(&e.SecondSurname, u.SecondSurname)
	setString(&e.NationalID, u.NationalID)
	setString(&e.Address, u.Address)
	setString(&e.City, u.City)
	setString(&e.PostalCode, u.PostalCode)
	switch {
	case u.ClearBirthDate:
		e.BirthDate = nil
	case u.BirthDate != nil:
		e.BirthDate = u.BirthDate
	}
	if u.ProvinceID != nil && *u.ProvinceID != e.ProvinceID {
		e.ProvinceID = *u.ProvinceID
		e.Province = nil
	}
}

// Apply copies the non-nil scalar fields of u onto c.
func (u *WorkCenterUpdate) Apply(c *WorkCenter) {
	setString(&c.Name, u.Name)
	setString(&c.Address, u.Address)
	setString(&c.City, u.City)
	setString(&c.PostalCode, u.PostalCode)
	setString(&c.Phone, u.Phone)
	if u.ProvinceID != nil && *u.ProvinceID != c.ProvinceID {
		c.ProvinceID = *u.ProvinceID
		c.Province = nil
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
