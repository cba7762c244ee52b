package models

// Both sides of the employee/work center association are kept in sync by
// every mutator below, so either side can be used to link or unlink a pair.
// Entities are matched by pointer, or by ID once both have been persisted.

// AddWorkCenter associates c with e on both sides. It reports whether
// anything changed; adding an existing pair is a no-op.
func (e *Employee) AddWorkCenter(c *WorkCenter) bool {
	if e == nil || c == nil {
		return false
	}
	added := e.linkWorkCenter(c)
	if c.linkEmployee(e) {
		added = true
	}
	return added
}

// RemoveWorkCenter dissociates c from e. The back-reference on c is only
// touched when c was actually associated with e.
func (e *Employee) RemoveWorkCenter(c *WorkCenter) bool {
	if e == nil || c == nil {
		return false
	}
	if !e.unlinkWorkCenter(c) {
		return false
	}
	c.unlinkEmployee(e)
	return true
}

// HasWorkCenter reports whether c is in e's collection.
func (e *Employee) HasWorkCenter(c *WorkCenter) bool {
	return e.indexOfWorkCenter(c) >= 0
}

// WorkCenterIDs returns the IDs of the associated work centers in
// collection order.
func (e *Employee) WorkCenterIDs() []uint {
	ids := make([]uint, 0, len(e.WorkCenters))
	for _, c := range e.WorkCenters {
		ids = append(ids, c.ID)
	}
	return ids
}

// AddEmployee associates e with c on both sides.
func (c *WorkCenter) AddEmployee(e *Employee) bool {
	if c == nil || e == nil {
		return false
	}
	added := c.linkEmployee(e)
	if e.linkWorkCenter(c) {
		added = true
	}
	return added
}

// RemoveEmployee dissociates e from c on both sides.
func (c *WorkCenter) RemoveEmployee(e *Employee) bool {
	if c == nil || e == nil {
		return false
	}
	if !c.unlinkEmployee(e) {
		return false
	}
	e.unlinkWorkCenter(c)
	return true
}

// HasEmployee reports whether e is in c's collection.
func (c *WorkCenter) HasEmployee(e *Employee) bool {
	return c.indexOfEmployee(e) >= 0
}

// EmployeeIDs returns the IDs of the associated employees in collection order.
func (c *WorkCenter) EmployeeIDs() []uint {
	ids := make([]uint, 0, len(c.Employees))
	for _, e := range c.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}

// SyncWorkCenters makes e's association equal to centers: missing centers
// are added, extra ones removed, both through the symmetric mutators.
func (e *Employee) SyncWorkCenters(centers []*WorkCenter) bool {
	changed := false
	for _, current := range append([]*WorkCenter(nil), e.WorkCenters...) {
		if indexOf(centers, current, sameWorkCenter) < 0 && e.RemoveWorkCenter(current) {
			changed = true
		}
	}
	for _, c := range centers {
		if e.AddWorkCenter(c) {
			changed = true
		}
	}
	return changed
}

// SyncEmployees makes c's association equal to employees.
func (c *WorkCenter) SyncEmployees(employees []*Employee) bool {
	changed := false
	for _, current := range append([]*Employee(nil), c.Employees...) {
		if indexOf(employees, current, sameEmployee) < 0 && c.RemoveEmployee(current) {
			changed = true
		}
	}
	for _, e := range employees {
		if c.AddEmployee(e) {
			changed = true
		}
	}
	return changed
}

func (e *Employee) linkWorkCenter(c *WorkCenter) bool {
	if e.HasWorkCenter(c) {
		return false
	}
	e.WorkCenters = append(e.WorkCenters, c)
	return true
}

func (e *Employee) unlinkWorkCenter(c *WorkCenter) bool {
	i := e.indexOfWorkCenter(c)
	if i < 0 {
		return false
	}
	e.WorkCenters = append(e.WorkCenters[:i], e.WorkCenters[i+1:]...)
	return true
}

func (e *Employee) indexOfWorkCenter(c *WorkCenter) int {
	return indexOf(e.WorkCenters, c, sameWorkCenter)
}

func (c *WorkCenter) linkEmployee(e *Employee) bool {
	if c.HasEmployee(e) {
		return false
	}
	c.Employees = append(c.Employees, e)
	return true
}

func (c *WorkCenter) unlinkEmployee(e *Employee) bool {
	i := c.indexOfEmployee(e)
	if i < 0 {
		return false
	}
	c.Employees = append(c.Employees[:i], c.Employees[i+1:]...)
	return true
}

func (c *WorkCenter) indexOfEmployee(e *Employee) int {
	return indexOf(c.Employees, e, sameEmployee)
}

func indexOf[T any](items []*T, target *T, same func(a, b *T) bool) int {
	for i, item := range items {
		if same(item, target) {
			return i
		}
	}
	return -1
}

func sameEmployee(a, b *Employee) bool {
	return a == b || (a != nil && b != nil && a.ID != 0 && a.ID == b.ID)
}

func sameWorkCenter(a, b *WorkCenter) bool {
	return a == b || (a != nil && b != nil && a.ID != 0 && a.ID == b.ID)
}
