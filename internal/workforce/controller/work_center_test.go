package controller

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/gartstein/workforce/internal/pkg/utils"
	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/events"
	"github.com/gartstein/workforce/internal/workforce/models"
	"github.com/gartstein/workforce/internal/workforce/validation"
	"go.uber.org/zap/zaptest"
)

func employeesByID(ids ...uint) func(context.Context, []uint) ([]*models.Employee, error) {
	return func(_ context.Context, requested []uint) ([]*models.Employee, error) {
		var out []*models.Employee
		for _, r := range requested {
			for _, id := range ids {
				if r == id {
					out = append(out, &models.Employee{ID: id})
				}
			}
		}
		return out, nil
	}
}

func TestWorkCenterService_CreateWorkCenter(t *testing.T) {
	tests := []struct {
		name          string
		input         func() *models.WorkCenter
		employeeIDs   []uint
		expectedError error
		expectedKinds map[string]e.Kind
	}{
		{
			name:        "successful creation with employees",
			input:       validWorkCenter,
			employeeIDs: []uint{3, 4},
		},
		{
			name: "invalid phone",
			input: func() *models.WorkCenter {
				c := validWorkCenter()
				c.Phone = "912345678"
				return c
			},
			expectedError: e.ErrInvalidInput,
			expectedKinds: map[string]e.Kind{"phone": e.KindPhoneFormat},
		},
		{
			name: "blank phone reports one violation",
			input: func() *models.WorkCenter {
				c := validWorkCenter()
				c.Phone = ""
				return c
			},
			expectedError: e.ErrInvalidInput,
			expectedKinds: map[string]e.Kind{"phone": e.KindRequired},
		},
		{
			name:          "unknown employee",
			input:         validWorkCenter,
			employeeIDs:   []uint{3, 8},
			expectedError: e.ErrInvalidInput,
			expectedKinds: map[string]e.Kind{"employees": e.KindMissingReference},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockRepository{
				getProvince:   provinces(1),
				findEmployees: employeesByID(3, 4),
				createWorkCenter: func(_ context.Context, c *models.WorkCenter) error {
					c.ID = 20
					return nil
				},
			}
			mockProducer := &MockProducer{}
			service := NewWorkCenterService(mockRepo, mockProducer, validation.New(), zaptest.NewLogger(t))

			result, err := service.CreateWorkCenter(context.Background(), tt.input(), tt.employeeIDs)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				var verr *e.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				kinds := map[string]e.Kind{}
				for _, v := range verr.Violations {
					kinds[v.Field] = v.Kind
				}
				if !reflect.DeepEqual(kinds, tt.expectedKinds) {
					t.Errorf("expected violations %v, got %v", tt.expectedKinds, kinds)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.ID != 20 {
				t.Errorf("expected ID 20, got %d", result.ID)
			}
			if result.Province == nil || result.Province.Name != "Provincia 1" {
				t.Errorf("expected the referenced province to be loaded, got %+v", result.Province)
			}
			if got := result.EmployeeIDs(); !reflect.DeepEqual(got, tt.employeeIDs) {
				t.Errorf("expected employees %v, got %v", tt.employeeIDs, got)
			}
			for _, emp := range result.Employees {
				if !emp.HasWorkCenter(result) {
					t.Errorf("employee %d does not see the new work center", emp.ID)
				}
			}
			if got := mockProducer.types(); len(got) != 1 || got[0] != events.WorkCenterCreated {
				t.Errorf("expected one %s event, got %v", events.WorkCenterCreated, got)
			}
		})
	}
}

func TestWorkCenterService_UpdateWorkCenter(t *testing.T) {
	var saved *models.WorkCenter
	mockRepo := &MockRepository{
		getWorkCenter: func(_ context.Context, id uint) (*models.WorkCenter, error) {
			c := validWorkCenter()
			c.ID = id
			c.AddEmployee(&models.Employee{ID: 3})
			return c, nil
		},
		getProvince:   provinces(1, 2),
		findEmployees: employeesByID(3, 4),
		updateWorkCenter: func(_ context.Context, c *models.WorkCenter) error {
			saved = c
			return nil
		},
	}
	mockProducer := &MockProducer{}
	service := NewWorkCenterService(mockRepo, mockProducer, validation.New(), zaptest.NewLogger(t))

	result, err := service.UpdateWorkCenter(context.Background(), &models.WorkCenterUpdate{
		ID:          20,
		Phone:       utils.Ptr("+349123456789"),
		ProvinceID:  utils.Ptr(uint(2)),
		EmployeeIDs: &[]uint{4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != result {
		t.Error("expected the merged work center to be saved")
	}
	if result.Phone != "+349123456789" || result.ProvinceID != 2 || result.Name != "Sede Central" {
		t.Errorf("unexpected merge result %+v", result)
	}
	if result.Province == nil || result.Province.ID != 2 || result.Province.Name != "Provincia 2" {
		t.Errorf("expected the new province to be reported, got %+v", result.Province)
	}
	if got := result.EmployeeIDs(); !reflect.DeepEqual(got, []uint{4}) {
		t.Errorf("expected employees [4], got %v", got)
	}
	if got := mockProducer.types(); len(got) != 1 || got[0] != events.WorkCenterUpdated {
		t.Errorf("expected one %s event, got %v", events.WorkCenterUpdated, got)
	}
}

func TestWorkCenterService_UpdateUnknownProvince(t *testing.T) {
	mockRepo := &MockRepository{
		getWorkCenter: func(_ context.Context, id uint) (*models.WorkCenter, error) {
			c := validWorkCenter()
			c.ID = id
			return c, nil
		},
		getProvince: provinces(1),
	}
	service := NewWorkCenterService(mockRepo, &MockProducer{}, validation.New(), zaptest.NewLogger(t))

	_, err := service.UpdateWorkCenter(context.Background(), &models.WorkCenterUpdate{ID: 20, ProvinceID: utils.Ptr(uint(9))})

	var verr *e.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Message != validation.MsgProvinceNotFound {
		t.Errorf("unexpected violations %+v", verr.Violations)
	}
}

func TestWorkCenterService_LinkEmployee(t *testing.T) {
	// The employee already works at center 3. Linking center 5 from the
	// work center side writes that pair only; center 3 is left alone.
	var written []string
	mockRepo := &MockRepository{
		getEmployee: func(_ context.Context, id uint) (*models.Employee, error) {
			emp := &models.Employee{ID: id}
			emp.AddWorkCenter(&models.WorkCenter{ID: 3})
			return emp, nil
		},
		getWorkCenter: func(_ context.Context, id uint) (*models.WorkCenter, error) {
			c := &models.WorkCenter{ID: id}
			if id == 3 {
				c.AddEmployee(&models.Employee{ID: 1})
			}
			return c, nil
		},
		linkEmployeeWorkCenter: func(_ context.Context, employeeID, centerID uint) error {
			written = append(written, fmt.Sprintf("link %d-%d", employeeID, centerID))
			return nil
		},
		unlinkEmployeeWorkCenter: func(_ context.Context, employeeID, centerID uint) error {
			written = append(written, fmt.Sprintf("unlink %d-%d", employeeID, centerID))
			return nil
		},
	}
	mockProducer := &MockProducer{}
	service := NewWorkCenterService(mockRepo, mockProducer, validation.New(), zaptest.NewLogger(t))

	result, err := service.LinkEmployee(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected a change")
	}
	if !reflect.DeepEqual(written, []string{"link 1-5"}) {
		t.Errorf("expected only the new pair to be written, got %v", written)
	}
	if got := result.Employee.WorkCenterIDs(); !reflect.DeepEqual(got, []uint{3, 5}) {
		t.Errorf("expected employee centers [3 5], got %v", got)
	}
	if !result.WorkCenter.HasEmployee(result.Employee) {
		t.Error("work center side out of sync")
	}

	written = nil
	result, err = service.UnlinkEmployee(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(written, []string{"unlink 1-3"}) {
		t.Errorf("expected only the removed pair to be written, got %v", written)
	}
	if result.Employee.HasWorkCenter(result.WorkCenter) {
		t.Error("employee side out of sync")
	}
	if got := mockProducer.types(); !reflect.DeepEqual(got, []events.EventType{events.AssignmentLinked, events.AssignmentUnlinked}) {
		t.Errorf("unexpected events %v", got)
	}
}

func TestWorkCenterService_DeleteWorkCenter(t *testing.T) {
	var deletedID uint
	mockRepo := &MockRepository{
		getWorkCenter: func(_ context.Context, id uint) (*models.WorkCenter, error) { return &models.WorkCenter{ID: id}, nil },
		deleteWorkCenter: func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	mockProducer := &MockProducer{}
	service := NewWorkCenterService(mockRepo, mockProducer, validation.New(), zaptest.NewLogger(t))

	if err := service.DeleteWorkCenter(context.Background(), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != 20 {
		t.Errorf("expected work center 20 to be deleted, got %d", deletedID)
	}
	if got := mockProducer.types(); len(got) != 1 || got[0] != events.WorkCenterDeleted {
		t.Errorf("expected one %s event, got %v", events.WorkCenterDeleted, got)
	}
}

func TestWorkCenterService_ListEmployees(t *testing.T) {
	t.Run("assigned employees", func(t *testing.T) {
		mockRepo := &MockRepository{
			getWorkCenter: func(_ context.Context, id uint) (*models.WorkCenter, error) {
				c := &models.WorkCenter{ID: id}
				c.AddEmployee(&models.Employee{ID: 7})
				return c, nil
			},
		}
		service := NewWorkCenterService(mockRepo, &MockProducer{}, validation.New(), zaptest.NewLogger(t))

		employees, err := service.ListEmployees(context.Background(), 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(employees) != 1 || employees[0].ID != 7 {
			t.Errorf("unexpected employees %+v", employees)
		}
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo := &MockRepository{
			getWorkCenter: func(_ context.Context, _ uint) (*models.WorkCenter, error) { return nil, errors.New("db down") },
		}
		service := NewWorkCenterService(mockRepo, &MockProducer{}, validation.New(), zaptest.NewLogger(t))

		_, err := service.ListEmployees(context.Background(), 20)
		if err == nil || errors.Is(err, e.ErrNotFound) {
			t.Errorf("expected wrapped storage error, got %v", err)
		}
	})
}
