package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

type SubtaskData struct {
	Name       string     `json:"name"`
	StartDate  *time.Time `json:"start_date"`
	DueDate    *time.Time `json:"due_date"`
	Status     models.SubtaskStatus `json:"status"`
	PriorityID *int       `json:"priority_id"`
}

func (r SubtaskData) Validate() error {
	if r.Name == "" {
		return errors.New("subtask name is required")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("unknown subtask status")
	}
	return dbmodels.ValidateDateRange(r.StartDate, r.DueDate)
}

// SubtaskPatchData updates individual grid cells; nil fields stay
// untouched.
type SubtaskPatchData struct {
	Name       *string               `json:"name"`
	StartDate  *time.Time            `json:"start_date"`
	DueDate    *time.Time            `json:"due_date"`
	Status     *models.SubtaskStatus `json:"status"`
	PriorityID *int                  `json:"priority_id"`
}

func (r SubtaskPatchData) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("subtask name must not be empty")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return errors.New("unknown subtask status")
	}
	return nil
}

type SubtaskView struct {
	ID           string               `json:"id"`
	RequestID    string               `json:"request_id"`
	Name         string               `json:"name"`
	StartDate    *time.Time           `json:"start_date"`
	DueDate      *time.Time           `json:"due_date"`
	Status       models.SubtaskStatus `json:"status"`
	StatusName   string               `json:"status_name"`
	PriorityID   *int                 `json:"priority_id"`
	PriorityName string               `json:"priority_name,omitempty"`

	EmployeeAssignments []EmployeeAssignmentView `json:"employee_assignments,omitempty"`
}

func SubtaskConvert(rec dbmodels.Subtask) SubtaskView {
	view := SubtaskView{
		ID:         rec.ID,
		RequestID:  rec.RequestID,
		Name:       rec.Name,
		StartDate:  rec.StartDate,
		DueDate:    rec.DueDate,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
		PriorityID: rec.PriorityID,
	}
	if rec.Priority != nil {
		view.PriorityName = rec.Priority.Name
	}
	for _, assignment := range rec.EmployeeAssignments {
		view.EmployeeAssignments = append(view.EmployeeAssignments, EmployeeAssignmentConvert(assignment))
	}
	return view
}
