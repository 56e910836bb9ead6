package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
	apimodels "it-requests-backend/models/api"
	dbmodels "it-requests-backend/models/db"
)

type RequestData struct {
	RequesterName string     `json:"requester_name"`
	Phone         string     `json:"phone"`
	DepartmentID  int        `json:"department_id"`
	TypeID        int        `json:"type_id"`
	TopicID       *int       `json:"topic_id"`
	SubTopicID    *int       `json:"sub_topic_id"`
	ProgramID     *int       `json:"program_id"`
	Title         string     `json:"title"`
	Detail        string     `json:"detail"`
	PriorityID    *int       `json:"priority_id"`
	JobStart      *time.Time `json:"job_start"`
	JobEnd        *time.Time `json:"job_end"`
}

func (r RequestData) Validate() error {
	if r.DepartmentID == 0 {
		return errors.New("department is required")
	}
	if r.TypeID == 0 {
		return errors.New("request type is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type RequestCreateData struct {
	RequestData
}

type RequestEditData struct {
	RequestData
}

type RequestView struct {
	ID                   string               `json:"id"`
	Code                 string               `json:"code"`
	RequesterName        string               `json:"requester_name"`
	RequesterUsername    string               `json:"requester_username"`
	Phone                string               `json:"phone"`
	DepartmentID         int                  `json:"department_id"`
	DepartmentName       string               `json:"department_name,omitempty"`
	DivisionCompetencyID int                  `json:"division_competency_id"`
	SectionCompetencyID  int                  `json:"section_competency_id"`
	TypeID               int                  `json:"type_id"`
	TypeName             string               `json:"type_name,omitempty"`
	TopicID              *int                 `json:"topic_id"`
	TopicName            string               `json:"topic_name,omitempty"`
	SubTopicID           *int                 `json:"sub_topic_id"`
	ProgramID            *int                 `json:"program_id"`
	ProgramName          string               `json:"program_name,omitempty"`
	Title                string               `json:"title"`
	Detail               string               `json:"detail"`
	Status               models.RequestStatus `json:"status"`
	StatusName           string               `json:"status_name"`
	PriorityID           *int                 `json:"priority_id"`
	PriorityName         string               `json:"priority_name,omitempty"`
	JobStart             *time.Time           `json:"job_start"`
	JobEnd               *time.Time           `json:"job_end"`
	CreatedAt            time.Time            `json:"created_at"`

	Approvals             []ApprovalView             `json:"approvals,omitempty"`
	DepartmentAssignments []DepartmentAssignmentView `json:"department_assignments,omitempty"`
	EmployeeAssignments   []EmployeeAssignmentView   `json:"employee_assignments,omitempty"`
	Files                 []FileView                 `json:"files,omitempty"`
	Subtasks              []SubtaskView              `json:"subtasks,omitempty"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	view := RequestView{
		ID:                   rec.ID,
		Code:                 rec.Code,
		RequesterName:        rec.RequesterName,
		RequesterUsername:    rec.RequesterUsername,
		Phone:                rec.Phone,
		DepartmentID:         rec.DepartmentID,
		DivisionCompetencyID: rec.DivisionCompetencyID,
		SectionCompetencyID:  rec.SectionCompetencyID,
		TypeID:               rec.TypeID,
		TopicID:              rec.TopicID,
		SubTopicID:           rec.SubTopicID,
		ProgramID:            rec.ProgramID,
		Title:                rec.Title,
		Detail:               rec.Detail,
		Status:               rec.Status,
		StatusName:           rec.Status.ToHuman(),
		PriorityID:           rec.PriorityID,
		JobStart:             rec.JobStart,
		JobEnd:               rec.JobEnd,
		CreatedAt:            rec.CreatedAt,
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.Type != nil {
		view.TypeName = rec.Type.Name
	}
	if rec.Topic != nil {
		view.TopicName = rec.Topic.Name
	}
	if rec.Program != nil {
		view.ProgramName = rec.Program.Name
	}
	if rec.Priority != nil {
		view.PriorityName = rec.Priority.Name
	}
	for _, approval := range rec.Approvals {
		view.Approvals = append(view.Approvals, ApprovalConvert(approval))
	}
	for _, assignment := range rec.DepartmentAssignments {
		view.DepartmentAssignments = append(view.DepartmentAssignments, DepartmentAssignmentConvert(assignment))
	}
	for _, assignment := range rec.EmployeeAssignments {
		view.EmployeeAssignments = append(view.EmployeeAssignments, EmployeeAssignmentConvert(assignment))
	}
	for _, file := range rec.Files {
		view.Files = append(view.Files, FileConvert(file))
	}
	for _, subtask := range rec.Subtasks {
		view.Subtasks = append(view.Subtasks, SubtaskConvert(subtask))
	}
	return view
}

// RequestFilter narrows the list view. Scope fields are filled from the
// caller's profile by the handler, not by the client.
type RequestFilter struct {
	apimodels.Pagination
	RequesterUsername    string               `json:"user_req"`
	DepartmentID         int                  `json:"department"`
	DivisionCompetencyID int                  `json:"division_competency"`
	SectionCompetencyID  int                  `json:"section_competency"`
	TypeID               int                  `json:"type_id"`
	Status               models.RequestStatus `json:"status"`
	Tab                  *models.ListTab      `json:"tab"`
	DateFrom             *time.Time           `json:"date_from"`
	DateTo               *time.Time           `json:"date_to"`
}

type ChangeStatusData struct {
	Change models.RequestStatus `json:"change"`
}

func (r ChangeStatusData) Validate() error {
	if r.Change == "" {
		return errors.New("target status is required")
	}
	return nil
}

type FileView struct {
	ID           string `json:"id"`
	RequestID    string `json:"request_id"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
}

func FileConvert(rec dbmodels.RequestFile) FileView {
	return FileView{
		ID:           rec.ID,
		RequestID:    rec.RequestID,
		OriginalName: rec.OriginalName,
		StoredName:   rec.StoredName,
		ContentType:  rec.ContentType,
		Size:         rec.Size,
	}
}
