package requesthandler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"it-requests-backend/db"
	approvalstore "it-requests-backend/lib/approval/store"
	departmentprovider "it-requests-backend/lib/dicts/department"
	priorityprovider "it-requests-backend/lib/dicts/priority"
	programprovider "it-requests-backend/lib/dicts/program"
	reqtypeprovider "it-requests-backend/lib/dicts/reqtype"
	topicprovider "it-requests-backend/lib/dicts/topic"
	xlsexport "it-requests-backend/lib/export/xls"
	"it-requests-backend/lib/reqcode"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(author models.UserScope, data requestapimodels.RequestCreateData) (id string, err error)
	GetByID(id string) (item requestapimodels.RequestView, err error)
	Update(id string, user models.UserScope, data requestapimodels.RequestEditData) error
	List(user models.UserScope, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error)
	ChangeStatus(id string, user models.UserScope, status models.RequestStatus) error
	Delete(id string, user models.UserScope) error
	ExportRegister(user models.UserScope, filter requestapimodels.RequestFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:              requeststore.NewInstance(db.DB),
		approvalStore:      approvalstore.NewInstance(db.DB),
		departmentProvider: departmentprovider.Instance,
		typeProvider:       reqtypeprovider.Instance,
		topicProvider:      topicprovider.Instance,
		priorityProvider:   priorityprovider.Instance,
		programProvider:    programprovider.Instance,
		xlsExport:          xlsexport.Instance,
	}
}

type impl struct {
	store              requeststore.Provider
	approvalStore      approvalstore.Provider
	departmentProvider departmentprovider.Provider
	typeProvider       reqtypeprovider.Provider
	topicProvider      topicprovider.Provider
	priorityProvider   priorityprovider.Provider
	programProvider    programprovider.Provider
	xlsExport          xlsexport.Provider
}

func (i impl) checkDependency(data requestapimodels.RequestData) (err error) {
	_, err = i.departmentProvider.Get(data.DepartmentID)
	if err != nil {
		return err
	}
	_, err = i.typeProvider.Get(data.TypeID)
	if err != nil {
		return err
	}
	if data.TopicID != nil {
		_, err = i.topicProvider.Get(*data.TopicID)
		if err != nil {
			return err
		}
	}
	if data.ProgramID != nil {
		_, err = i.programProvider.Get(*data.ProgramID)
		if err != nil {
			return err
		}
	}
	if data.PriorityID != nil {
		_, err = i.priorityProvider.Get(*data.PriorityID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) Create(author models.UserScope, data requestapimodels.RequestCreateData) (id string, err error) {
	logger := log.WithField("username", author.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	err = i.checkDependency(data.RequestData)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Request{
		Code:                 reqcode.Generate(data.TypeID, time.Now()),
		RequesterName:        author.FullName,
		RequesterUsername:    author.Username,
		Phone:                data.Phone,
		DepartmentID:         data.DepartmentID,
		DivisionCompetencyID: author.DivisionCompetencyID,
		SectionCompetencyID:  author.SectionCompetencyID,
		TypeID:               data.TypeID,
		TopicID:              data.TopicID,
		SubTopicID:           data.SubTopicID,
		ProgramID:            data.ProgramID,
		Title:                data.Title,
		Detail:               data.Detail,
		PriorityID:           data.PriorityID,
		JobStart:             data.JobStart,
		JobEnd:               data.JobEnd,
		Status:               models.RequestStatusRequested,
	}
	if data.RequesterName != "" {
		rec.RequesterName = data.RequesterName
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		aStore := approvalstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("failed to create request")
			return err
		}
		// the chain always starts at the requester's manager
		_, err = aStore.Create(dbmodels.Approval{
			RequestID: id,
			Role:      models.ApprovalRoleManager,
			Decision:  models.ADecisionAwaiting,
		})
		return err
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("code", rec.Code).
		Info("request created")
	return id, nil
}

func (i impl) GetByID(id string) (item requestapimodels.RequestView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i impl) Update(id string, user models.UserScope, data requestapimodels.RequestEditData) error {
	logger := log.
		WithField("rec_id", id).
		WithField("username", user.Username)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.RequesterUsername != user.Username && !user.IsAdmin {
		return errors.New("only the requester may edit the request")
	}
	if rec.Status != models.RequestStatusRequested {
		return errors.Errorf("request can not be edited in status %v", rec.Status)
	}
	err = data.Validate()
	if err != nil {
		return err
	}
	err = i.checkDependency(data.RequestData)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"Phone":        data.Phone,
		"DepartmentID": data.DepartmentID,
		"TypeID":       data.TypeID,
		"TopicID":      data.TopicID,
		"SubTopicID":   data.SubTopicID,
		"ProgramID":    data.ProgramID,
		"Title":        data.Title,
		"Detail":       data.Detail,
		"PriorityID":   data.PriorityID,
		"JobStart":     data.JobStart,
		"JobEnd":       data.JobEnd,
	}
	if data.RequesterName != "" {
		updMap["RequesterName"] = data.RequesterName
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("failed to update request")
		return err
	}
	logger.Info("request updated")
	return nil
}

func (i impl) List(user models.UserScope, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error) {
	logger := log.WithField("username", user.Username)
	filter = applyScope(user, filter)
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []requestapimodels.RequestView{}, rowCount, nil
	}

	recList, err := i.store.List(filter)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to list requests")
		return nil, 0, err
	}
	result := make([]requestapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result, rowCount, nil
}

// applyScope narrows the filter to the caller's span of control. IT staff
// and admins see the full register.
func applyScope(user models.UserScope, filter requestapimodels.RequestFilter) requestapimodels.RequestFilter {
	if user.IsAdmin || user.IsITStaff() {
		return filter
	}
	switch user.Position {
	case models.PositionManager:
		filter.DivisionCompetencyID = user.DivisionCompetencyID
	case models.PositionDirector:
		filter.SectionCompetencyID = user.SectionCompetencyID
		filter.DivisionCompetencyID = user.DivisionCompetencyID
	default:
		filter.DepartmentID = user.DepartmentID
	}
	return filter
}

func (i impl) ChangeStatus(id string, user models.UserScope, status models.RequestStatus) error {
	logger := log.
		WithField("rec_id", id).
		WithField("username", user.Username).
		WithField("new_status", status)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(status) {
		return errors.Errorf("status change to %v is not allowed", status)
	}
	if status == models.RequestStatusCancelled {
		if rec.RequesterUsername != user.Username && !user.IsAdmin {
			return errors.New("only the requester may cancel the request")
		}
	} else if !user.IsITStaff() {
		return errors.New("operation is not available")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update request status")
		return err
	}
	logger.Info("request status updated")
	return nil
}

// Delete soft-cancels the request. Rows never leave the register.
func (i impl) Delete(id string, user models.UserScope) error {
	if !user.IsAdmin {
		return errors.New("operation is not available")
	}
	logger := log.
		WithField("rec_id", id).
		WithField("username", user.Username)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsTerminal() {
		return errors.Errorf("request is already closed in status %v", rec.Status)
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.RequestStatusCancelled,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to cancel request")
		return err
	}
	logger.Info("request cancelled")
	return nil
}

func (i impl) ExportRegister(user models.UserScope, filter requestapimodels.RequestFilter) (*bytes.Buffer, error) {
	logger := log.WithField("username", user.Username)
	filter = applyScope(user, filter)
	recList, err := i.store.ListAll(filter)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to load requests for export")
		return nil, err
	}
	return i.xlsExport.ExportRequestRegister(recList)
}

func (i impl) getRec(id string) (item *dbmodels.Request, err error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to get request")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("request not found")
	}
	return rec, nil
}
