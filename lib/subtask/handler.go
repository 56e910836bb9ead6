package subtaskhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	priorityprovider "it-requests-backend/lib/dicts/priority"
	requeststore "it-requests-backend/lib/requests/store"
	subtaskstore "it-requests-backend/lib/subtask/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(requestID string, user models.UserScope, data requestapimodels.SubtaskData) (id string, err error)
	GetByID(id string) (item requestapimodels.SubtaskView, err error)
	Patch(id string, user models.UserScope, data requestapimodels.SubtaskPatchData) error
	ListByRequest(requestID string) (list []requestapimodels.SubtaskView, err error)
	Delete(id string, user models.UserScope) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            subtaskstore.NewInstance(db.DB),
		requestStore:     requeststore.NewInstance(db.DB),
		priorityProvider: priorityprovider.Instance,
	}
}

type impl struct {
	store            subtaskstore.Provider
	requestStore     requeststore.Provider
	priorityProvider priorityprovider.Provider
}

func (i impl) Create(requestID string, user models.UserScope, data requestapimodels.SubtaskData) (id string, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("username", user.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	request, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return "", err
	}
	if request == nil {
		return "", errors.New("request not found")
	}
	if request.Status.IsTerminal() {
		return "", errors.Errorf("request is closed in status %v", request.Status)
	}
	if data.PriorityID != nil {
		_, err = i.priorityProvider.Get(*data.PriorityID)
		if err != nil {
			return "", err
		}
	}
	rec := dbmodels.Subtask{
		RequestID:  requestID,
		Name:       data.Name,
		StartDate:  data.StartDate,
		DueDate:    data.DueDate,
		Status:     models.SubtaskStatusOpen,
		PriorityID: data.PriorityID,
	}
	if data.Status != "" {
		rec.Status = data.Status
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to create subtask")
		return "", err
	}
	logger.
		WithField("subtask_id", id).
		Info("subtask created")
	return id, nil
}

func (i impl) GetByID(id string) (item requestapimodels.SubtaskView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.SubtaskView{}, err
	}
	return requestapimodels.SubtaskConvert(*rec), nil
}

// Patch applies per-cell edits from the subtask grid. The date pair is
// re-validated against the stored values so a single-field edit can not
// produce an inverted range.
func (i impl) Patch(id string, user models.UserScope, data requestapimodels.SubtaskPatchData) error {
	logger := log.
		WithField("subtask_id", id).
		WithField("username", user.Username)
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	start := rec.StartDate
	due := rec.DueDate
	if data.StartDate != nil {
		start = data.StartDate
	}
	if data.DueDate != nil {
		due = data.DueDate
	}
	err = dbmodels.ValidateDateRange(start, due)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.StartDate != nil {
		updMap["start_date"] = data.StartDate
	}
	if data.DueDate != nil {
		updMap["due_date"] = data.DueDate
	}
	if data.Status != nil {
		updMap["status"] = *data.Status
	}
	if data.PriorityID != nil {
		_, err = i.priorityProvider.Get(*data.PriorityID)
		if err != nil {
			return err
		}
		updMap["priority_id"] = data.PriorityID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to update subtask")
		return err
	}
	logger.Info("subtask updated")
	return nil
}

func (i impl) ListByRequest(requestID string) (list []requestapimodels.SubtaskView, err error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.SubtaskView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.SubtaskConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string, user models.UserScope) error {
	logger := log.
		WithField("subtask_id", id).
		WithField("username", user.Username)
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to delete subtask")
		return err
	}
	logger.Info("subtask deleted")
	return nil
}

func (i impl) getRec(id string) (item *dbmodels.Subtask, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("subtask_id", id).
			WithError(err).
			Error("failed to get subtask")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("subtask not found")
	}
	return rec, nil
}
