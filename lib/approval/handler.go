package approvalhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"it-requests-backend/config"
	"it-requests-backend/db"
	approvalstore "it-requests-backend/lib/approval/store"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/lib/smtp"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Decide(requestID string, user models.UserScope, role models.ApprovalRole, data requestapimodels.ApprovalDecisionData) error
	ListByRequest(requestID string) (list []requestapimodels.ApprovalView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            approvalstore.NewInstance(db.DB),
		requestStore:     requeststore.NewInstance(db.DB),
		employeeProvider: employeeprovider.Instance,
		emailProvider:    smtp.Instance,
	}
}

type impl struct {
	store            approvalstore.Provider
	requestStore     requeststore.Provider
	employeeProvider employeeprovider.Provider
	emailProvider    smtp.Provider
}

// Decide records one sign-off and advances the chain. The row is written
// exactly once; a second decision for the same role is rejected.
func (i impl) Decide(requestID string, user models.UserScope, role models.ApprovalRole, data requestapimodels.ApprovalDecisionData) error {
	logger := log.
		WithField("rec_id", requestID).
		WithField("role", role).
		WithField("username", user.Username)
	err := data.Validate()
	if err != nil {
		return err
	}
	if role.IsITRole() && data.Status == models.ADecisionRejected && data.Note == "" {
		return errors.New("a note is required when rejecting")
	}
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to get request")
		return err
	}
	if rec == nil {
		return errors.New("request not found")
	}
	pending := rec.Status.PendingRole()
	if pending == "" {
		return errors.Errorf("request is not awaiting approval in status %v", rec.Status)
	}
	if pending != role {
		return errors.Errorf("request is awaiting the %v decision", pending)
	}
	if !user.Position.CanDecide(role, user.IsITStaff()) {
		return errors.New("this approval step is handled by another employee")
	}
	stage := rec.GetApproval(role)
	if stage == nil {
		return errors.New("the chain has not reached this step yet")
	}
	if stage.IsDecided() {
		return errors.New("the decision for this step is already recorded")
	}
	nextStatus, ok := models.NextApprovalStatus(rec.Status, role, data.Status)
	if !ok {
		return errors.Errorf("decision %v is not allowed in status %v", data.Status, rec.Status)
	}

	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalstore.NewInstance(tx)
		reqStore := requeststore.NewInstance(tx)
		updMap := map[string]interface{}{
			"ApproverName": data.Name,
			"Decision":     data.Status,
			"Note":         data.Note,
			"LevelJob":     data.LevelJob,
			"DecidedAt":    &now,
		}
		err = store.Update(stage.ID, updMap)
		if err != nil {
			return err
		}
		err = reqStore.Update(requestID, map[string]interface{}{
			"status": nextStatus,
		})
		if err != nil {
			return err
		}
		if data.Status == models.ADecisionApproved {
			if next := role.NextRole(); next != "" {
				_, err = store.Create(dbmodels.Approval{
					RequestID: requestID,
					Role:      next,
					Decision:  models.ADecisionAwaiting,
				})
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to record the decision")
		return err
	}
	logger.
		WithField("decision", data.Status).
		WithField("new_status", nextStatus).
		Info("approval decision recorded")
	i.notifyRequester(*rec, role, data)
	return nil
}

func (i impl) ListByRequest(requestID string) (list []requestapimodels.ApprovalView, err error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.ApprovalView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.ApprovalConvert(rec))
	}
	return list, nil
}

func (i impl) notifyRequester(rec dbmodels.Request, role models.ApprovalRole, data requestapimodels.ApprovalDecisionData) {
	logger := log.
		WithField("rec_id", rec.ID).
		WithField("username", rec.RequesterUsername)
	requester, err := i.employeeProvider.GetByUsername(rec.RequesterUsername)
	if err != nil || requester == nil || requester.Email == "" {
		logger.Debug("requester email is unknown, notification skipped")
		return
	}
	verdict := "approved"
	if data.Status == models.ADecisionRejected {
		verdict = "rejected"
	}
	message := fmt.Sprintf("Your request %s was %s at the %s step by %s.", rec.Code, verdict, role, data.Name)
	if data.Note != "" {
		message = fmt.Sprintf("%s\r\nNote: %s", message, data.Note)
	}
	err = i.emailProvider.SendEMail(config.Conf.Smtp.Sender, requester.Email, message, fmt.Sprintf("request %s", rec.Code))
	if err != nil {
		logger.
			WithError(err).
			Error("failed to notify the requester")
	}
}
