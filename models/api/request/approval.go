package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

// ApprovalDecisionData carries one sign-off. LevelJob is meaningful for
// the IT roles only.
type ApprovalDecisionData struct {
	Name     string                  `json:"name"`
	Status   models.ApprovalDecision `json:"status"`
	Note     string                  `json:"note"`
	LevelJob string                  `json:"level_job"`
}

func (r ApprovalDecisionData) Validate() error {
	if r.Name == "" {
		return errors.New("approver name is required")
	}
	if r.Status != models.ADecisionApproved && r.Status != models.ADecisionRejected {
		return errors.New("decision must be approved or unapprove")
	}
	return nil
}

type ApprovalView struct {
	ID           string                  `json:"id"`
	RequestID    string                  `json:"request_id"`
	Role         models.ApprovalRole     `json:"role"`
	ApproverName string                  `json:"approver_name"`
	Decision     models.ApprovalDecision `json:"decision"`
	Note         string                  `json:"note"`
	LevelJob     string                  `json:"level_job"`
	DecidedAt    *time.Time              `json:"decided_at"`
}

func ApprovalConvert(rec dbmodels.Approval) ApprovalView {
	return ApprovalView{
		ID:           rec.ID,
		RequestID:    rec.RequestID,
		Role:         rec.Role,
		ApproverName: rec.ApproverName,
		Decision:     rec.Decision,
		Note:         rec.Note,
		LevelJob:     rec.LevelJob,
		DecidedAt:    rec.DecidedAt,
	}
}
