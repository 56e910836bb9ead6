package dbmodels

import (
	"time"

	"it-requests-backend/models"
)

// Approval is one step of the sign-off chain. A row is created when the
// chain reaches its role and is written exactly once when the decision is
// recorded.
type Approval struct {
	BaseModel
	RequestID    string                  `gorm:"type:varchar(36);index:idx_request_role,unique" json:"request_id"`
	Role         models.ApprovalRole     `gorm:"type:varchar(16);index:idx_request_role,unique" json:"role"`
	ApproverName string                  `gorm:"type:varchar(255)" json:"approver_name"`
	Decision     models.ApprovalDecision `gorm:"type:varchar(16)" json:"decision"`
	Note         string                  `gorm:"type:text" json:"note"`
	LevelJob     string                  `gorm:"type:varchar(64)" json:"level_job"`
	DecidedAt    *time.Time              `json:"decided_at"`
}

func (a Approval) IsDecided() bool {
	return a.Decision != "" && a.Decision != models.ADecisionAwaiting
}
