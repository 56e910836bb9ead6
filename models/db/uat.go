package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
)

// UATRecord is a user-acceptance-test round attached to a development
// request.
type UATRecord struct {
	BaseModel
	RequestID string           `gorm:"type:varchar(36);index" json:"request_id"`
	Round     int              `json:"round"`
	Detail    string           `gorm:"type:text" json:"detail"`
	Result    models.UATResult `json:"result"`
	Note      string           `gorm:"type:text" json:"note"`
	TestedBy  string           `gorm:"type:varchar(255)" json:"tested_by"`
	TestedAt  *time.Time       `json:"tested_at"`
}

func (u *UATRecord) Validate() error {
	if u.RequestID == "" {
		return errors.New("uat request reference is required")
	}
	if u.Detail == "" {
		return errors.New("uat detail is required")
	}
	return nil
}

// ValidateResult guards the recorded outcome: a failed round must carry an
// explanation note.
func (u *UATRecord) ValidateResult() error {
	if !u.Result.IsValid() {
		return errors.New("unknown uat result")
	}
	if u.Result == models.UATResultFailed && u.Note == "" {
		return errors.New("a failed uat round requires a note")
	}
	return nil
}
