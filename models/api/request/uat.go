package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

type UATData struct {
	Detail string `json:"detail"`
}

func (r UATData) Validate() error {
	if r.Detail == "" {
		return errors.New("uat detail is required")
	}
	return nil
}

// UATResultData records the outcome of a round; a failing result must be
// explained.
type UATResultData struct {
	Result   models.UATResult `json:"result"`
	Note     string           `json:"note"`
	TestedBy string           `json:"tested_by"`
}

func (r UATResultData) Validate() error {
	if !r.Result.IsValid() {
		return errors.New("unknown uat result")
	}
	if r.Result == models.UATResultFailed && r.Note == "" {
		return errors.New("a failed uat round requires a note")
	}
	return nil
}

type UATView struct {
	ID        string           `json:"id"`
	RequestID string           `json:"request_id"`
	Round     int              `json:"round"`
	Detail    string           `json:"detail"`
	Result    models.UATResult `json:"result"`
	Note      string           `json:"note"`
	TestedBy  string           `json:"tested_by"`
	TestedAt  *time.Time       `json:"tested_at"`
}

func UATConvert(rec dbmodels.UATRecord) UATView {
	return UATView{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		Round:     rec.Round,
		Detail:    rec.Detail,
		Result:    rec.Result,
		Note:      rec.Note,
		TestedBy:  rec.TestedBy,
		TestedAt:  rec.TestedAt,
	}
}
