package dbmodels

import (
	"github.com/pkg/errors"
)

// RatingQuestion is a dictionary entry shown when rating a closed request;
// the set of questions depends on the request type.
type RatingQuestion struct {
	RefModel
	TypeID       int    `gorm:"index" json:"type_id"`
	Text         string `gorm:"type:varchar(512)" json:"text"`
	DisplayOrder int    `json:"display_order"`
	Enabled      bool   `gorm:"default:true" json:"enabled"`
}

func (q *RatingQuestion) Validate() error {
	if q.TypeID == 0 {
		return errors.New("rating question type reference is required")
	}
	if q.Text == "" {
		return errors.New("rating question text is required")
	}
	return nil
}

// Rating is the service score recorded by the requester after completion;
// one per request.
type Rating struct {
	BaseModel
	RequestID string        `gorm:"type:varchar(36);uniqueIndex" json:"request_id"`
	Comment   string        `gorm:"type:text" json:"comment"`
	Scores    []RatingScore `gorm:"foreignKey:RatingID" json:"scores,omitempty"`
}

type RatingScore struct {
	BaseModel
	RatingID   string `gorm:"type:varchar(36);index:idx_rating_question,unique" json:"rating_id"`
	QuestionID int    `gorm:"index:idx_rating_question,unique" json:"question_id"`
	Score      int    `json:"score"`
}

func (s *RatingScore) Validate() error {
	if s.Score < 1 || s.Score > 5 {
		return errors.New("score must be between 1 and 5")
	}
	return nil
}
