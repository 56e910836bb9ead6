package requestapimodels

import (
	"github.com/pkg/errors"
	dbmodels "it-requests-backend/models/db"
)

type RatingQuestionData struct {
	TypeID       int    `json:"type_id"`
	Text         string `json:"text"`
	DisplayOrder int    `json:"display_order"`
	Enabled      *bool  `json:"enabled"`
}

func (r RatingQuestionData) Validate() error {
	if r.TypeID == 0 {
		return errors.New("rating question type reference is required")
	}
	if r.Text == "" {
		return errors.New("rating question text is required")
	}
	return nil
}

type RatingQuestionView struct {
	ID           int    `json:"id"`
	TypeID       int    `json:"type_id"`
	Text         string `json:"text"`
	DisplayOrder int    `json:"display_order"`
}

func RatingQuestionConvert(rec dbmodels.RatingQuestion) RatingQuestionView {
	return RatingQuestionView{
		ID:           rec.ID,
		TypeID:       rec.TypeID,
		Text:         rec.Text,
		DisplayOrder: rec.DisplayOrder,
	}
}

type RatingScoreData struct {
	QuestionID int `json:"question_id"`
	Score      int `json:"score"`
}

type RatingData struct {
	Comment string            `json:"comment"`
	Scores  []RatingScoreData `json:"scores"`
}

func (r RatingData) Validate() error {
	if len(r.Scores) == 0 {
		return errors.New("at least one score is required")
	}
	for _, score := range r.Scores {
		if score.QuestionID == 0 {
			return errors.New("score question reference is required")
		}
		if score.Score < 1 || score.Score > 5 {
			return errors.New("score must be between 1 and 5")
		}
	}
	return nil
}

type RatingView struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id"`
	Comment   string            `json:"comment"`
	Scores    []RatingScoreView `json:"scores"`
}

type RatingScoreView struct {
	QuestionID int `json:"question_id"`
	Score      int `json:"score"`
}

func RatingConvert(rec dbmodels.Rating) RatingView {
	view := RatingView{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		Comment:   rec.Comment,
	}
	for _, score := range rec.Scores {
		view.Scores = append(view.Scores, RatingScoreView{
			QuestionID: score.QuestionID,
			Score:      score.Score,
		})
	}
	return view
}
