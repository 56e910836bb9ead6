package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "it-requests-backend/models/db"
)

type TopicData struct {
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
}

func (d TopicData) Validate() error {
	if d.Name == "" {
		return errors.New("topic name is required")
	}
	return nil
}

type TopicView struct {
	TopicData
	ID int `json:"id"`
}

func TopicConvert(rec dbmodels.Topic) TopicView {
	enabled := rec.Enabled
	return TopicView{
		TopicData: TopicData{
			Name:    rec.Name,
			Enabled: &enabled,
		},
		ID: rec.ID,
	}
}

type SubTopicData struct {
	TopicID int    `json:"topic_id"`
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
}

func (d SubTopicData) Validate() error {
	if d.TopicID == 0 {
		return errors.New("subtopic topic reference is required")
	}
	if d.Name == "" {
		return errors.New("subtopic name is required")
	}
	return nil
}

type SubTopicView struct {
	SubTopicData
	ID int `json:"id"`
}

func SubTopicConvert(rec dbmodels.SubTopic) SubTopicView {
	enabled := rec.Enabled
	return SubTopicView{
		SubTopicData: SubTopicData{
			TopicID: rec.TopicID,
			Name:    rec.Name,
			Enabled: &enabled,
		},
		ID: rec.ID,
	}
}
