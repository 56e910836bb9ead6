package dbmodels

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"it-requests-backend/models"
)

type Topic struct {
	RefModel
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (t *Topic) AfterDelete(tx *gorm.DB) (err error) {
	if t.ID == 0 {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("topic_id = ?", t.ID).Delete(&SubTopic{})
	return
}

func (t *Topic) Validate() error {
	if t.Name == "" {
		return errors.New("topic name is required")
	}
	return nil
}

type SubTopic struct {
	RefModel
	TopicID int    `gorm:"index" json:"topic_id"`
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (t *SubTopic) Validate() error {
	if t.TopicID == 0 {
		return errors.New("subtopic topic reference is required")
	}
	if t.Name == "" {
		return errors.New("subtopic name is required")
	}
	return nil
}

// RequestType drives the request code prefix: 1 service (IT), 2 system
// (IS), 3 development (DEV).
type RequestType struct {
	RefModel
	Name       string `gorm:"type:varchar(255)" json:"name"`
	CodePrefix string `gorm:"type:varchar(8)" json:"code_prefix"`
	Enabled    bool   `gorm:"default:true" json:"enabled"`
}

func (t *RequestType) Validate() error {
	if t.Name == "" {
		return errors.New("request type name is required")
	}
	return nil
}

// Status mirrors the RequestStatus enum as a display dictionary with
// ordering and the approval-stage marker.
type Status struct {
	RefModel
	Value        models.RequestStatus `gorm:"type:varchar(32);uniqueIndex" json:"value"`
	Name         string               `gorm:"type:varchar(255)" json:"name"`
	DisplayOrder int                  `json:"display_order"`
	IsApproval   bool                 `json:"is_approval"`
	Enabled      bool                 `gorm:"default:true" json:"enabled"`
}

func (s *Status) Validate() error {
	if s.Value == "" {
		return errors.New("status value is required")
	}
	if s.Name == "" {
		return errors.New("status name is required")
	}
	return nil
}

type Priority struct {
	RefModel
	Name         string `gorm:"type:varchar(255)" json:"name"`
	DisplayOrder int    `json:"display_order"`
	Enabled      bool   `gorm:"default:true" json:"enabled"`
}

func (p *Priority) Validate() error {
	if p.Name == "" {
		return errors.New("priority name is required")
	}
	return nil
}

// Program is the application catalogue entry referenced by continuing
// development requests in place of a topic.
type Program struct {
	RefModel
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (p *Program) Validate() error {
	if p.Name == "" {
		return errors.New("program name is required")
	}
	return nil
}
