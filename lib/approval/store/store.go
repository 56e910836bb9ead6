package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Approval) (id string, err error)
	GetByRequestAndRole(requestID string, role models.ApprovalRole) (rec *dbmodels.Approval, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByRequest(requestID string) (list []dbmodels.Approval, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approval) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByRequestAndRole(requestID string, role models.ApprovalRole) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
	err := i.db.
		Where("request_id = ?", requestID).
		Where("role = ?", role).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByRequest(requestID string) (list []dbmodels.Approval, err error) {
	list = []dbmodels.Approval{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
