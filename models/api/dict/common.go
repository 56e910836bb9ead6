package dictapimodels

import (
	"github.com/pkg/errors"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

// Option is the {key,label} pair selection widgets consume.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RequestTypeData struct {
	Name       string `json:"name"`
	CodePrefix string `json:"code_prefix"`
	Enabled    *bool  `json:"enabled"`
}

func (d RequestTypeData) Validate() error {
	if d.Name == "" {
		return errors.New("request type name is required")
	}
	return nil
}

type RequestTypeView struct {
	RequestTypeData
	ID int `json:"id"`
}

func RequestTypeConvert(rec dbmodels.RequestType) RequestTypeView {
	enabled := rec.Enabled
	return RequestTypeView{
		RequestTypeData: RequestTypeData{
			Name:       rec.Name,
			CodePrefix: rec.CodePrefix,
			Enabled:    &enabled,
		},
		ID: rec.ID,
	}
}

type StatusData struct {
	Value        models.RequestStatus `json:"value"`
	Name         string               `json:"name"`
	DisplayOrder int                  `json:"display_order"`
	IsApproval   bool                 `json:"is_approval"`
	Enabled      *bool                `json:"enabled"`
}

func (d StatusData) Validate() error {
	if d.Value == "" {
		return errors.New("status value is required")
	}
	if d.Name == "" {
		return errors.New("status name is required")
	}
	return nil
}

type StatusView struct {
	StatusData
	ID int `json:"id"`
}

func StatusConvert(rec dbmodels.Status) StatusView {
	enabled := rec.Enabled
	return StatusView{
		StatusData: StatusData{
			Value:        rec.Value,
			Name:         rec.Name,
			DisplayOrder: rec.DisplayOrder,
			IsApproval:   rec.IsApproval,
			Enabled:      &enabled,
		},
		ID: rec.ID,
	}
}

type PriorityData struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Enabled      *bool  `json:"enabled"`
}

func (d PriorityData) Validate() error {
	if d.Name == "" {
		return errors.New("priority name is required")
	}
	return nil
}

type PriorityView struct {
	PriorityData
	ID int `json:"id"`
}

func PriorityConvert(rec dbmodels.Priority) PriorityView {
	enabled := rec.Enabled
	return PriorityView{
		PriorityData: PriorityData{
			Name:         rec.Name,
			DisplayOrder: rec.DisplayOrder,
			Enabled:      &enabled,
		},
		ID: rec.ID,
	}
}

type ProgramData struct {
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
}

func (d ProgramData) Validate() error {
	if d.Name == "" {
		return errors.New("program name is required")
	}
	return nil
}

type ProgramView struct {
	ProgramData
	ID int `json:"id"`
}

func ProgramConvert(rec dbmodels.Program) ProgramView {
	enabled := rec.Enabled
	return ProgramView{
		ProgramData: ProgramData{
			Name:    rec.Name,
			Enabled: &enabled,
		},
		ID: rec.ID,
	}
}
