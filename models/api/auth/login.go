package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "it-requests-backend/models/db"
	"it-requests-backend/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// UserProfile is the directory record returned at login; the front end
// keeps it as its session object.
type UserProfile struct {
	ID                   int             `json:"id"`
	Username             string          `json:"username"`
	FullName             string          `json:"full_name"`
	Phone                string          `json:"phone"`
	Position             models.Position `json:"position"`
	DepartmentID         int             `json:"department_id"`
	DivisionCompetencyID int             `json:"division_competency_id"`
	SectionCompetencyID  int             `json:"section_competency_id"`
	IsAdmin              bool            `json:"is_admin"`
	IsITStaff            bool            `json:"is_it_staff"`
}

func UserProfileConvert(rec dbmodels.Employee) UserProfile {
	return UserProfile{
		ID:                   rec.ID,
		Username:             rec.Username,
		FullName:             rec.FullName(),
		Phone:                rec.Phone,
		Position:             rec.Position,
		DepartmentID:         rec.DepartmentID,
		DivisionCompetencyID: rec.DivisionCompetencyID,
		SectionCompetencyID:  rec.SectionCompetencyID,
		IsAdmin:              rec.IsAdmin,
		IsITStaff:            rec.IsITStaff(),
	}
}

type LoginResponse struct {
	JWTResponse
	User UserProfile `json:"user"`
}
