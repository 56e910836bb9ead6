package models

// Position is the employee position code carried by the directory and the
// JWT. The codes come from the AD payload.
type Position string

const (
	PositionStaff    Position = "s"
	PositionHead     Position = "h"
	PositionManager  Position = "m"
	PositionDirector Position = "d"
)

var positionHumanName = map[Position]string{
	PositionStaff:    "Staff",
	PositionHead:     "Head",
	PositionManager:  "Manager",
	PositionDirector: "Director",
}

func (p Position) ToHuman() string {
	if human, exist := positionHumanName[p]; exist {
		return human
	}
	return string(p)
}

// IT staff membership rule: a fixed set of department/competency codes
// grants access to the IT views and the IT approval steps.
const (
	ITDepartmentID         = 28
	ITDivisionCompetencyID = 86
	ITSectionCompetencyID  = 28
)

func IsITStaff(departmentID, divisionCompetencyID, sectionCompetencyID int) bool {
	return departmentID == ITDepartmentID ||
		divisionCompetencyID == ITDivisionCompetencyID ||
		sectionCompetencyID == ITSectionCompetencyID
}

// CanDecide reports whether an employee with the given position and IT
// staff membership may sign off the given approval step.
func (p Position) CanDecide(role ApprovalRole, itStaff bool) bool {
	switch role {
	case ApprovalRoleManager:
		return p == PositionManager && !itStaff
	case ApprovalRoleDirector:
		return p == PositionDirector && !itStaff
	case ApprovalRoleITManager:
		return p == PositionManager && itStaff
	case ApprovalRoleITDirector:
		return p == PositionDirector && itStaff
	}
	return false
}
