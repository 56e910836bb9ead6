package models

// RequestStatus is the explicit lifecycle state of an IT request. Every
// transition goes through AllowChange or the approval transition table,
// never through ad hoc field updates.
type RequestStatus string

const (
	RequestStatusRequested        RequestStatus = "request"
	RequestStatusManagerApproved  RequestStatus = "m_approved"
	RequestStatusDirectorApproved RequestStatus = "d_approved"
	RequestStatusITManagerApproved RequestStatus = "it_m_approved"
	RequestStatusApproved         RequestStatus = "approved"
	RequestStatusInProgress       RequestStatus = "inprogress"
	RequestStatusComplete         RequestStatus = "complete"
	RequestStatusRejected         RequestStatus = "rejected"
	RequestStatusCancelled        RequestStatus = "cancel"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusRequested:         "Request",
	RequestStatusManagerApproved:   "Manager approved",
	RequestStatusDirectorApproved:  "Director approved",
	RequestStatusITManagerApproved: "IT manager approved",
	RequestStatusApproved:          "Approved",
	RequestStatusInProgress:        "In progress",
	RequestStatusComplete:          "Complete",
	RequestStatusRejected:          "Rejected",
	RequestStatusCancelled:         "Cancelled",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// allowedChanges lists the status transitions reachable through the
// change_status operation. Approval transitions live in approvalTransitions.
var allowedChanges = map[RequestStatus][]RequestStatus{
	RequestStatusRequested:         {RequestStatusCancelled},
	RequestStatusManagerApproved:   {RequestStatusCancelled},
	RequestStatusDirectorApproved:  {RequestStatusCancelled},
	RequestStatusITManagerApproved: {RequestStatusCancelled},
	RequestStatusApproved:          {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress:        {RequestStatusComplete, RequestStatusCancelled},
}

func (s RequestStatus) IsAllowChange(to RequestStatus) bool {
	for _, allowed := range allowedChanges[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusComplete || s == RequestStatusRejected || s == RequestStatusCancelled
}

// ApprovalRole identifies a step of the sign-off chain, in order of
// precedence.
type ApprovalRole string

const (
	ApprovalRoleManager    ApprovalRole = "manager"
	ApprovalRoleDirector   ApprovalRole = "director"
	ApprovalRoleITManager  ApprovalRole = "it_manager"
	ApprovalRoleITDirector ApprovalRole = "it_director"
)

// ApprovalChain is the fixed sign-off order applied to every request.
var ApprovalChain = []ApprovalRole{
	ApprovalRoleManager,
	ApprovalRoleDirector,
	ApprovalRoleITManager,
	ApprovalRoleITDirector,
}

func (r ApprovalRole) IsITRole() bool {
	return r == ApprovalRoleITManager || r == ApprovalRoleITDirector
}

// NextRole returns the role that follows r in the chain, or "" for the
// last step.
func (r ApprovalRole) NextRole() ApprovalRole {
	for idx, role := range ApprovalChain {
		if role == r && idx+1 < len(ApprovalChain) {
			return ApprovalChain[idx+1]
		}
	}
	return ""
}

type ApprovalDecision string

const (
	ADecisionAwaiting ApprovalDecision = "awaiting"
	ADecisionApproved ApprovalDecision = "approved"
	ADecisionRejected ApprovalDecision = "unapprove"
)

type approvalTransitionKey struct {
	Status   RequestStatus
	Role     ApprovalRole
	Decision ApprovalDecision
}

// approvalTransitions maps {current status, deciding role, decision} to the
// next request status. A combination absent from the table is an illegal
// transition.
var approvalTransitions = map[approvalTransitionKey]RequestStatus{
	{RequestStatusRequested, ApprovalRoleManager, ADecisionApproved}:           RequestStatusManagerApproved,
	{RequestStatusRequested, ApprovalRoleManager, ADecisionRejected}:           RequestStatusRejected,
	{RequestStatusManagerApproved, ApprovalRoleDirector, ADecisionApproved}:    RequestStatusDirectorApproved,
	{RequestStatusManagerApproved, ApprovalRoleDirector, ADecisionRejected}:    RequestStatusRejected,
	{RequestStatusDirectorApproved, ApprovalRoleITManager, ADecisionApproved}:  RequestStatusITManagerApproved,
	{RequestStatusDirectorApproved, ApprovalRoleITManager, ADecisionRejected}:  RequestStatusRejected,
	{RequestStatusITManagerApproved, ApprovalRoleITDirector, ADecisionApproved}: RequestStatusApproved,
	{RequestStatusITManagerApproved, ApprovalRoleITDirector, ADecisionRejected}: RequestStatusRejected,
}

// NextApprovalStatus resolves the approval transition table.
func NextApprovalStatus(current RequestStatus, role ApprovalRole, decision ApprovalDecision) (RequestStatus, bool) {
	next, ok := approvalTransitions[approvalTransitionKey{current, role, decision}]
	return next, ok
}

// PendingRole returns the role whose decision the request is waiting for.
func (s RequestStatus) PendingRole() ApprovalRole {
	switch s {
	case RequestStatusRequested:
		return ApprovalRoleManager
	case RequestStatusManagerApproved:
		return ApprovalRoleDirector
	case RequestStatusDirectorApproved:
		return ApprovalRoleITManager
	case RequestStatusITManagerApproved:
		return ApprovalRoleITDirector
	}
	return ""
}
