package approvalhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"it-requests-backend/db"
	approvalstore "it-requests-backend/lib/approval/store"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	dictapimodels "it-requests-backend/models/api/dict"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type fakeEmployees struct{}

func (fakeEmployees) Create(dictapimodels.EmployeeData) (int, error)   { return 0, nil }
func (fakeEmployees) Update(int, dictapimodels.EmployeeData) error     { return nil }
func (fakeEmployees) Get(int) (dictapimodels.EmployeeView, error)      { return dictapimodels.EmployeeView{}, nil }
func (fakeEmployees) GetByUsername(string) (*dbmodels.Employee, error) { return nil, nil }
func (fakeEmployees) Find(dictapimodels.EmployeeFind) ([]dictapimodels.EmployeeView, error) {
	return nil, nil
}
func (fakeEmployees) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeEmployees) Delete(int) error { return nil }

type fakeMailer struct{}

func (fakeMailer) SendEMail(from, to, message, subject string) error { return nil }

func testHandler(t *testing.T) impl {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)

	db.DB = gormDB
	t.Cleanup(func() { db.DB = nil })

	return impl{
		store:            approvalstore.NewInstance(gormDB),
		requestStore:     requeststore.NewInstance(gormDB),
		employeeProvider: fakeEmployees{},
		emailProvider:    fakeMailer{},
	}
}

// seedRequest creates a request with its first chain row awaiting the
// manager, the state Create leaves behind.
func seedRequest(t *testing.T, code string) string {
	t.Helper()
	requests := requeststore.NewInstance(db.DB)
	approvals := approvalstore.NewInstance(db.DB)
	requestID, err := requests.Create(dbmodels.Request{
		Code:              code,
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "erp access",
		Status:            models.RequestStatusRequested,
	})
	require.Nil(t, err)
	_, err = approvals.Create(dbmodels.Approval{
		RequestID: requestID,
		Role:      models.ApprovalRoleManager,
		Decision:  models.ADecisionAwaiting,
	})
	require.Nil(t, err)
	return requestID
}

var (
	manager    = models.UserScope{Username: "boss.m", FullName: "Boss M", Position: models.PositionManager}
	director   = models.UserScope{Username: "boss.d", FullName: "Boss D", Position: models.PositionDirector}
	itManager  = models.UserScope{Username: "it.m", FullName: "IT M", Position: models.PositionManager, DepartmentID: models.ITDepartmentID}
	itDirector = models.UserScope{Username: "it.d", FullName: "IT D", Position: models.PositionDirector, DepartmentID: models.ITDepartmentID}
)

func approve(name string) requestapimodels.ApprovalDecisionData {
	return requestapimodels.ApprovalDecisionData{Name: name, Status: models.ADecisionApproved}
}

func TestDecideChain(t *testing.T) {
	handler := testHandler(t)
	requestID := seedRequest(t, "IT260830501")

	err := handler.Decide(requestID, manager, models.ApprovalRoleManager, approve("Boss M"))
	require.Nil(t, err)

	err = handler.Decide(requestID, director, models.ApprovalRoleDirector, approve("Boss D"))
	require.Nil(t, err)

	err = handler.Decide(requestID, itManager, models.ApprovalRoleITManager, approve("IT M"))
	require.Nil(t, err)

	err = handler.Decide(requestID, itDirector, models.ApprovalRoleITDirector, approve("IT D"))
	require.Nil(t, err)

	rec, err := requeststore.NewInstance(db.DB).GetByID(requestID)
	require.Nil(t, err)
	require.Equal(t, models.RequestStatusApproved, rec.Status)

	list, err := handler.ListByRequest(requestID)
	require.Nil(t, err)
	require.Len(t, list, 4)
	for _, stage := range list {
		require.Equal(t, models.ADecisionApproved, stage.Decision)
		require.NotNil(t, stage.DecidedAt)
	}
}

func TestDecideGuards(t *testing.T) {
	handler := testHandler(t)
	requestID := seedRequest(t, "IT260830502")

	t.Run("out of order decision", func(t *testing.T) {
		err := handler.Decide(requestID, director, models.ApprovalRoleDirector, approve("Boss D"))
		require.NotNil(t, err)
	})

	t.Run("position mismatch", func(t *testing.T) {
		err := handler.Decide(requestID, director, models.ApprovalRoleManager, approve("Boss D"))
		require.NotNil(t, err)
	})

	t.Run("it staff can not take the business steps", func(t *testing.T) {
		err := handler.Decide(requestID, itManager, models.ApprovalRoleManager, approve("IT M"))
		require.NotNil(t, err)
	})

	t.Run("double decision", func(t *testing.T) {
		err := handler.Decide(requestID, manager, models.ApprovalRoleManager, approve("Boss M"))
		require.Nil(t, err)

		err = handler.Decide(requestID, manager, models.ApprovalRoleManager, approve("Boss M"))
		require.NotNil(t, err)
	})

	t.Run("unknown request", func(t *testing.T) {
		err := handler.Decide("00000000-0000-0000-0000-000000000000", manager, models.ApprovalRoleManager, approve("Boss M"))
		require.NotNil(t, err)
	})
}

func TestDecideReject(t *testing.T) {
	handler := testHandler(t)

	t.Run("rejection closes the request", func(t *testing.T) {
		requestID := seedRequest(t, "IT260830503")
		err := handler.Decide(requestID, manager, models.ApprovalRoleManager, requestapimodels.ApprovalDecisionData{
			Name:   "Boss M",
			Status: models.ADecisionRejected,
		})
		require.Nil(t, err)

		rec, err := requeststore.NewInstance(db.DB).GetByID(requestID)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusRejected, rec.Status)

		// no further chain row is created after a rejection
		list, err := handler.ListByRequest(requestID)
		require.Nil(t, err)
		require.Len(t, list, 1)
	})

	t.Run("it rejection requires a note", func(t *testing.T) {
		requestID := seedRequest(t, "IT260830504")
		err := handler.Decide(requestID, manager, models.ApprovalRoleManager, approve("Boss M"))
		require.Nil(t, err)
		err = handler.Decide(requestID, director, models.ApprovalRoleDirector, approve("Boss D"))
		require.Nil(t, err)

		err = handler.Decide(requestID, itManager, models.ApprovalRoleITManager, requestapimodels.ApprovalDecisionData{
			Name:   "IT M",
			Status: models.ADecisionRejected,
		})
		require.NotNil(t, err)

		err = handler.Decide(requestID, itManager, models.ApprovalRoleITManager, requestapimodels.ApprovalDecisionData{
			Name:   "IT M",
			Status: models.ADecisionRejected,
			Note:   "no capacity this quarter",
		})
		require.Nil(t, err)
	})
}
