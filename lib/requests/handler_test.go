package requesthandler

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"it-requests-backend/db"
	approvalstore "it-requests-backend/lib/approval/store"
	xlsexport "it-requests-backend/lib/export/xls"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	dictapimodels "it-requests-backend/models/api/dict"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type fakeDepartments struct{}

func (fakeDepartments) Create(dictapimodels.DepartmentData) (int, error) { return 0, nil }
func (fakeDepartments) Update(int, dictapimodels.DepartmentData) error   { return nil }
func (fakeDepartments) Get(id int) (dictapimodels.DepartmentView, error) {
	return dictapimodels.DepartmentView{ID: id}, nil
}
func (fakeDepartments) Find(dictapimodels.DepartmentFind) ([]dictapimodels.DepartmentView, error) {
	return nil, nil
}
func (fakeDepartments) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeDepartments) Delete(int) error { return nil }

type fakeTypes struct{}

func (fakeTypes) Create(dictapimodels.RequestTypeData) (int, error) { return 0, nil }
func (fakeTypes) Update(int, dictapimodels.RequestTypeData) error   { return nil }
func (fakeTypes) Get(id int) (dictapimodels.RequestTypeView, error) {
	return dictapimodels.RequestTypeView{ID: id}, nil
}
func (fakeTypes) List() ([]dictapimodels.RequestTypeView, error) { return nil, nil }
func (fakeTypes) Options(context.Context) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeTypes) Delete(int) error { return nil }

type fakeTopics struct{}

func (fakeTopics) Create(dictapimodels.TopicData) (int, error) { return 0, nil }
func (fakeTopics) Update(int, dictapimodels.TopicData) error   { return nil }
func (fakeTopics) Get(id int) (dictapimodels.TopicView, error) {
	return dictapimodels.TopicView{ID: id}, nil
}
func (fakeTopics) List() ([]dictapimodels.TopicView, error) { return nil, nil }
func (fakeTopics) Options(context.Context) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeTopics) Delete(int) error                                  { return nil }
func (fakeTopics) CreateSub(dictapimodels.SubTopicData) (int, error) { return 0, nil }
func (fakeTopics) UpdateSub(int, dictapimodels.SubTopicData) error   { return nil }
func (fakeTopics) ListSub(int) ([]dictapimodels.SubTopicView, error) { return nil, nil }
func (fakeTopics) SubOptions(context.Context, int) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeTopics) DeleteSub(int) error { return nil }

type fakePriorities struct{}

func (fakePriorities) Create(dictapimodels.PriorityData) (int, error) { return 0, nil }
func (fakePriorities) Update(int, dictapimodels.PriorityData) error   { return nil }
func (fakePriorities) Get(id int) (dictapimodels.PriorityView, error) {
	return dictapimodels.PriorityView{ID: id}, nil
}
func (fakePriorities) List() ([]dictapimodels.PriorityView, error) { return nil, nil }
func (fakePriorities) Options(context.Context) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakePriorities) Delete(int) error { return nil }

type fakePrograms struct{}

func (fakePrograms) Create(dictapimodels.ProgramData) (int, error) { return 0, nil }
func (fakePrograms) Update(int, dictapimodels.ProgramData) error   { return nil }
func (fakePrograms) Get(id int) (dictapimodels.ProgramView, error) {
	return dictapimodels.ProgramView{ID: id}, nil
}
func (fakePrograms) List() ([]dictapimodels.ProgramView, error) { return nil, nil }
func (fakePrograms) Options(context.Context) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakePrograms) Delete(int) error { return nil }

func testHandler(t *testing.T) impl {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)

	db.DB = gormDB
	t.Cleanup(func() { db.DB = nil })

	xlsexport.NewHandler()
	return impl{
		store:              requeststore.NewInstance(gormDB),
		approvalStore:      approvalstore.NewInstance(gormDB),
		departmentProvider: fakeDepartments{},
		typeProvider:       fakeTypes{},
		topicProvider:      fakeTopics{},
		priorityProvider:   fakePriorities{},
		programProvider:    fakePrograms{},
		xlsExport:          xlsexport.Instance,
	}
}

var requester = models.UserScope{
	Username:     "john.t",
	FullName:     "John Tester",
	Position:     models.PositionStaff,
	DepartmentID: 5,
}

func createData(title string) requestapimodels.RequestCreateData {
	return requestapimodels.RequestCreateData{RequestData: requestapimodels.RequestData{
		DepartmentID: 5,
		TypeID:       1,
		Title:        title,
	}}
}

func TestCreateRequest(t *testing.T) {
	handler := testHandler(t)

	t.Run("code and chain seed", func(t *testing.T) {
		id, err := handler.Create(requester, createData("vpn access"))
		require.Nil(t, err)

		item, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Regexp(t, regexp.MustCompile(`^IT\d{9}$`), item.Code)
		require.Equal(t, models.RequestStatusRequested, item.Status)
		require.Equal(t, "John Tester", item.RequesterName)
		require.Equal(t, "john.t", item.RequesterUsername)

		require.Len(t, item.Approvals, 1)
		require.Equal(t, models.ApprovalRoleManager, item.Approvals[0].Role)
		require.Equal(t, models.ADecisionAwaiting, item.Approvals[0].Decision)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := handler.Create(requester, createData(""))
		require.NotNil(t, err)
	})
}

func TestUpdateRequest(t *testing.T) {
	handler := testHandler(t)

	id, err := handler.Create(requester, createData("old title"))
	require.Nil(t, err)

	t.Run("requester edits at requested", func(t *testing.T) {
		data := requestapimodels.RequestEditData{RequestData: requestapimodels.RequestData{
			DepartmentID: 5,
			TypeID:       1,
			Title:        "new title",
		}}
		err := handler.Update(id, requester, data)
		require.Nil(t, err)

		item, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "new title", item.Title)
	})

	t.Run("someone else is rejected", func(t *testing.T) {
		other := models.UserScope{Username: "kate.m", Position: models.PositionStaff}
		err := handler.Update(id, other, requestapimodels.RequestEditData{RequestData: requestapimodels.RequestData{
			DepartmentID: 5, TypeID: 1, Title: "hijack",
		}})
		require.NotNil(t, err)
	})

	t.Run("locked once the chain moved", func(t *testing.T) {
		err := handler.store.Update(id, map[string]interface{}{"status": models.RequestStatusManagerApproved})
		require.Nil(t, err)

		err = handler.Update(id, requester, requestapimodels.RequestEditData{RequestData: requestapimodels.RequestData{
			DepartmentID: 5, TypeID: 1, Title: "too late",
		}})
		require.NotNil(t, err)
	})
}

func TestChangeStatus(t *testing.T) {
	handler := testHandler(t)
	itStaff := models.UserScope{Username: "it.dev", Position: models.PositionStaff, DepartmentID: models.ITDepartmentID}

	id, err := handler.Create(requester, createData("crm fix"))
	require.Nil(t, err)

	t.Run("requester cancels own request", func(t *testing.T) {
		err := handler.ChangeStatus(id, requester, models.RequestStatusCancelled)
		require.Nil(t, err)
	})

	t.Run("terminal state takes no further changes", func(t *testing.T) {
		err := handler.ChangeStatus(id, itStaff, models.RequestStatusInProgress)
		require.NotNil(t, err)
	})

	t.Run("work transitions are it staff only", func(t *testing.T) {
		workID, err := handler.Create(requester, createData("dwh report"))
		require.Nil(t, err)
		err = handler.store.Update(workID, map[string]interface{}{"status": models.RequestStatusApproved})
		require.Nil(t, err)

		err = handler.ChangeStatus(workID, requester, models.RequestStatusInProgress)
		require.NotNil(t, err)

		err = handler.ChangeStatus(workID, itStaff, models.RequestStatusInProgress)
		require.Nil(t, err)

		err = handler.ChangeStatus(workID, itStaff, models.RequestStatusComplete)
		require.Nil(t, err)
	})
}

func TestDeleteRequest(t *testing.T) {
	handler := testHandler(t)
	admin := models.UserScope{Username: "root", IsAdmin: true}

	id, err := handler.Create(requester, createData("stale request"))
	require.Nil(t, err)

	err = handler.Delete(id, requester)
	require.NotNil(t, err)

	err = handler.Delete(id, admin)
	require.Nil(t, err)

	item, err := handler.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.RequestStatusCancelled, item.Status)

	// already closed
	err = handler.Delete(id, admin)
	require.NotNil(t, err)
}

func TestApplyScope(t *testing.T) {
	t.Run("staff is narrowed to the department", func(t *testing.T) {
		filter := applyScope(models.UserScope{Position: models.PositionStaff, DepartmentID: 5}, requestapimodels.RequestFilter{})
		require.Equal(t, 5, filter.DepartmentID)
		require.Equal(t, 0, filter.DivisionCompetencyID)
	})

	t.Run("manager is narrowed to the division competency", func(t *testing.T) {
		filter := applyScope(models.UserScope{Position: models.PositionManager, DivisionCompetencyID: 12}, requestapimodels.RequestFilter{})
		require.Equal(t, 12, filter.DivisionCompetencyID)
		require.Equal(t, 0, filter.DepartmentID)
	})

	t.Run("director is narrowed to section and division", func(t *testing.T) {
		filter := applyScope(models.UserScope{Position: models.PositionDirector, SectionCompetencyID: 3, DivisionCompetencyID: 12}, requestapimodels.RequestFilter{})
		require.Equal(t, 3, filter.SectionCompetencyID)
		require.Equal(t, 12, filter.DivisionCompetencyID)
	})

	t.Run("it staff and admins see everything", func(t *testing.T) {
		filter := applyScope(models.UserScope{Position: models.PositionStaff, DepartmentID: models.ITDepartmentID}, requestapimodels.RequestFilter{})
		require.Equal(t, 0, filter.DepartmentID)

		filter = applyScope(models.UserScope{IsAdmin: true, DepartmentID: 5}, requestapimodels.RequestFilter{})
		require.Equal(t, 0, filter.DepartmentID)
	})
}

func TestExportRegister(t *testing.T) {
	handler := testHandler(t)

	_, err := handler.Create(requester, createData("export me"))
	require.Nil(t, err)

	buf, err := handler.ExportRegister(models.UserScope{IsAdmin: true}, requestapimodels.RequestFilter{})
	require.Nil(t, err)
	require.NotNil(t, buf)
	require.Greater(t, buf.Len(), 0)
}
