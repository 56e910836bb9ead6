package subtaskhandler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	requeststore "it-requests-backend/lib/requests/store"
	subtaskstore "it-requests-backend/lib/subtask/store"
	"it-requests-backend/models"
	dictapimodels "it-requests-backend/models/api/dict"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

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

func testHandler(t *testing.T) (impl, string) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)

	requests := requeststore.NewInstance(gormDB)
	requestID, err := requests.Create(dbmodels.Request{
		Code:              "IT260830301",
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "crm report",
		Status:            models.RequestStatusInProgress,
	})
	require.Nil(t, err)

	handler := impl{
		store:            subtaskstore.NewInstance(gormDB),
		requestStore:     requests,
		priorityProvider: fakePriorities{},
	}
	return handler, requestID
}

func TestCreate(t *testing.T) {
	handler, requestID := testHandler(t)
	user := models.UserScope{Username: "it.dev", Position: models.PositionStaff}

	t.Run("defaults to open", func(t *testing.T) {
		id, err := handler.Create(requestID, user, requestapimodels.SubtaskData{Name: "design the query"})
		require.Nil(t, err)

		item, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, models.SubtaskStatusOpen, item.Status)
	})

	t.Run("inverted date range is rejected", func(t *testing.T) {
		start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		due := start.Add(-24 * time.Hour)
		_, err := handler.Create(requestID, user, requestapimodels.SubtaskData{
			Name:      "broken dates",
			StartDate: &start,
			DueDate:   &due,
		})
		require.NotNil(t, err)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := handler.Create(requestID, user, requestapimodels.SubtaskData{})
		require.NotNil(t, err)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := handler.Create("00000000-0000-0000-0000-000000000000", user, requestapimodels.SubtaskData{Name: "x"})
		require.NotNil(t, err)
	})
}

func TestPatch(t *testing.T) {
	handler, requestID := testHandler(t)
	user := models.UserScope{Username: "it.dev", Position: models.PositionStaff}

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	id, err := handler.Create(requestID, user, requestapimodels.SubtaskData{
		Name:      "load fixtures",
		StartDate: &start,
		DueDate:   &due,
	})
	require.Nil(t, err)

	t.Run("single field edit keeps the pair consistent", func(t *testing.T) {
		early := start.Add(-48 * time.Hour)
		err := handler.Patch(id, user, requestapimodels.SubtaskPatchData{DueDate: &early})
		require.NotNil(t, err)

		late := due.Add(48 * time.Hour)
		err = handler.Patch(id, user, requestapimodels.SubtaskPatchData{DueDate: &late})
		require.Nil(t, err)

		item, err := handler.GetByID(id)
		require.Nil(t, err)
		require.True(t, item.DueDate.Equal(late))
	})

	t.Run("status and name", func(t *testing.T) {
		name := "load the fixtures"
		status := models.SubtaskStatusDone
		err := handler.Patch(id, user, requestapimodels.SubtaskPatchData{Name: &name, Status: &status})
		require.Nil(t, err)

		item, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, name, item.Name)
		require.Equal(t, models.SubtaskStatusDone, item.Status)
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := handler.ListByRequest(requestID)
		require.Nil(t, err)
		require.Len(t, list, 1)

		err = handler.Delete(id, user)
		require.Nil(t, err)

		list, err = handler.ListByRequest(requestID)
		require.Nil(t, err)
		require.Len(t, list, 0)
	})
}
