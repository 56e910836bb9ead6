package requeststore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"it-requests-backend/models"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = db.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)
	return db
}

func newRequest(code string, status models.RequestStatus) dbmodels.Request {
	return dbmodels.Request{
		Code:              code,
		RequesterName:     "John Tester",
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "printer is down",
		Status:            status,
	}
}

func TestStore(t *testing.T) {
	store := NewInstance(testDB(t))

	t.Run("create and get", func(t *testing.T) {
		id, err := store.Create(newRequest("IT260830001", models.RequestStatusRequested))
		require.Nil(t, err)
		require.NotEmpty(t, id)

		rec, err := store.GetByID(id)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "IT260830001", rec.Code)
		require.Equal(t, models.RequestStatusRequested, rec.Status)

		byCode, err := store.GetByCode("IT260830001")
		require.Nil(t, err)
		require.NotNil(t, byCode)
		require.Equal(t, id, byCode.ID)
	})

	t.Run("missing record is nil without error", func(t *testing.T) {
		rec, err := store.GetByID("00000000-0000-0000-0000-000000000000")
		require.Nil(t, err)
		require.Nil(t, rec)

		rec, err = store.GetByCode("IT000000000")
		require.Nil(t, err)
		require.Nil(t, rec)
	})

	t.Run("update", func(t *testing.T) {
		id, err := store.Create(newRequest("IT260830002", models.RequestStatusRequested))
		require.Nil(t, err)

		err = store.Update(id, map[string]interface{}{"status": models.RequestStatusCancelled})
		require.Nil(t, err)

		rec, err := store.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusCancelled, rec.Status)

		err = store.Update("00000000-0000-0000-0000-000000000000", map[string]interface{}{"title": "x"})
		require.NotNil(t, err)
	})
}

func TestStoreList(t *testing.T) {
	store := NewInstance(testDB(t))

	seed := []dbmodels.Request{
		newRequest("IT260830101", models.RequestStatusRequested),
		newRequest("IT260830102", models.RequestStatusManagerApproved),
		newRequest("IT260830103", models.RequestStatusInProgress),
		newRequest("IT260830104", models.RequestStatusComplete),
	}
	seed[1].DepartmentID = 7
	seed[1].RequesterUsername = "kate.m"
	for _, rec := range seed {
		_, err := store.Create(rec)
		require.Nil(t, err)
	}

	t.Run("department scope", func(t *testing.T) {
		list, err := store.List(requestapimodels.RequestFilter{DepartmentID: 7})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "IT260830102", list[0].Code)
	})

	t.Run("requester scope", func(t *testing.T) {
		list, err := store.List(requestapimodels.RequestFilter{RequesterUsername: "kate.m"})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "IT260830102", list[0].Code)
	})

	t.Run("tab buckets", func(t *testing.T) {
		open := models.ListTabOpen
		list, err := store.List(requestapimodels.RequestFilter{Tab: &open})
		require.Nil(t, err)
		require.Len(t, list, 2)

		approved := models.ListTabApproved
		list, err = store.List(requestapimodels.RequestFilter{Tab: &approved})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "IT260830103", list[0].Code)

		closed := models.ListTabClosed
		list, err = store.List(requestapimodels.RequestFilter{Tab: &closed})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "IT260830104", list[0].Code)
	})

	t.Run("status filter and count", func(t *testing.T) {
		count, err := store.ListCount(requestapimodels.RequestFilter{Status: models.RequestStatusInProgress})
		require.Nil(t, err)
		require.Equal(t, int64(1), count)

		count, err = store.ListCount(requestapimodels.RequestFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(4), count)
	})

	t.Run("pagination", func(t *testing.T) {
		list, err := store.List(requestapimodels.RequestFilter{Pagination: apimodels.Pagination{Page: 1, Limit: 3}})
		require.Nil(t, err)
		require.Len(t, list, 3)

		list, err = store.List(requestapimodels.RequestFilter{Pagination: apimodels.Pagination{Page: 2, Limit: 3}})
		require.Nil(t, err)
		require.Len(t, list, 1)
	})

	t.Run("date window", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)
		count, err := store.ListCount(requestapimodels.RequestFilter{DateFrom: &past, DateTo: &future})
		require.Nil(t, err)
		require.Equal(t, int64(4), count)

		count, err = store.ListCount(requestapimodels.RequestFilter{DateFrom: &future})
		require.Nil(t, err)
		require.Equal(t, int64(0), count)
	})
}
