package ratinghandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"it-requests-backend/db"
	ratingstore "it-requests-backend/lib/rating/store"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

func testHandler(t *testing.T) impl {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)

	db.DB = gormDB
	t.Cleanup(func() { db.DB = nil })

	return impl{
		store:        ratingstore.NewInstance(gormDB),
		requestStore: requeststore.NewInstance(gormDB),
	}
}

func seedRequest(t *testing.T, store requeststore.Provider, code string, status models.RequestStatus) string {
	t.Helper()
	id, err := store.Create(dbmodels.Request{
		Code:              code,
		RequesterName:     "John Tester",
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "crm fix",
		Status:            status,
	})
	require.Nil(t, err)
	return id
}

func TestQuestions(t *testing.T) {
	handler := testHandler(t)

	t.Run("create and list", func(t *testing.T) {
		second, err := handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 1, Text: "Was the fix on time?", DisplayOrder: 2})
		require.Nil(t, err)
		first, err := handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 1, Text: "Was the issue resolved?", DisplayOrder: 1})
		require.Nil(t, err)
		_, err = handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 2, Text: "Was the report accurate?", DisplayOrder: 1})
		require.Nil(t, err)

		list, err := handler.ListQuestions(1)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, first, list[0].ID)
		require.Equal(t, second, list[1].ID)

		all, err := handler.ListQuestions(0)
		require.Nil(t, err)
		require.Len(t, all, 3)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 1})
		require.NotNil(t, err)
		_, err = handler.CreateQuestion(requestapimodels.RatingQuestionData{Text: "orphan"})
		require.NotNil(t, err)
	})

	t.Run("disabled questions drop out of the list", func(t *testing.T) {
		id, err := handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 3, Text: "Old question", DisplayOrder: 1})
		require.Nil(t, err)

		disabled := false
		err = handler.UpdateQuestion(id, requestapimodels.RatingQuestionData{TypeID: 3, Text: "Old question", DisplayOrder: 1, Enabled: &disabled})
		require.Nil(t, err)

		list, err := handler.ListQuestions(3)
		require.Nil(t, err)
		require.Len(t, list, 0)
	})

	t.Run("delete", func(t *testing.T) {
		id, err := handler.CreateQuestion(requestapimodels.RatingQuestionData{TypeID: 4, Text: "Short lived", DisplayOrder: 1})
		require.Nil(t, err)
		err = handler.DeleteQuestion(id)
		require.Nil(t, err)

		list, err := handler.ListQuestions(4)
		require.Nil(t, err)
		require.Len(t, list, 0)
	})
}

func TestRate(t *testing.T) {
	handler := testHandler(t)
	requester := models.UserScope{Username: "john.t", FullName: "John Tester"}

	requestID := seedRequest(t, handler.requestStore, "IT260830701", models.RequestStatusComplete)

	t.Run("first submission", func(t *testing.T) {
		id, err := handler.Rate(requestID, requester, requestapimodels.RatingData{
			Comment: "quick turnaround",
			Scores: []requestapimodels.RatingScoreData{
				{QuestionID: 1, Score: 5},
				{QuestionID: 2, Score: 4},
			},
		})
		require.Nil(t, err)
		require.NotEmpty(t, id)

		item, err := handler.GetByRequest(requestID)
		require.Nil(t, err)
		require.NotNil(t, item)
		require.Equal(t, "quick turnaround", item.Comment)
		require.Len(t, item.Scores, 2)
	})

	t.Run("second submission replaces the first", func(t *testing.T) {
		id, err := handler.Rate(requestID, requester, requestapimodels.RatingData{
			Comment: "on second thought",
			Scores: []requestapimodels.RatingScoreData{
				{QuestionID: 1, Score: 3},
			},
		})
		require.Nil(t, err)
		require.NotEmpty(t, id)

		item, err := handler.GetByRequest(requestID)
		require.Nil(t, err)
		require.NotNil(t, item)
		require.Equal(t, "on second thought", item.Comment)
		require.Len(t, item.Scores, 1)
		require.Equal(t, 3, item.Scores[0].Score)
	})

	t.Run("only the requester may rate", func(t *testing.T) {
		other := models.UserScope{Username: "kate.m"}
		_, err := handler.Rate(requestID, other, requestapimodels.RatingData{
			Scores: []requestapimodels.RatingScoreData{{QuestionID: 1, Score: 5}},
		})
		require.NotNil(t, err)
	})

	t.Run("only completed requests can be rated", func(t *testing.T) {
		openID := seedRequest(t, handler.requestStore, "IT260830702", models.RequestStatusInProgress)
		_, err := handler.Rate(openID, requester, requestapimodels.RatingData{
			Scores: []requestapimodels.RatingScoreData{{QuestionID: 1, Score: 5}},
		})
		require.NotNil(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := handler.Rate(requestID, requester, requestapimodels.RatingData{})
		require.NotNil(t, err)

		_, err = handler.Rate(requestID, requester, requestapimodels.RatingData{
			Scores: []requestapimodels.RatingScoreData{{QuestionID: 1, Score: 6}},
		})
		require.NotNil(t, err)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := handler.Rate("no-such-id", requester, requestapimodels.RatingData{
			Scores: []requestapimodels.RatingScoreData{{QuestionID: 1, Score: 5}},
		})
		require.NotNil(t, err)
	})

	t.Run("no rating yet returns nil", func(t *testing.T) {
		freshID := seedRequest(t, handler.requestStore, "IT260830703", models.RequestStatusComplete)
		item, err := handler.GetByRequest(freshID)
		require.Nil(t, err)
		require.Nil(t, item)
	})
}
