package uathandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	requeststore "it-requests-backend/lib/requests/store"
	uatstore "it-requests-backend/lib/uat/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

func testHandler(t *testing.T) (impl, requeststore.Provider) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)

	requests := requeststore.NewInstance(gormDB)
	handler := impl{
		store:        uatstore.NewInstance(gormDB),
		requestStore: requests,
	}
	return handler, requests
}

func seedRequest(t *testing.T, requests requeststore.Provider, code string, status models.RequestStatus) string {
	t.Helper()
	id, err := requests.Create(dbmodels.Request{
		Code:              code,
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "billing module",
		Status:            status,
	})
	require.Nil(t, err)
	return id
}

func TestOpenRound(t *testing.T) {
	handler, requests := testHandler(t)
	user := models.UserScope{Username: "it.qa", FullName: "Kate QA"}

	t.Run("rounds are numbered in order", func(t *testing.T) {
		requestID := seedRequest(t, requests, "IT260830401", models.RequestStatusInProgress)

		_, err := handler.OpenRound(requestID, user, requestapimodels.UATData{Detail: "smoke pass"})
		require.Nil(t, err)
		_, err = handler.OpenRound(requestID, user, requestapimodels.UATData{Detail: "regression pass"})
		require.Nil(t, err)

		list, err := handler.ListByRequest(requestID)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 1, list[0].Round)
		require.Equal(t, 2, list[1].Round)
	})

	t.Run("only in progress requests take rounds", func(t *testing.T) {
		requestID := seedRequest(t, requests, "IT260830402", models.RequestStatusApproved)
		_, err := handler.OpenRound(requestID, user, requestapimodels.UATData{Detail: "too early"})
		require.NotNil(t, err)
	})

	t.Run("detail is required", func(t *testing.T) {
		requestID := seedRequest(t, requests, "IT260830403", models.RequestStatusInProgress)
		_, err := handler.OpenRound(requestID, user, requestapimodels.UATData{})
		require.NotNil(t, err)
	})
}

func TestRecordResult(t *testing.T) {
	handler, requests := testHandler(t)
	user := models.UserScope{Username: "it.qa", FullName: "Kate QA"}
	requestID := seedRequest(t, requests, "IT260830404", models.RequestStatusInProgress)

	id, err := handler.OpenRound(requestID, user, requestapimodels.UATData{Detail: "acceptance pass"})
	require.Nil(t, err)

	t.Run("failed result requires a note", func(t *testing.T) {
		err := handler.RecordResult(id, user, requestapimodels.UATResultData{Result: models.UATResultFailed})
		require.NotNil(t, err)

		err = handler.RecordResult(id, user, requestapimodels.UATResultData{
			Result: models.UATResultFailed,
			Note:   "export breaks on empty rows",
		})
		require.Nil(t, err)
	})

	t.Run("result is write once", func(t *testing.T) {
		err := handler.RecordResult(id, user, requestapimodels.UATResultData{Result: models.UATResultPassed})
		require.NotNil(t, err)
	})

	t.Run("tester defaults to the caller", func(t *testing.T) {
		roundID, err := handler.OpenRound(requestID, user, requestapimodels.UATData{Detail: "retest"})
		require.Nil(t, err)

		err = handler.RecordResult(roundID, user, requestapimodels.UATResultData{Result: models.UATResultPassed})
		require.Nil(t, err)

		list, err := handler.ListByRequest(requestID)
		require.Nil(t, err)
		last := list[len(list)-1]
		require.Equal(t, "Kate QA", last.TestedBy)
		require.NotNil(t, last.TestedAt)
		require.Equal(t, models.UATResultPassed, last.Result)
	})

	t.Run("unknown result code", func(t *testing.T) {
		err := handler.RecordResult(id, user, requestapimodels.UATResultData{Result: 9})
		require.NotNil(t, err)
	})

	t.Run("unknown round", func(t *testing.T) {
		err := handler.RecordResult("00000000-0000-0000-0000-000000000000", user, requestapimodels.UATResultData{Result: models.UATResultPassed})
		require.NotNil(t, err)
	})
}
