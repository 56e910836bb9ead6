package dict

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

type fakeEmployees struct{}

func (fakeEmployees) Create(dictapimodels.EmployeeData) (int, error) { return 0, nil }
func (fakeEmployees) Update(int, dictapimodels.EmployeeData) error   { return nil }
func (fakeEmployees) Get(id int) (dictapimodels.EmployeeView, error) {
	return dictapimodels.EmployeeView{ID: id}, nil
}
func (fakeEmployees) GetByUsername(username string) (*dbmodels.Employee, error) {
	switch username {
	case "root":
		return &dbmodels.Employee{Username: "root", IsAdmin: true}, nil
	case "john.t":
		return &dbmodels.Employee{Username: "john.t"}, nil
	}
	return nil, nil
}
func (fakeEmployees) Find(dictapimodels.EmployeeFind) ([]dictapimodels.EmployeeView, error) {
	return nil, nil
}
func (fakeEmployees) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeEmployees) Delete(int) error { return nil }

func TestAdminLookup(t *testing.T) {
	employeeprovider.Instance = fakeEmployees{}
	t.Cleanup(func() { employeeprovider.Instance = nil })

	controller := employeeDictApiController{}
	app := fiber.New()
	app.Get("/admin", controller.adminLookup)

	lookup := func(t *testing.T, target string) (int, dictapimodels.AdminLookupView) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
		require.Nil(t, err)
		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		payload := struct {
			Status string                        `json:"status"`
			Data   dictapimodels.AdminLookupView `json:"data"`
		}{}
		require.Nil(t, json.Unmarshal(body, &payload))
		return resp.StatusCode, payload.Data
	}

	t.Run("admin flag set", func(t *testing.T) {
		status, view := lookup(t, "/admin?user=root")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "root", view.Username)
		require.True(t, view.IsAdmin)
	})

	t.Run("plain user", func(t *testing.T) {
		status, view := lookup(t, "/admin?user=john.t")
		require.Equal(t, fiber.StatusOK, status)
		require.False(t, view.IsAdmin)
	})

	t.Run("unknown user", func(t *testing.T) {
		status, _ := lookup(t, "/admin?user=ghost")
		require.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("missing user", func(t *testing.T) {
		status, _ := lookup(t, "/admin")
		require.Equal(t, fiber.StatusBadRequest, status)
	})
}
