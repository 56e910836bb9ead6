package authhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"it-requests-backend/config"
	authutils "it-requests-backend/lib/utils/auth-utils"
	"it-requests-backend/models"
	authapimodels "it-requests-backend/models/api/auth"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

type fakeEmployees struct {
	byUsername map[string]*dbmodels.Employee
}

func (f fakeEmployees) Create(dictapimodels.EmployeeData) (int, error) { return 0, nil }
func (f fakeEmployees) Update(int, dictapimodels.EmployeeData) error   { return nil }
func (f fakeEmployees) Get(int) (dictapimodels.EmployeeView, error) {
	return dictapimodels.EmployeeView{}, nil
}
func (f fakeEmployees) GetByUsername(username string) (*dbmodels.Employee, error) {
	return f.byUsername[username], nil
}
func (f fakeEmployees) Find(dictapimodels.EmployeeFind) ([]dictapimodels.EmployeeView, error) {
	return nil, nil
}
func (f fakeEmployees) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (f fakeEmployees) Delete(int) error { return nil }

func testHandler(t *testing.T) impl {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
	t.Cleanup(func() { config.Conf = nil })

	john := &dbmodels.Employee{
		Username:     "john.t",
		FirstName:    "John",
		LastName:     "Tester",
		Position:     models.PositionStaff,
		DepartmentID: 5,
		Password:     authutils.GetMD5Hash("secret"),
		Enabled:      true,
	}
	disabled := &dbmodels.Employee{
		Username: "gone.u",
		Password: authutils.GetMD5Hash("secret"),
		Enabled:  false,
	}
	return impl{
		employeeProvider: fakeEmployees{byUsername: map[string]*dbmodels.Employee{
			"john.t": john,
			"gone.u": disabled,
		}},
	}
}

func TestLogin(t *testing.T) {
	handler := testHandler(t)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := handler.Login(authapimodels.LoginRequest{Username: "john.t", Password: "secret"})
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
		require.Equal(t, "john.t", resp.User.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "john.t", Password: "wrong"})
		require.NotNil(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "nobody", Password: "secret"})
		require.NotNil(t, err)
	})

	t.Run("disabled account", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Username: "gone.u", Password: "secret"})
		require.NotNil(t, err)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{})
		require.NotNil(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	handler := testHandler(t)

	resp, err := handler.Login(authapimodels.LoginRequest{Username: "john.t", Password: "secret"})
	require.Nil(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		pair, err := handler.RefreshToken(authapimodels.JWTRefreshRequest{RefreshToken: resp.RefreshToken})
		require.Nil(t, err)
		require.NotEmpty(t, pair.Token)
		require.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := handler.RefreshToken(authapimodels.JWTRefreshRequest{RefreshToken: "not-a-token"})
		require.NotNil(t, err)
	})
}

func TestMe(t *testing.T) {
	handler := testHandler(t)

	profile, err := handler.Me("john.t")
	require.Nil(t, err)
	require.Equal(t, "John Tester", profile.FullName)

	_, err = handler.Me("nobody")
	require.NotNil(t, err)
}
