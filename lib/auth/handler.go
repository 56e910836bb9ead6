package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	authutils "it-requests-backend/lib/utils/auth-utils"
	authapimodels "it-requests-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp authapimodels.LoginResponse, err error)
	Me(username string) (profile authapimodels.UserProfile, err error)
	RefreshToken(data authapimodels.JWTRefreshRequest) (resp authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeProvider: employeeprovider.Instance,
	}
}

type impl struct {
	employeeProvider employeeprovider.Provider
}

func (i impl) Login(data authapimodels.LoginRequest) (resp authapimodels.LoginResponse, err error) {
	logger := log.WithField("username", data.Username)
	err = data.Validate()
	if err != nil {
		return authapimodels.LoginResponse{}, err
	}
	rec, err := i.employeeProvider.GetByUsername(data.Username)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to look up the employee")
		return authapimodels.LoginResponse{}, err
	}
	if rec == nil || !rec.Enabled {
		return authapimodels.LoginResponse{}, errors.New("user not found")
	}
	if rec.Password != authutils.GetMD5Hash(data.Password) {
		return authapimodels.LoginResponse{}, errors.New("user not found")
	}
	token, err := authutils.GetToken(*rec)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to issue the token")
		return authapimodels.LoginResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.Username, rec.FullName())
	if err != nil {
		logger.
			WithError(err).
			Error("failed to issue the refresh token")
		return authapimodels.LoginResponse{}, err
	}
	logger.Info("user logged in")
	return authapimodels.LoginResponse{
		JWTResponse: authapimodels.JWTResponse{
			Token:        token,
			RefreshToken: refreshToken,
		},
		User: authapimodels.UserProfileConvert(*rec),
	}, nil
}

func (i impl) Me(username string) (profile authapimodels.UserProfile, err error) {
	rec, err := i.employeeProvider.GetByUsername(username)
	if err != nil {
		return authapimodels.UserProfile{}, err
	}
	if rec == nil {
		return authapimodels.UserProfile{}, errors.New("user not found")
	}
	return authapimodels.UserProfileConvert(*rec), nil
}

func (i impl) RefreshToken(data authapimodels.JWTRefreshRequest) (resp authapimodels.JWTResponse, err error) {
	err = data.Validate()
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	username, err := authutils.ParseRefreshToken(data.RefreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	rec, err := i.employeeProvider.GetByUsername(username)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil || !rec.Enabled {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	token, err := authutils.GetToken(*rec)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(rec.Username, rec.FullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
