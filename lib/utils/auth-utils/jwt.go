package authutils

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"it-requests-backend/config"
	dbmodels "it-requests-backend/models/db"
)

// GetToken issues the access token carrying the employee's identity and
// the scope fields every list view filters by.
func GetToken(employee dbmodels.Employee) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":                 employee.Username,
		"name":                employee.FullName(),
		"position":            string(employee.Position),
		"department":          employee.DepartmentID,
		"division_competency": employee.DivisionCompetencyID,
		"section_competency":  employee.SectionCompetencyID,
		"admin":               employee.IsAdmin,
		"exp":                 time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":                 time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(username, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"name": name,
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func ParseRefreshToken(tokenString string) (username string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.GetSubject()
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}
