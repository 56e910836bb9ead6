package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "it-requests-backend/lib/utils/auth-utils"
	"it-requests-backend/models"
	apimodels "it-requests-backend/models/api"
)

func GetUsername(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if username, ok := sub.(string); ok {
			return username
		}
	}
	return ""
}

func GetUserFullName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if fullName, ok := name.(string); ok {
			return fullName
		}
	}
	return ""
}

func GetPosition(ctx *fiber.Ctx) models.Position {
	claims := authutils.GetClaims(ctx)
	if position, exist := claims["position"]; exist {
		if code, ok := position.(string); ok && code != "" {
			return models.Position(code)
		}
	}
	return ""
}

func claimInt(ctx *fiber.Ctx, key string) int {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[key]; exist {
		// numbers survive a JSON round trip as float64
		if number, ok := value.(float64); ok {
			return int(number)
		}
	}
	return 0
}

func GetDepartmentID(ctx *fiber.Ctx) int {
	return claimInt(ctx, "department")
}

func GetDivisionCompetencyID(ctx *fiber.Ctx) int {
	return claimInt(ctx, "division_competency")
}

func GetSectionCompetencyID(ctx *fiber.Ctx) int {
	return claimInt(ctx, "section_competency")
}

func GetUserScope(ctx *fiber.Ctx) models.UserScope {
	return models.UserScope{
		Username:             GetUsername(ctx),
		FullName:             GetUserFullName(ctx),
		Position:             GetPosition(ctx),
		DepartmentID:         GetDepartmentID(ctx),
		DivisionCompetencyID: GetDivisionCompetencyID(ctx),
		SectionCompetencyID:  GetSectionCompetencyID(ctx),
		IsAdmin:              IsAdmin(ctx),
	}
}

func IsAdmin(ctx *fiber.Ctx) bool {
	claims := authutils.GetClaims(ctx)
	if admin, exist := claims["admin"]; exist {
		if flag, ok := admin.(bool); ok {
			return flag
		}
	}
	return false
}

func IsITStaff(ctx *fiber.Ctx) bool {
	return models.IsITStaff(GetDepartmentID(ctx), GetDivisionCompetencyID(ctx), GetSectionCompetencyID(ctx))
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !IsAdmin(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available"))
		}
		return ctx.Next()
	}
}

func ITStaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !IsITStaff(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available"))
		}
		return ctx.Next()
	}
}
