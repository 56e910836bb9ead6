package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	uathandler "it-requests-backend/lib/uat"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
)

type uatApiController struct {
	controllers.BaseAPIController
}

func InitUATApiRouters(app *fiber.App) {
	controller := uatApiController{}
	app.Route("uat", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("request/:id", middleware.ITStaffRequired(), controller.openRound)
		router.Get("request/:id", controller.listByRequest)
		router.Put(":id/result", controller.recordResult)
	})
}

// @Summary Open a UAT round
// @Tags UAT
// @Description Open a user acceptance test round for a request in progress
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.UATData	true	"request body"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uat/request/{id} [post]
func (c *uatApiController) openRound(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.UATData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := uathandler.Instance.OpenRound(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to open the uat round")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary UAT rounds of a request
// @Tags UAT
// @Description UAT rounds of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.UATView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uat/request/{id} [get]
func (c *uatApiController) listByRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := uathandler.Instance.ListByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list uat rounds")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Record a UAT result
// @Tags UAT
// @Description Record the outcome of a UAT round, a failed round requires a note
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.UATResultData	true	"request body"
// @Param   id          		path    string  				    	true         "uat round ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uat/{id}/result [put]
func (c *uatApiController) recordResult(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.UATResultData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = uathandler.Instance.RecordResult(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record the uat result")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
