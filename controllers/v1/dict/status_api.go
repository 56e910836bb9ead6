package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	statusprovider "it-requests-backend/lib/dicts/status"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type statusDictApiController struct {
	controllers.BaseAPIController
}

func InitStatusDictApiRouters(app *fiber.App) {
	controller := statusDictApiController{}
	app.Route("status", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.statusOptions)
		router.Get("list", controller.statusList)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.statusCreate)
		router.Put(":id", controller.statusUpdate)
		router.Get(":id", controller.statusGet)
		router.Delete(":id", controller.statusDelete)
	})
	app.Get("status_a", middleware.AuthorizationRequired(), controller.approvalStatusOptions)
}

// @Summary Status options
// @Tags Dictionary. Statuses
// @Description Status options for selectors
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status [get]
func (c *statusDictApiController) statusOptions(ctx *fiber.Ctx) error {
	resp, err := statusprovider.Instance.Options(ctx.UserContext(), false)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approval status options
// @Tags Dictionary. Statuses
// @Description Options of the statuses that belong to the approval flow
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status_a [get]
func (c *statusDictApiController) approvalStatusOptions(ctx *fiber.Ctx) error {
	resp, err := statusprovider.Instance.Options(ctx.UserContext(), true)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Status list
// @Tags Dictionary. Statuses
// @Description Full status records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.StatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status/list [get]
func (c *statusDictApiController) statusList(ctx *fiber.Ctx) error {
	resp, err := statusprovider.Instance.List(false)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a status
// @Tags Dictionary. Statuses
// @Description Create a status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.StatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status [post]
func (c *statusDictApiController) statusCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.StatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := statusprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a status
// @Tags Dictionary. Statuses
// @Description Update a status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.StatusData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status/{id} [put]
func (c *statusDictApiController) statusUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = statusprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a status by id
// @Tags Dictionary. Statuses
// @Description Get a status by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.StatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status/{id} [get]
func (c *statusDictApiController) statusGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := statusprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a status
// @Tags Dictionary. Statuses
// @Description Delete a status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/status/{id} [delete]
func (c *statusDictApiController) statusDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = statusprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
