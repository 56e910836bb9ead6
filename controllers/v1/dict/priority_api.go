package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	priorityprovider "it-requests-backend/lib/dicts/priority"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type priorityDictApiController struct {
	controllers.BaseAPIController
}

func InitPriorityDictApiRouters(app *fiber.App) {
	controller := priorityDictApiController{}
	app.Route("priorities", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.priorityOptions)
		router.Get("list", controller.priorityList)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.priorityCreate)
		router.Put(":id", controller.priorityUpdate)
		router.Get(":id", controller.priorityGet)
		router.Delete(":id", controller.priorityDelete)
	})
}

// @Summary Priority options
// @Tags Dictionary. Priorities
// @Description Priority options for selectors
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities [get]
func (c *priorityDictApiController) priorityOptions(ctx *fiber.Ctx) error {
	resp, err := priorityprovider.Instance.Options(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Priority list
// @Tags Dictionary. Priorities
// @Description Full priority records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.PriorityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities/list [get]
func (c *priorityDictApiController) priorityList(ctx *fiber.Ctx) error {
	resp, err := priorityprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a priority
// @Tags Dictionary. Priorities
// @Description Create a priority
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.PriorityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities [post]
func (c *priorityDictApiController) priorityCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.PriorityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := priorityprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a priority
// @Tags Dictionary. Priorities
// @Description Update a priority
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.PriorityData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities/{id} [put]
func (c *priorityDictApiController) priorityUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.PriorityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = priorityprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a priority by id
// @Tags Dictionary. Priorities
// @Description Get a priority by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.PriorityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities/{id} [get]
func (c *priorityDictApiController) priorityGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := priorityprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a priority
// @Tags Dictionary. Priorities
// @Description Delete a priority
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/priorities/{id} [delete]
func (c *priorityDictApiController) priorityDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = priorityprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
