package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	programprovider "it-requests-backend/lib/dicts/program"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type programDictApiController struct {
	controllers.BaseAPIController
}

func InitProgramDictApiRouters(app *fiber.App) {
	controller := programDictApiController{}
	app.Route("programs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.programOptions)
		router.Get("list", controller.programList)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.programCreate)
		router.Put(":id", controller.programUpdate)
		router.Get(":id", controller.programGet)
		router.Delete(":id", controller.programDelete)
	})
}

// @Summary Program options
// @Tags Dictionary. Programs
// @Description Program options for selectors
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs [get]
func (c *programDictApiController) programOptions(ctx *fiber.Ctx) error {
	resp, err := programprovider.Instance.Options(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Program list
// @Tags Dictionary. Programs
// @Description Full program records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ProgramView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs/list [get]
func (c *programDictApiController) programList(ctx *fiber.Ctx) error {
	resp, err := programprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a program
// @Tags Dictionary. Programs
// @Description Create a program
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.ProgramData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs [post]
func (c *programDictApiController) programCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.ProgramData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := programprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a program
// @Tags Dictionary. Programs
// @Description Update a program
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.ProgramData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs/{id} [put]
func (c *programDictApiController) programUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.ProgramData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = programprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a program by id
// @Tags Dictionary. Programs
// @Description Get a program by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.ProgramView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs/{id} [get]
func (c *programDictApiController) programGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := programprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a program
// @Tags Dictionary. Programs
// @Description Delete a program
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/programs/{id} [delete]
func (c *programDictApiController) programDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = programprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
