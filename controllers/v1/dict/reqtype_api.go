package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	reqtypeprovider "it-requests-backend/lib/dicts/reqtype"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type reqTypeDictApiController struct {
	controllers.BaseAPIController
}

func InitRequestTypeDictApiRouters(app *fiber.App) {
	controller := reqTypeDictApiController{}
	app.Route("treqs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.reqTypeOptions)
		router.Get("list", controller.reqTypeList)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.reqTypeCreate)
		router.Put(":id", controller.reqTypeUpdate)
		router.Get(":id", controller.reqTypeGet)
		router.Delete(":id", controller.reqTypeDelete)
	})
}

// @Summary Request type options
// @Tags Dictionary. Request types
// @Description Request type options for selectors
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs [get]
func (c *reqTypeDictApiController) reqTypeOptions(ctx *fiber.Ctx) error {
	resp, err := reqtypeprovider.Instance.Options(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Request type list
// @Tags Dictionary. Request types
// @Description Full request type records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RequestTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs/list [get]
func (c *reqTypeDictApiController) reqTypeList(ctx *fiber.Ctx) error {
	resp, err := reqtypeprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a request type
// @Tags Dictionary. Request types
// @Description Create a request type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RequestTypeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs [post]
func (c *reqTypeDictApiController) reqTypeCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.RequestTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := reqtypeprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a request type
// @Tags Dictionary. Request types
// @Description Update a request type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RequestTypeData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs/{id} [put]
func (c *reqTypeDictApiController) reqTypeUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.RequestTypeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = reqtypeprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a request type by id
// @Tags Dictionary. Request types
// @Description Get a request type by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.RequestTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs/{id} [get]
func (c *reqTypeDictApiController) reqTypeGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := reqtypeprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a request type
// @Tags Dictionary. Request types
// @Description Delete a request type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/treqs/{id} [delete]
func (c *reqTypeDictApiController) reqTypeDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = reqtypeprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
