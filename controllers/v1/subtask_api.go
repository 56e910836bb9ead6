package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	subtaskhandler "it-requests-backend/lib/subtask"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
)

type subtaskApiController struct {
	controllers.BaseAPIController
}

func InitSubtaskApiRouters(app *fiber.App) {
	controller := subtaskApiController{}
	app.Route("subtasks", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.ITStaffRequired())
		router.Post("request/:id", controller.create)
		router.Get("request/:id", controller.listByRequest)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.patch)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Create a subtask
// @Tags Subtasks
// @Description Create a subtask for a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.SubtaskData	true	"request body"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subtasks/request/{id} [post]
func (c *subtaskApiController) create(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.SubtaskData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := subtaskhandler.Instance.Create(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the subtask")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Subtasks of a request
// @Tags Subtasks
// @Description Subtasks of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.SubtaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subtasks/request/{id} [get]
func (c *subtaskApiController) listByRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := subtaskhandler.Instance.ListByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list subtasks")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get a subtask by id
// @Tags Subtasks
// @Description Get a subtask by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.SubtaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subtasks/{id} [get]
func (c *subtaskApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := subtaskhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the subtask")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update subtask cells
// @Tags Subtasks
// @Description Per-field update from the subtask grid, omitted fields stay untouched
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.SubtaskPatchData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subtasks/{id} [put]
func (c *subtaskApiController) patch(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.SubtaskPatchData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = subtaskhandler.Instance.Patch(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update the subtask")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a subtask
// @Tags Subtasks
// @Description Delete a subtask
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/subtasks/{id} [delete]
func (c *subtaskApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = subtaskhandler.Instance.Delete(id, user)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the subtask")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
