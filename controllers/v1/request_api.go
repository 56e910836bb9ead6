package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	approvalhandler "it-requests-backend/lib/approval"
	requesthandler "it-requests-backend/lib/requests"
	"it-requests-backend/middleware"
	"it-requests-backend/models"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("it-requests", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", middleware.AdminRequired(), controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Put("m_approve", controller.managerApprove)
			idRoute.Put("d_approve", controller.directorApprove)
			idRoute.Put("it_m_approve", controller.itManagerApprove)
			idRoute.Put("it_d_approve", controller.itDirectorApprove)
			idRoute.Get("approvals", controller.approvals)
		})
	})
}

// @Summary Create a request
// @Tags IT requests
// @Description Create a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user := middleware.GetUserScope(ctx)
	id, err := requesthandler.Instance.Create(user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a request
// @Tags IT requests
// @Description Update a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestEditData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id} [put]
func (c *requestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.RequestEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = requesthandler.Instance.Update(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update the request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a request by id
// @Tags IT requests
// @Description Get a request by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requesthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cancel a request
// @Tags IT requests
// @Description Cancel a request, the row stays in the register
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id} [delete]
func (c *requestApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = requesthandler.Instance.Delete(id, user)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to cancel the request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List requests
// @Tags IT requests
// @Description List requests visible to the caller
// @Param	body body	 requestapimodels.RequestFilter	true	"request filter body"
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/list [post]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user := middleware.GetUserScope(ctx)
	list, rowCount, err := requesthandler.Instance.List(user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Export the request register
// @Tags IT requests
// @Description Export the visible requests to an xlsx file
// @Param	body body	 requestapimodels.RequestFilter	true	"request filter body"
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/export [post]
func (c *requestApiController) export(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user := middleware.GetUserScope(ctx)
	buf, err := requesthandler.Instance.ExportRegister(user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export the register")
	}
	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("20060102"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Change the request status
// @Tags IT requests
// @Description Change the request status through the transition table
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ChangeStatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/change_status [put]
func (c *requestApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.ChangeStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = requesthandler.Instance.ChangeStatus(id, user, payload.Change)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change the request status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Manager decision
// @Tags Approvals
// @Description Record the manager decision
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/m_approve [put]
func (c *requestApiController) managerApprove(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ApprovalRoleManager)
}

// @Summary Director decision
// @Tags Approvals
// @Description Record the director decision
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/d_approve [put]
func (c *requestApiController) directorApprove(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ApprovalRoleDirector)
}

// @Summary IT manager decision
// @Tags Approvals
// @Description Record the IT manager decision
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/it_m_approve [put]
func (c *requestApiController) itManagerApprove(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ApprovalRoleITManager)
}

// @Summary IT director decision
// @Tags Approvals
// @Description Record the IT director decision
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ApprovalDecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/it_d_approve [put]
func (c *requestApiController) itDirectorApprove(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.ApprovalRoleITDirector)
}

func (c *requestApiController) decide(ctx *fiber.Ctx, role models.ApprovalRole) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.ApprovalDecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = approvalhandler.Instance.Decide(id, user, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record the decision")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approval chain
// @Tags Approvals
// @Description Approval chain of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/it-requests/{id}/approvals [get]
func (c *requestApiController) approvals(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := approvalhandler.Instance.ListByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list the approvals")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
