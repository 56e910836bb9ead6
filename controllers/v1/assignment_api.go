package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	assignmenthandler "it-requests-backend/lib/assignment"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
)

type assignmentApiController struct {
	controllers.BaseAPIController
}

func InitAssignmentApiRouters(app *fiber.App) {
	controller := assignmentApiController{}
	app.Route("assign_department", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.ITStaffRequired())
		router.Post(":id", controller.assignDepartment)
		router.Get(":id", controller.listDepartments)
		router.Delete(":id", controller.removeDepartment)
	})
	app.Route("assign_employee", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.ITStaffRequired())
		router.Post(":id", controller.assignEmployee)
		router.Get(":id", controller.listEmployees)
		router.Delete(":id", controller.removeEmployee)
	})
	app.Route("assign_employee_sub", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.ITStaffRequired())
		router.Post(":id", controller.assignSubtaskEmployee)
		router.Get(":id", controller.listSubtaskEmployees)
	})
}

// @Summary Assign a department
// @Tags Assignments
// @Description Assign a responsible department, a repeated pick returns the existing row
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.DepartmentAssignmentData	true	"request body"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_department/{id} [post]
func (c *assignmentApiController) assignDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.DepartmentAssignmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := assignmenthandler.Instance.AssignDepartment(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign the department")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Assigned departments
// @Tags Assignments
// @Description Assigned departments of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.DepartmentAssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_department/{id} [get]
func (c *assignmentApiController) listDepartments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := assignmenthandler.Instance.ListDepartments(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list assigned departments")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Remove a department assignment
// @Tags Assignments
// @Description Remove a department assignment by the join row id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignment ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_department/{id} [delete]
func (c *assignmentApiController) removeDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = assignmenthandler.Instance.RemoveDepartment(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove the assignment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign an employee
// @Tags Assignments
// @Description Assign an employee to a request, a repeated pick returns the existing row
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.EmployeeAssignmentData	true	"request body"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_employee/{id} [post]
func (c *assignmentApiController) assignEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.EmployeeAssignmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := assignmenthandler.Instance.AssignEmployee(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign the employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Assigned employees
// @Tags Assignments
// @Description Assigned employees of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.EmployeeAssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_employee/{id} [get]
func (c *assignmentApiController) listEmployees(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := assignmenthandler.Instance.ListEmployees(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list assigned employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Remove an employee assignment
// @Tags Assignments
// @Description Remove an employee assignment by the join row id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignment ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_employee/{id} [delete]
func (c *assignmentApiController) removeEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = assignmenthandler.Instance.RemoveEmployee(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove the assignment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign an employee to a subtask
// @Tags Assignments
// @Description Assign an employee to a subtask, a repeated pick returns the existing row
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.EmployeeAssignmentData	true	"request body"
// @Param   id          		path    string  				    	true         "subtask ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_employee_sub/{id} [post]
func (c *assignmentApiController) assignSubtaskEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.EmployeeAssignmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := assignmenthandler.Instance.AssignSubtaskEmployee(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign the employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Assigned subtask employees
// @Tags Assignments
// @Description Assigned employees of a subtask
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "subtask ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.EmployeeAssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assign_employee_sub/{id} [get]
func (c *assignmentApiController) listSubtaskEmployees(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := assignmenthandler.Instance.ListSubtaskEmployees(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list assigned employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
