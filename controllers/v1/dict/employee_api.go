package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type employeeDictApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeDictApiRouters(app *fiber.App) {
	controller := employeeDictApiController{}
	app.Route("employee", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.employeeOptions)
		router.Post("find", controller.employeeFind)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.employeeCreate)
		router.Put(":id", controller.employeeUpdate)
		router.Get(":id", controller.employeeGet)
		router.Delete(":id", controller.employeeDelete)
	})
	app.Get("admin", middleware.AuthorizationRequired(), controller.adminLookup)
}

// @Summary Admin flag lookup
// @Tags Dictionary. Employees
// @Description Look up whether the given user carries the admin flag
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   user        		query   	string	true	"username"
// @Success 200 {object} apimodels.Response{data=dictapimodels.AdminLookupView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin [get]
func (c *employeeDictApiController) adminLookup(ctx *fiber.Ctx) error {
	username := ctx.Query("user")
	if username == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user is required"))
	}

	rec, err := employeeprovider.Instance.GetByUsername(username)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dictapimodels.AdminLookupView{
		Username: rec.Username,
		IsAdmin:  rec.IsAdmin,
	}))
}

// @Summary Employee options
// @Tags Dictionary. Employees
// @Description Employee options for selectors, it_only narrows to the IT staff
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   it_only     		query   	bool	false	"IT staff only"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee [get]
func (c *employeeDictApiController) employeeOptions(ctx *fiber.Ctx) error {
	itOnly := ctx.QueryBool("it_only", false)

	resp, err := employeeprovider.Instance.Options(ctx.UserContext(), itOnly)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Find employees
// @Tags Dictionary. Employees
// @Description Find employees by name, department or IT membership
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.EmployeeFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/find [post]
func (c *employeeDictApiController) employeeFind(ctx *fiber.Ctx) error {
	var payload dictapimodels.EmployeeFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := employeeprovider.Instance.Find(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create an employee
// @Tags Dictionary. Employees
// @Description Create an employee account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee [post]
func (c *employeeDictApiController) employeeCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeeprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update an employee
// @Tags Dictionary. Employees
// @Description Update an employee account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.EmployeeData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [put]
func (c *employeeDictApiController) employeeUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = employeeprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get an employee by id
// @Tags Dictionary. Employees
// @Description Get an employee by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [get]
func (c *employeeDictApiController) employeeGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := employeeprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete an employee
// @Tags Dictionary. Employees
// @Description Delete an employee account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [delete]
func (c *employeeDictApiController) employeeDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = employeeprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
