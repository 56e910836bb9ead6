package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	ratinghandler "it-requests-backend/lib/rating"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	requestapimodels "it-requests-backend/models/api/request"
)

type ratingApiController struct {
	controllers.BaseAPIController
}

func InitRatingApiRouters(app *fiber.App) {
	controller := ratingApiController{}
	app.Route("rating", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("questions", controller.listQuestions)
		router.Post("questions", middleware.AdminRequired(), controller.createQuestion)
		router.Put("questions/:id", middleware.AdminRequired(), controller.updateQuestion)
		router.Delete("questions/:id", middleware.AdminRequired(), controller.deleteQuestion)
		router.Post("request/:id", controller.rate)
		router.Get("request/:id", controller.getByRequest)
	})
}

// @Summary Rating questions
// @Tags Ratings
// @Description Rating questions, optionally narrowed by request type
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	type_id				query 	int		false		 "request type"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RatingQuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/questions [get]
func (c *ratingApiController) listQuestions(ctx *fiber.Ctx) error {
	typeID := ctx.QueryInt("type_id", 0)
	resp, err := ratinghandler.Instance.ListQuestions(typeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list rating questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a rating question
// @Tags Ratings
// @Description Create a rating question
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RatingQuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/questions [post]
func (c *ratingApiController) createQuestion(ctx *fiber.Ctx) error {
	var payload requestapimodels.RatingQuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := ratinghandler.Instance.CreateQuestion(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create the rating question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a rating question
// @Tags Ratings
// @Description Update a rating question
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RatingQuestionData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/questions/{id} [put]
func (c *ratingApiController) updateQuestion(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.RatingQuestionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = ratinghandler.Instance.UpdateQuestion(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update the rating question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a rating question
// @Tags Ratings
// @Description Delete a rating question
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/questions/{id} [delete]
func (c *ratingApiController) deleteQuestion(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = ratinghandler.Instance.DeleteQuestion(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the rating question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Rate a request
// @Tags Ratings
// @Description Score sheet for a completed request, a second submission replaces the first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RatingData	true	"request body"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/request/{id} [post]
func (c *ratingApiController) rate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.RatingData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	recID, err := ratinghandler.Instance.Rate(id, user, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save the rating")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Rating of a request
// @Tags Ratings
// @Description Rating of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RatingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rating/request/{id} [get]
func (c *ratingApiController) getByRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := ratinghandler.Instance.GetByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get the rating")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
