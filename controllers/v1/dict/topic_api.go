package dict

import (
	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	topicprovider "it-requests-backend/lib/dicts/topic"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
	dictapimodels "it-requests-backend/models/api/dict"
)

type topicDictApiController struct {
	controllers.BaseAPIController
}

func InitTopicDictApiRouters(app *fiber.App) {
	controller := topicDictApiController{}
	app.Route("topics", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.topicOptions)
		router.Get("list", controller.topicList)
		router.Get("subtopic/:topic_id", controller.subTopicOptions)
		router.Get("subtopic/:topic_id/list", controller.subTopicList)
		router.Use(middleware.AdminRequired())
		router.Post("", controller.topicCreate)
		router.Post("subtopic", controller.subTopicCreate)
		router.Put("subtopic/:id", controller.subTopicUpdate)
		router.Delete("subtopic/:id", controller.subTopicDelete)
		router.Put(":id", controller.topicUpdate)
		router.Get(":id", controller.topicGet)
		router.Delete(":id", controller.topicDelete)
	})
}

// @Summary Topic options
// @Tags Dictionary. Topics
// @Description Topic options for selectors
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics [get]
func (c *topicDictApiController) topicOptions(ctx *fiber.Ctx) error {
	resp, err := topicprovider.Instance.Options(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Topic list
// @Tags Dictionary. Topics
// @Description Full topic records
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.TopicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/list [get]
func (c *topicDictApiController) topicList(ctx *fiber.Ctx) error {
	resp, err := topicprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a topic
// @Tags Dictionary. Topics
// @Description Create a topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.TopicData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics [post]
func (c *topicDictApiController) topicCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.TopicData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := topicprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a topic
// @Tags Dictionary. Topics
// @Description Update a topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.TopicData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/{id} [put]
func (c *topicDictApiController) topicUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.TopicData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = topicprovider.Instance.Update(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a topic by id
// @Tags Dictionary. Topics
// @Description Get a topic by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.TopicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/{id} [get]
func (c *topicDictApiController) topicGet(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := topicprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete a topic
// @Tags Dictionary. Topics
// @Description Delete a topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/{id} [delete]
func (c *topicDictApiController) topicDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = topicprovider.Instance.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Subtopic options
// @Tags Dictionary. Topics
// @Description Subtopic options of a topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   topic_id      		path    int  				    	true         "topic ID"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.Option}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/subtopic/{topic_id} [get]
func (c *topicDictApiController) subTopicOptions(ctx *fiber.Ctx) error {
	topicID, err := ctx.ParamsInt("topic_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := topicprovider.Instance.SubOptions(ctx.UserContext(), topicID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Subtopic list
// @Tags Dictionary. Topics
// @Description Full subtopic records of a topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   topic_id      		path    int  				    	true         "topic ID"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.SubTopicView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/subtopic/{topic_id}/list [get]
func (c *topicDictApiController) subTopicList(ctx *fiber.Ctx) error {
	topicID, err := ctx.ParamsInt("topic_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := topicprovider.Instance.ListSub(topicID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a subtopic
// @Tags Dictionary. Topics
// @Description Create a subtopic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SubTopicData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/subtopic [post]
func (c *topicDictApiController) subTopicCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.SubTopicData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := topicprovider.Instance.CreateSub(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a subtopic
// @Tags Dictionary. Topics
// @Description Update a subtopic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SubTopicData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/subtopic/{id} [put]
func (c *topicDictApiController) subTopicUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.SubTopicData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = topicprovider.Instance.UpdateSub(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a subtopic
// @Tags Dictionary. Topics
// @Description Delete a subtopic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/topics/subtopic/{id} [delete]
func (c *topicDictApiController) subTopicDelete(ctx *fiber.Ctx) error {
	id, err := c.GetIntID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = topicprovider.Instance.DeleteSub(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
