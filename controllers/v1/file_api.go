package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"it-requests-backend/controllers"
	filestorage "it-requests-backend/lib/file-storage"
	"it-requests-backend/middleware"
	apimodels "it-requests-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

const maxAttachmentSize = 25 * 1024 * 1024

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("request/:id", middleware.WithBodyLimit(maxAttachmentSize), controller.upload)
		router.Get("request/:id", controller.listByRequest)
		router.Get(":id", controller.download)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Upload an attachment
// @Tags Attachments
// @Description Upload an attachment from a multipart form, field name "file"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"attachment"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/request/{id} [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("attachment is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the attachment"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the attachment"))
	}

	user := middleware.GetUserScope(ctx)
	resp, err := filestorage.Instance.Upload(ctx.UserContext(), id, user,
		fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload the attachment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Attachments of a request
// @Tags Attachments
// @Description Attachments of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/request/{id} [get]
func (c *fileApiController) listByRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := filestorage.Instance.ListByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list attachments")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download an attachment
// @Tags Attachments
// @Description Download an attachment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	item, data, err := filestorage.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to download the attachment")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, item.OriginalName))
	ctx.Set(fiber.HeaderContentType, item.ContentType)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Delete an attachment
// @Tags Attachments
// @Description Delete an attachment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [delete]
func (c *fileApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	user := middleware.GetUserScope(ctx)
	err = filestorage.Instance.Delete(ctx.UserContext(), id, user)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete the attachment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
