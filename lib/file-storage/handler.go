package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/config"
	"it-requests-backend/db"
	filestore "it-requests-backend/lib/file-storage/store"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, requestID string, user models.UserScope, originalName, contentType string, data []byte) (item requestapimodels.FileView, err error)
	Download(ctx context.Context, fileID string) (item requestapimodels.FileView, data []byte, err error)
	ListByRequest(requestID string) (list []requestapimodels.FileView, err error)
	Delete(ctx context.Context, fileID string, user models.UserScope) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = impl{
		s3client:     s3client,
		store:        filestore.NewInstance(db.DB),
		requestStore: requeststore.NewInstance(db.DB),
	}
}

// NewDisabled keeps the attachment endpoints answering with a clean error
// when the object storage could not be reached at boot.
func NewDisabled() {
	Instance = disabled{}
}

var errStorageUnavailable = errors.New("file storage is unavailable")

type disabled struct{}

func (disabled) Upload(context.Context, string, models.UserScope, string, string, []byte) (requestapimodels.FileView, error) {
	return requestapimodels.FileView{}, errStorageUnavailable
}

func (disabled) Download(context.Context, string) (requestapimodels.FileView, []byte, error) {
	return requestapimodels.FileView{}, nil, errStorageUnavailable
}

func (disabled) ListByRequest(string) ([]requestapimodels.FileView, error) {
	return nil, errStorageUnavailable
}

func (disabled) Delete(context.Context, string, models.UserScope) error {
	return errStorageUnavailable
}

type impl struct {
	s3client     *minio.Client
	store        filestore.Provider
	requestStore requeststore.Provider
}

func (i impl) Upload(ctx context.Context, requestID string, user models.UserScope, originalName, contentType string, data []byte) (item requestapimodels.FileView, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("file_name", originalName).
		WithField("username", user.Username)
	if originalName == "" {
		return requestapimodels.FileView{}, errors.New("file name is required")
	}
	if len(data) == 0 {
		return requestapimodels.FileView{}, errors.New("file is empty")
	}
	request, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return requestapimodels.FileView{}, err
	}
	if request == nil {
		return requestapimodels.FileView{}, errors.New("request not found")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	// object keys are opaque so name collisions between uploads can not occur
	storedName := uuid.NewString()
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, storedName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to upload the file")
		return requestapimodels.FileView{}, err
	}
	rec := dbmodels.RequestFile{
		RequestID:    requestID,
		OriginalName: originalName,
		StoredName:   storedName,
		ContentType:  contentType,
		Size:         int64(len(data)),
	}
	_, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to save the attachment row")
		return requestapimodels.FileView{}, err
	}
	logger.Info("file uploaded")
	return requestapimodels.FileConvert(rec), nil
}

func (i impl) Download(ctx context.Context, fileID string) (item requestapimodels.FileView, data []byte, err error) {
	logger := log.WithField("file_id", fileID)
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return requestapimodels.FileView{}, nil, err
	}
	if rec == nil {
		return requestapimodels.FileView{}, nil, errors.New("file not found")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.StoredName, minio.GetObjectOptions{})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to get the file")
		return requestapimodels.FileView{}, nil, err
	}
	defer object.Close()
	data, err = io.ReadAll(object)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to read the file")
		return requestapimodels.FileView{}, nil, err
	}
	return requestapimodels.FileConvert(*rec), data, nil
}

func (i impl) ListByRequest(requestID string) (list []requestapimodels.FileView, err error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.FileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.FileConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(ctx context.Context, fileID string, user models.UserScope) error {
	logger := log.
		WithField("file_id", fileID).
		WithField("username", user.Username)
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("file not found")
	}
	err = i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.StoredName, minio.RemoveObjectOptions{})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to remove the file")
		return err
	}
	err = i.store.Delete(fileID)
	if err != nil {
		return err
	}
	logger.Info("file deleted")
	return nil
}
