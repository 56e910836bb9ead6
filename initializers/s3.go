package initializers

import (
	"context"
	filestorage "it-requests-backend/lib/file-storage"
	s3client "it-requests-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to init the s3 client")
		filestorage.NewDisabled()
		return
	}

	if err = s3client.MakeBucket(ctx, client); err != nil {
		log.WithError(err).Error("failed to prepare the s3 bucket")
		filestorage.NewDisabled()
		return
	}

	s3client.Client = client
	filestorage.NewHandler(client)
	log.Info("s3 client initialized")
}
