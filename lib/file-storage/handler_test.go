package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"it-requests-backend/models"
)

func TestDisabledProvider(t *testing.T) {
	NewDisabled()
	t.Cleanup(func() { Instance = nil })

	ctx := context.Background()
	user := models.UserScope{Username: "john.t"}

	_, err := Instance.Upload(ctx, "req-id", user, "report.pdf", "application/pdf", []byte("data"))
	require.NotNil(t, err)

	_, _, err = Instance.Download(ctx, "file-id")
	require.NotNil(t, err)

	_, err = Instance.ListByRequest("req-id")
	require.NotNil(t, err)

	err = Instance.Delete(ctx, "file-id", user)
	require.NotNil(t, err)
}
