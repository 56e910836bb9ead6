package dbmodels

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSchemaOnSQLite(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)

	// the schema must not depend on postgres extensions
	err = gormDB.AutoMigrate(AllModels()...)
	require.Nil(t, err)

	t.Run("id assigned on create", func(t *testing.T) {
		rec := Request{
			Code:              "IT260830901",
			RequesterUsername: "john.t",
			DepartmentID:      5,
			TypeID:            1,
			Title:             "vpn access",
		}
		err := gormDB.Create(&rec).Error
		require.Nil(t, err)
		require.NotEmpty(t, rec.ID)
		_, err = uuid.Parse(rec.ID)
		require.Nil(t, err)
	})

	t.Run("preset id kept", func(t *testing.T) {
		presetID := uuid.NewString()
		rec := Request{
			BaseModel:         BaseModel{ID: presetID},
			Code:              "IT260830902",
			RequesterUsername: "john.t",
			DepartmentID:      5,
			TypeID:            1,
			Title:             "crm fix",
		}
		err := gormDB.Create(&rec).Error
		require.Nil(t, err)
		require.Equal(t, presetID, rec.ID)
	})
}
