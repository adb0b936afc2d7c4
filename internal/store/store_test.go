package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/invoicemaker/internal/database"
	"github.com/example/invoicemaker/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func sellerInput(phone, email string) models.SellerInput {
	return models.SellerInput{
		Name:        "Foo",
		Email:       email,
		PhoneNumber: phone,
		Password:    "password123",
		StoreName:   "Foo Store",
	}
}

func createTestSeller(t *testing.T, db *gorm.DB, phone, email string) *models.Seller {
	t.Helper()

	seller, err := CreateSeller(db, sellerInput(phone, email))
	require.NoError(t, err)
	return seller
}
