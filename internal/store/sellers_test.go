package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/invoicemaker/internal/models"
	"github.com/example/invoicemaker/internal/utils"
)

func TestCreateSeller(t *testing.T) {
	db := testDB(t)

	seller := createTestSeller(t, db, "+998901112233", "foo@example.com")
	assert.NotEqual(t, "", seller.ID.String())
	assert.NotEqual(t, "password123", seller.PasswordHash)
	assert.True(t, utils.CheckPassword(seller.PasswordHash, "password123"))
}

func TestCreateSellerDuplicatePhone(t *testing.T) {
	db := testDB(t)
	createTestSeller(t, db, "+998901112233", "foo@example.com")

	// Same phone always loses, no matter what else differs.
	input := sellerInput("+998901112233", "other@example.com")
	input.Name = "Bar"
	_, err := CreateSeller(db, input)
	assert.ErrorIs(t, err, ErrPhoneTaken)

	_, err = CreateSeller(db, input)
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestCreateSellerDuplicateEmail(t *testing.T) {
	db := testDB(t)
	createTestSeller(t, db, "+998901112233", "foo@example.com")

	_, err := CreateSeller(db, sellerInput("+998904445566", "foo@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateSellerPhoneCheckedBeforeEmail(t *testing.T) {
	db := testDB(t)
	createTestSeller(t, db, "+998901112233", "foo@example.com")

	// Both collide; the phone conflict wins.
	_, err := CreateSeller(db, sellerInput("+998901112233", "foo@example.com"))
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestAuthenticate(t *testing.T) {
	db := testDB(t)
	seller := createTestSeller(t, db, "+998901112233", "foo@example.com")

	byPhone, err := Authenticate(db, "+998901112233", "", "password123")
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, seller.ID, byPhone.ID)

	byEmail, err := Authenticate(db, "", "foo@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, seller.ID, byEmail.ID)

	// Phone takes precedence when both are supplied.
	both, err := Authenticate(db, "+998901112233", "nobody@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, both)

	wrong, err := Authenticate(db, "+998901112233", "", "wrongpassword")
	require.NoError(t, err)
	assert.Nil(t, wrong)

	unknown, err := Authenticate(db, "+998909998877", "", "password123")
	require.NoError(t, err)
	assert.Nil(t, unknown)

	neither, err := Authenticate(db, "", "", "password123")
	require.NoError(t, err)
	assert.Nil(t, neither)
}

func TestUpdatePassword(t *testing.T) {
	db := testDB(t)
	seller := createTestSeller(t, db, "+998901112233", "foo@example.com")

	hash, err := utils.HashPassword("newpassword456")
	require.NoError(t, err)
	require.NoError(t, UpdatePassword(db, seller, hash))

	updated, err := SellerByID(db, seller.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(updated.PasswordHash, "newpassword456"))
	assert.False(t, utils.CheckPassword(updated.PasswordHash, "password123"))
}

func TestUpdateSellerInfoPartial(t *testing.T) {
	db := testDB(t)
	seller := createTestSeller(t, db, "+998901112233", "foo@example.com")

	name := "New Name"
	updated, err := UpdateSellerInfo(db, seller, models.SellerPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	// Untouched fields survive.
	assert.Equal(t, "foo@example.com", updated.Email)
	assert.Equal(t, "Foo Store", updated.StoreName)
}

func TestUpdateSellerInfoEmailCollision(t *testing.T) {
	db := testDB(t)
	seller := createTestSeller(t, db, "+998901112233", "foo@example.com")
	createTestSeller(t, db, "+998904445566", "bar@example.com")

	taken := "bar@example.com"
	_, err := UpdateSellerInfo(db, seller, models.SellerPatch{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Re-submitting your own email is fine.
	own := "foo@example.com"
	updated, err := UpdateSellerInfo(db, seller, models.SellerPatch{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "foo@example.com", updated.Email)
}
