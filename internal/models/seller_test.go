package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() SellerInput {
	return SellerInput{
		Name:        "Foo",
		Email:       "foo@example.com",
		PhoneNumber: "09123456789",
		Password:    "password123",
	}
}

func TestSellerInputValidatePhone(t *testing.T) {
	for _, phone := range []string{
		"09123456789",
		"+998901112233",
		"+12345678901234", // 15 characters with the plus, the column maximum
		"123456789012345",
	} {
		in := validInput()
		in.PhoneNumber = phone
		assert.NoError(t, in.Validate(), "phone %q", phone)
	}

	for _, phone := range []string{
		"",
		"123456789",        // too short
		"+123456789012345", // 16 characters, exceeds the phone column
		strings.Repeat("9", 16),
		"9912345678a",
		"99 12345678",
	} {
		in := validInput()
		in.PhoneNumber = phone
		assert.Error(t, in.Validate(), "phone %q", phone)
	}
}

func TestSellerInputValidatePassword(t *testing.T) {
	for _, password := range []string{
		"password123",
		"p@ssw0rd",
		strings.Repeat("a", 30),
	} {
		in := validInput()
		in.Password = password
		assert.NoError(t, in.Validate(), "password %q", password)
	}

	for _, password := range []string{
		"short",
		strings.Repeat("a", 31),
		"!!!!!!!!", // long enough but no allowed characters
	} {
		in := validInput()
		in.Password = password
		assert.Error(t, in.Validate(), "password %q", password)
	}
}
