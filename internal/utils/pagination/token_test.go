package pagination

import (
	"testing"
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeTransactionToken(t *testing.T) {
	date := domain.NewCalendarDate(2023, time.May, 15)
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeTransactionToken(date, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeTransactionToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
}

func TestDecodeTransactionTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeTransactionToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	invalidToken := "MjAyMy0wNS0xNQ==" // base64("2023-05-15") without separator
	_, _, err = DecodeTransactionToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Bad date component
	badDateToken := "bm90YWRhdGV8MjAyMy0wNS0xNVQxNDozMDo0NS4xMjM0NTY3ODla" // base64("notadate|2023-05-15T14:30:45.123456789Z")
	_, _, err = DecodeTransactionToken(badDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}
