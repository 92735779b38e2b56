package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agendalab/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3nha-secreta")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.NoError(t, password.Verify("s3nha-secreta", hash))
	assert.ErrorIs(t, password.Verify("senha-errada", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("senha", ""), password.ErrInvalidPassword)
}
