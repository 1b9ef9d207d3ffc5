package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateCreateError(t *testing.T) {
	assert.ErrorIs(t, translateCreateError(gorm.ErrDuplicatedKey), ErrDuplicateReview)
	assert.ErrorIs(t, translateCreateError(gorm.ErrForeignKeyViolated), ErrProductNotFound)

	storeErr := translateCreateError(errors.New("connection refused"))
	assert.ErrorIs(t, storeErr, ErrStoreFailure)
	assert.NotErrorIs(t, storeErr, ErrDuplicateReview)
}

func TestWrapStore(t *testing.T) {
	err := wrapStore(errors.New("timeout"))

	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.Contains(t, err.Error(), "timeout")
}
