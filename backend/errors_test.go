package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStringPreservesLiteralText(t *testing.T) {
	// Condition tokens embedded in the message must survive stringification
	// untouched; downstream classification matches on them.
	err := &Error{Message: "past_slot: time has already elapsed"}
	assert.Equal(t, "past_slot: time has already elapsed", err.Error())

	coded := &Error{Code: "P0001", Message: "slot_full"}
	assert.Equal(t, "P0001: slot_full", coded.Error())
}

func TestIsUndefinedColumn(t *testing.T) {
	assert.True(t, IsUndefinedColumn(&Error{Code: UndefinedColumnCode, Message: "column does not exist"}))
	assert.False(t, IsUndefinedColumn(&Error{Code: "23505", Message: "duplicate key"}))
	assert.False(t, IsUndefinedColumn(errors.New("42703")))
}
