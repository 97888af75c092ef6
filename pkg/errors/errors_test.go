package custom_error

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapDBError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want interface{}
	}{
		{"unique violation", "23505", &UniqueViolationError{}},
		{"foreign key violation", "23503", &ForeignKeyViolationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapDBError("duplicate key value", tt.code)
			assert.IsType(t, tt.want, err)
		})
	}

	err := WrapDBError("boom", "42601")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "42601")
}

func TestTranslateDBError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, TranslateDBError("inventory", nil))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		err := TranslateDBError("inventory", sql.ErrNoRows)
		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound))
		assert.Equal(t, "inventory not found", err.Error())
	})

	t.Run("wrapped no rows becomes not found", func(t *testing.T) {
		err := TranslateDBError("sku", fmt.Errorf("query: %w", sql.ErrNoRows))
		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("pq unique violation", func(t *testing.T) {
		err := TranslateDBError("batch", &pq.Error{Code: "23505", Message: "duplicate key"})
		var unique *UniqueViolationError
		assert.True(t, errors.As(err, &unique))
	})

	t.Run("pq foreign key violation", func(t *testing.T) {
		err := TranslateDBError("sku", &pq.Error{Code: "23503", Message: "violates foreign key"})
		var fk *ForeignKeyViolationError
		assert.True(t, errors.As(err, &fk))
	})

	t.Run("anything else keeps the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := TranslateDBError("product", cause)
		assert.True(t, errors.Is(err, cause))
	})
}
