package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_UnwrapsToKind(t *testing.T) {
	t.Parallel()

	errStock := New(ErrNotFound, "stock not found")
	wrapped := fmt.Errorf("%w: id=%d", errStock, 7)

	assert.ErrorIs(t, wrapped, errStock)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrConflict)
	assert.Equal(t, "stock not found: id=7", wrapped.Error())
}

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", New(ErrNotFound, "x"), ErrNotFound},
		{"conflict", fmt.Errorf("ctx: %w", New(ErrConflict, "x")), ErrConflict},
		{"validation", Validation("bad"), ErrValidation},
		{"plain error", errors.New("boom"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
