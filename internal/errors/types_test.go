package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StoreError
		want string
	}{
		{
			name: "code and message",
			err:  NewValidationError("BAD", "bad input"),
			want: "[BAD] bad input",
		},
		{
			name: "with file and field",
			err:  NewValidationError("BAD", "bad input").WithFile("store.yaml").WithField("pages[0].slug"),
			want: "[BAD] store.yaml field:pages[0].slug bad input",
		},
		{
			name: "with cause",
			err:  NewIOError("READ", "read failed", errors.New("boom")),
			want: "[READ] read failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStoreError_Is(t *testing.T) {
	err := NewSlugConflictError("about", "p1", "p2")

	assert.True(t, errors.Is(err, ErrSlugConflict))
	assert.False(t, errors.Is(err, ErrInvalidSlug))

	wrapped := fmt.Errorf("pack: %w", err)
	assert.True(t, errors.Is(wrapped, ErrSlugConflict))
	assert.True(t, IsIntegrity(wrapped))
	assert.Equal(t, CodeSlugConflict, CodeOf(wrapped))
}

func TestSlugConflictContext(t *testing.T) {
	err := NewSlugConflictError("about", "p1", "p2")

	assert.Equal(t, "about", err.Context["slug"])
	assert.Equal(t, "p1,p2", err.Context["pages"])
	assert.Contains(t, err.Error(), `"about"`)
}

func TestFields(t *testing.T) {
	err := NewIntegrityError(CodeInvalidSlug, "bad").
		WithContext("zeta", 1).
		WithContext("alpha", 2)

	assert.Equal(t, []any{
		"error_type", "integrity",
		"error_code", CodeInvalidSlug,
		"alpha", 2,
		"zeta", 1,
	}, err.Fields())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("WRITE", "write failed", cause)

	require.ErrorIs(t, err, cause)
	assert.False(t, IsValidation(err))
	assert.Nil(t, Wrap(nil, "noop"))
	assert.ErrorIs(t, Wrap(err, "outer"), cause)
}
