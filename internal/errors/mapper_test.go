package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"not found", NotFound("job ad", "7f1c"), codes.NotFound, "job ad 7f1c not found"},
		{"wrapped not found", fmt.Errorf("accept: %w", NotFound("match", "a/b")), codes.NotFound, "match a/b not found"},
		{"conflict", Conflict("match", "a/b"), codes.AlreadyExists, "match a/b already exists"},
		{"forbidden", Forbidden("matches are private"), codes.PermissionDenied, "matches are private"},
		{"gorm not found", gorm.ErrRecordNotFound, codes.NotFound, "record not found"},
		{"gorm duplicate", gorm.ErrDuplicatedKey, codes.AlreadyExists, "record already exists"},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, "request timed out"},
		{"other", fmt.Errorf("boom"), codes.Internal, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(Map(tt.err))
			assert.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestMap_NilAndStatusPassThrough(t *testing.T) {
	assert.NoError(t, Map(nil))

	in := InvalidArgument("bad id")
	assert.Equal(t, in, Map(in))
}

func TestKindHelpers(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("skill", "Go"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.True(t, IsConflict(Conflict("skill", "Go")))
	assert.True(t, IsForbidden(Forbidden("nope")))
}
