package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-rag-server/utils/platformerrors"
)

func TestBuildPersonQuery(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		person        string
		context       string
		focusXAccount bool
		want          string
	}{
		{
			name:   "name only",
			person: "Ada Lovelace",
			want:   "Ada Lovelace",
		},
		{
			name:    "name with context",
			person:  "Ada Lovelace",
			context: "analytical engine",
			want:    "Ada Lovelace analytical engine",
		},
		{
			name:          "focus on x account overrides context",
			person:        "Ada Lovelace",
			context:       "analytical engine",
			focusXAccount: true,
			want:          "Ada Lovelace X twitter account @",
		},
		{
			name:    "whitespace trimmed",
			person:  "  Ada Lovelace  ",
			context: "  ",
			want:    "Ada Lovelace",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildPersonQuery(ctx, tc.person, tc.context, tc.focusXAccount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, strings.Contains(got, strings.TrimSpace(tc.person)))
		})
	}
}

func TestBuildPersonQueryEmptyName(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		_, err := BuildPersonQuery(ctx, name, "context", false)
		require.Error(t, err)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}
}
