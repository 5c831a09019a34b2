package search

import (
	"context"
	"fmt"
	"strings"

	"search-rag-server/utils/platformerrors"
)

// BuildPersonQuery composes the actor query string for a person search.
// When focusXAccount is set the query is biased toward finding the person's
// X/Twitter profile instead of general information.
func BuildPersonQuery(ctx context.Context, name, additionalContext string, focusXAccount bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "person name must not be empty", nil,
			"3f2c1d84-9a07-4b52-8c6e-d41f0a27b9e3")
	}

	if focusXAccount {
		return fmt.Sprintf("%s X twitter account @", name), nil
	}
	if additionalContext = strings.TrimSpace(additionalContext); additionalContext != "" {
		return fmt.Sprintf("%s %s", name, additionalContext), nil
	}
	return name, nil
}
