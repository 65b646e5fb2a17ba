package customerr

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_SourceError_ShouldKeepKindThroughWrapping(t *testing.T) {
	err := errors.Wrap(FetchFailed("ecb", context.DeadlineExceeded), "get rate eur/usd at latest")

	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.False(t, errors.Is(err, ErrParseFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "ecb: fetch failed")
}

func Test_ResolverErrors_ShouldMatchSentinels(t *testing.T) {
	assert.True(t, errors.Is(RateNotFound("usd", "xyz"), ErrRateNotFound))
	assert.True(t, errors.Is(DivideByZero("eur", "jpy"), ErrDivideByZero))
	assert.True(t, errors.Is(InvalidArgument("blank from"), ErrInvalidArgument))
}
