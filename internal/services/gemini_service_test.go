package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"movie-feels-backend/internal/config"
	"movie-feels-backend/internal/recommend"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewTitleRankerWithoutKeyIsDisabled(t *testing.T) {
	ranker, err := NewTitleRanker(context.Background(), config.GeminiConfig{}, quietLogger())
	require.NoError(t, err)

	titles, err := ranker.RankTitles(context.Background(), RerankInput{Notes: "tired"})
	assert.ErrorIs(t, err, ErrRankerDisabled)
	assert.Nil(t, titles)
}

func TestGeminiRankerRankTitles(t *testing.T) {
	var gotPrompt string
	ranker := newGeminiRanker(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return "Soul, Up\n", nil
	}, time.Second, quietLogger())

	titles, err := ranker.RankTitles(context.Background(), RerankInput{
		Notes:      "missing my grandfather",
		Preference: "repair",
		Candidates: []recommend.Candidate{{ID: 1, Title: "Up", Year: 2009}, {ID: 2, Title: "Soul", Year: 2020}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"soul", "up"}, titles)
	assert.Contains(t, gotPrompt, "missing my grandfather")
	assert.Contains(t, gotPrompt, `"title":"Soul"`)
}

func TestGeminiRankerNoneReply(t *testing.T) {
	ranker := newGeminiRanker(func(context.Context, string) (string, error) {
		return "NONE", nil
	}, 0, quietLogger())

	titles, err := ranker.RankTitles(context.Background(), RerankInput{Notes: "n"})
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestGeminiRankerSingleAttemptAndBreaker(t *testing.T) {
	calls := 0
	ranker := newGeminiRanker(func(context.Context, string) (string, error) {
		calls++
		return "", errors.New("quota exceeded")
	}, time.Second, quietLogger())

	for i := 0; i < 5; i++ {
		_, err := ranker.RankTitles(context.Background(), RerankInput{Notes: "n"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	}
	assert.Equal(t, 5, calls)

	_, err := ranker.RankTitles(context.Background(), RerankInput{Notes: "n"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, calls)
}
