package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectin/connectin/internal/models"
)

// recordingPostRepo captures the query the service hands to the store.
type recordingPostRepo struct {
	fakePostRepo
	lastQuery string
	lastLimit int
}

func (f *recordingPostRepo) SearchContent(_ context.Context, q string, limit int) ([]models.FeedPost, error) {
	f.lastQuery, f.lastLimit = q, limit
	return []models.FeedPost{{PostID: 1, Content: q}}, nil
}

func (f *recordingPostRepo) SearchHashtag(_ context.Context, tag string, limit int) ([]models.FeedPost, error) {
	f.lastQuery, f.lastLimit = tag, limit
	return []models.FeedPost{{PostID: 1}}, nil
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewSearchService(newFakeUserRepo(), &recordingPostRepo{})
	ctx := context.Background()

	users, err := svc.Users(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, users)

	posts, err := svc.Posts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, posts)

	tagged, err := svc.Hashtags(ctx, "#")
	require.NoError(t, err)
	assert.Empty(t, tagged)
}

func TestSearchHashtagStripsLeadingHash(t *testing.T) {
	repo := &recordingPostRepo{}
	svc := NewSearchService(newFakeUserRepo(), repo)

	rows, err := svc.Hashtags(context.Background(), "#Remote")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Remote", repo.lastQuery)
	assert.Equal(t, searchLimit, repo.lastLimit)
}

func TestSearchPostsTrimsQuery(t *testing.T) {
	repo := &recordingPostRepo{}
	svc := NewSearchService(newFakeUserRepo(), repo)

	_, err := svc.Posts(context.Background(), "  golang  ")
	require.NoError(t, err)
	assert.Equal(t, "golang", repo.lastQuery)
	assert.Equal(t, searchLimit, repo.lastLimit)
}
