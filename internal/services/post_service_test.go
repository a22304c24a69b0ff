package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectin/connectin/internal/models"
	"github.com/connectin/connectin/internal/utils"
)

type fakePostRepo struct {
	posts    []*models.Post
	hashtags []models.Hashtag
	comments []*models.Comment
	nextID   uint64
}

func (f *fakePostRepo) Create(_ context.Context, p *models.Post) error {
	f.nextID++
	p.PostID = f.nextID
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakePostRepo) AddHashtags(_ context.Context, tags []models.Hashtag) error {
	f.hashtags = append(f.hashtags, tags...)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, postID uint64) (*models.FeedPost, error) {
	for _, p := range f.posts {
		if p.PostID == postID {
			return &models.FeedPost{PostID: p.PostID, Content: p.Content, UserID: p.UserID}, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakePostRepo) List(context.Context, bool) ([]models.FeedPost, error) { return nil, nil }

func (f *fakePostRepo) HashtagsOf(_ context.Context, postID uint64) ([]models.Hashtag, error) {
	var out []models.Hashtag
	for _, h := range f.hashtags {
		if h.PostID == postID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakePostRepo) CommentsOf(context.Context, uint64) ([]models.CommentWithAuthor, error) {
	return nil, nil
}

func (f *fakePostRepo) AddComment(_ context.Context, c *models.Comment) error {
	f.nextID++
	c.CommentID = f.nextID
	f.comments = append(f.comments, c)
	return nil
}

func (f *fakePostRepo) SearchContent(context.Context, string, int) ([]models.FeedPost, error) {
	return nil, nil
}

func (f *fakePostRepo) SearchHashtag(context.Context, string, int) ([]models.FeedPost, error) {
	return nil, nil
}

func TestParseHashtags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "mixed tokens", raw: "foo, #bar, ,baz", want: []string{"foo", "bar", "baz"}},
		{name: "hash only", raw: "#", want: nil},
		{name: "whitespace tokens", raw: " , ,  ", want: nil},
		{name: "single tag", raw: "#Remote", want: []string{"Remote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHashtags(tt.raw))
		})
	}
}

func TestCreatePostRequiresContentOrImage(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	_, err := svc.Create(context.Background(), 1, "", "", nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestCreatePostImageOnly(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	url := "uploads/1-abc.png"
	postID, err := svc.Create(context.Background(), 1, "", "", &url)
	require.NoError(t, err)
	assert.NotZero(t, postID)
	require.Len(t, repo.posts, 1)
	require.NotNil(t, repo.posts[0].ImageURL)
	assert.Equal(t, url, *repo.posts[0].ImageURL)
}

func TestCreatePostStoresParsedHashtags(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	postID, err := svc.Create(context.Background(), 1, "hello", "foo, #bar, ,baz", nil)
	require.NoError(t, err)

	tags, err := svc.Hashtags(context.Background(), postID)
	require.NoError(t, err)
	var names []string
	for _, h := range tags {
		names = append(names, h.Hashtag)
	}
	assert.Equal(t, []string{"foo", "bar", "baz"}, names)
}

func TestAddCommentRequiresContent(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	_, err := svc.AddComment(context.Background(), 1, 2, "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	id, err := svc.AddComment(context.Background(), 1, 2, "great post")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
