package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectin/connectin/internal/models"
	"github.com/connectin/connectin/internal/utils"
)

type fakeJobRepo struct {
	jobs   []models.Job
	nextID uint64
	lists  int
}

func (f *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	f.nextID++
	j.JobID = f.nextID
	f.jobs = append(f.jobs, *j)
	return nil
}

func (f *fakeJobRepo) List(context.Context) ([]models.JobListing, error) {
	f.lists++
	out := make([]models.JobListing, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, models.JobListing{
			JobID:           j.JobID,
			Title:           j.Title,
			Company:         j.Company,
			Location:        j.Location,
			Description:     j.Description,
			PostedBy:        j.PostedBy,
			CreatedAt:       j.CreatedAt,
			ContactEmail:    j.ContactEmail,
			ContactPhone:    j.ContactPhone,
			ApplicationLink: j.ApplicationLink,
			PostedByName:    "Poster",
		})
	}
	return out, nil
}

// fakeCache is an in-memory stand-in for the Redis JSON cache.
type fakeCache struct {
	entries map[string][]byte
	dels    int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string][]byte{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.entries[key] = b
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
		f.dels++
	}
	return nil
}

func strptr(s string) *string { return &s }

func validJob() JobInput {
	return JobInput{
		Title:           "Backend Engineer",
		Company:         "Acme",
		Location:        "Remote",
		Description:     "Build things",
		ContactEmail:    strptr("jobs@acme.test"),
		ContactPhone:    strptr("555-0100"),
		ApplicationLink: strptr("https://acme.test/apply"),
	}
}

func TestCreateJobEmployerOnly(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, nil)

	_, err := svc.Create(context.Background(), 1, models.RoleEmployee, validJob())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestCreateJobRequiredFields(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, nil)

	in := validJob()
	in.Location = " "
	_, err := svc.Create(context.Background(), 1, models.RoleEmployer, in)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestJobContactFieldsRoundTripForPosterAndSeekers(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewJobService(repo, nil)
	ctx := context.Background()

	in := validJob()
	jobID, err := svc.Create(ctx, 1, models.RoleEmployer, in)
	require.NoError(t, err)
	assert.NotZero(t, jobID)

	// a job seeker sees all contact fields
	rows, err := svc.List(ctx, 9, models.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ContactEmail)
	assert.Equal(t, *in.ContactEmail, *rows[0].ContactEmail)
	assert.Equal(t, *in.ContactPhone, *rows[0].ContactPhone)
	assert.Equal(t, *in.ApplicationLink, *rows[0].ApplicationLink)

	// the posting employer still sees their own listing's contacts
	rows, err = svc.List(ctx, 1, models.RoleEmployer)
	require.NoError(t, err)
	require.NotNil(t, rows[0].ContactEmail)

	// a different employer does not
	rows, err = svc.List(ctx, 2, models.RoleEmployer)
	require.NoError(t, err)
	assert.Nil(t, rows[0].ContactEmail)
	assert.Nil(t, rows[0].ContactPhone)
	assert.Nil(t, rows[0].ApplicationLink)
}

func TestJobListCache(t *testing.T) {
	repo := &fakeJobRepo{}
	c := newFakeCache()
	svc := NewJobService(repo, c)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, models.RoleEmployer, validJob())
	require.NoError(t, err)

	_, err = svc.List(ctx, 2, models.RoleEmployee)
	require.NoError(t, err)
	_, err = svc.List(ctx, 3, models.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lists, "second list should be served from cache")

	// creating a job invalidates the cached listing
	_, err = svc.Create(ctx, 1, models.RoleEmployer, validJob())
	require.NoError(t, err)
	_, err = svc.List(ctx, 2, models.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}
