package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

// fakeConnectionRepo keeps connection rows keyed by canonical pair,
// mirroring the table's composite primary key.
type fakeConnectionRepo struct {
	rows map[models.UserPair]*models.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{rows: map[models.UserPair]*models.Connection{}}
}

func (f *fakeConnectionRepo) CreatePending(_ context.Context, pair models.UserPair) error {
	if _, ok := f.rows[pair]; ok {
		return pgrepo.ErrPairExists
	}
	f.rows[pair] = &models.Connection{
		Connection1ID: pair.Low,
		Connection2ID: pair.High,
		Status:        models.StatePending,
	}
	return nil
}

func (f *fakeConnectionRepo) AcceptPending(_ context.Context, pair models.UserPair) error {
	row, ok := f.rows[pair]
	if !ok || row.Status != models.StatePending {
		return utils.ErrNotFound
	}
	row.Status = models.StateAccepted
	return nil
}

func (f *fakeConnectionRepo) GetByPair(_ context.Context, pair models.UserPair) (*models.Connection, error) {
	row, ok := f.rows[pair]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return row, nil
}

func (f *fakeConnectionRepo) AcceptedCount(_ context.Context, userID uint64) (int64, error) {
	var n int64
	for pair, row := range f.rows {
		if pair.Contains(userID) && row.Status == models.StateAccepted {
			n++
		}
	}
	return n, nil
}

func (f *fakeConnectionRepo) ListAccepted(context.Context, uint64) ([]models.Peer, error) {
	return nil, nil
}

func (f *fakeConnectionRepo) ListAllStatuses(context.Context, uint64) ([]models.PeerStatus, error) {
	return nil, nil
}

func TestConnectionRequestStoresOneCanonicalPair(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewConnectionService(repo)
	ctx := context.Background()

	already, err := svc.Request(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, already)

	// The opposite direction collides with the same canonical row.
	already, err = svc.Request(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, already)

	require.Len(t, repo.rows, 1)
	pair, _ := models.NewUserPair(1, 2)
	row, ok := repo.rows[pair]
	require.True(t, ok)
	assert.Equal(t, uint64(1), row.Connection1ID)
	assert.Equal(t, uint64(2), row.Connection2ID)
}

func TestConnectionRequestSelfRejected(t *testing.T) {
	svc := NewConnectionService(newFakeConnectionRepo())

	_, err := svc.Request(context.Background(), 7, 7)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestConnectionAccept(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewConnectionService(repo)
	ctx := context.Background()

	// accepting without a pending row reports not found
	err := svc.Accept(ctx, 2, 1)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Request(ctx, 1, 2)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, 2, 1))

	// accepting an already-accepted pair is a not-found no-op
	err = svc.Accept(ctx, 2, 1)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestConnectionStatusResolution(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewConnectionService(repo)
	ctx := context.Background()

	status, err := svc.StatusFor(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSelf, status)

	status, err = svc.StatusFor(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotConnected, status)

	// user 1 requests user 2
	_, err = svc.Request(ctx, 1, 2)
	require.NoError(t, err)

	status, err = svc.StatusFor(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingSent, status)

	status, err = svc.StatusFor(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingReceived, status)

	require.NoError(t, svc.Accept(ctx, 2, 1))

	for _, viewer := range []uint64{1, 2} {
		status, err = svc.StatusFor(ctx, viewer, 3-viewer)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConnected, status)
	}
}

func TestAcceptedCount(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewConnectionService(repo)
	ctx := context.Background()

	_, err := svc.Request(ctx, 1, 2)
	require.NoError(t, err)
	_, err = svc.Request(ctx, 3, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, 2, 1))

	count, err := svc.AcceptedCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
