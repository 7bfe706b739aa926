package adapters

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/feature/portfolio/domain/entity"
	"stockwatch/internal/feature/portfolio/usecase"
	"stockwatch/internal/platform/db/dbtest"
	"stockwatch/internal/shared/apperr"
)

func newRepo(t *testing.T) *membershipRepository {
	t.Helper()
	return NewMembershipRepository(dbtest.New(t, &MembershipModel{}))
}

func TestMembershipRepository_Create(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	m := &entity.Membership{UserID: "u-1", StockID: 1}
	require.NoError(t, repo.Create(ctx, m))
	assert.False(t, m.CreatedAt.IsZero())

	err := repo.Create(ctx, &entity.Membership{UserID: "u-1", StockID: 1})
	assert.ErrorIs(t, err, usecase.ErrAlreadyInPortfolio)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// 別ユーザー・別銘柄は独立したキー
	assert.NoError(t, repo.Create(ctx, &entity.Membership{UserID: "u-2", StockID: 1}))
	assert.NoError(t, repo.Create(ctx, &entity.Membership{UserID: "u-1", StockID: 2}))
}

func TestMembershipRepository_ConcurrentCreate(t *testing.T) {
	repo := newRepo(t)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), &entity.Membership{UserID: "u-1", StockID: 7})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, usecase.ErrAlreadyInPortfolio)
	}
	assert.Equal(t, 1, wins)
}

func TestMembershipRepository_DeleteAndExists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	key := entity.MembershipKey{UserID: "u-1", StockID: 1}

	require.NoError(t, repo.Create(ctx, &entity.Membership{UserID: key.UserID, StockID: key.StockID}))

	ok, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, key))

	ok, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.Delete(ctx, key), usecase.ErrMembershipNotFound)

	// 削除後は再追加できる
	assert.NoError(t, repo.Create(ctx, &entity.Membership{UserID: key.UserID, StockID: key.StockID}))
}

func TestMembershipRepository_List(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, m := range []entity.Membership{
		{UserID: "u-1", StockID: 3},
		{UserID: "u-1", StockID: 1},
		{UserID: "u-2", StockID: 1},
	} {
		m := m
		require.NoError(t, repo.Create(ctx, &m))
	}

	got, err := repo.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	stocks := []uint{got[0].StockID, got[1].StockID}
	assert.ElementsMatch(t, []uint{1, 3}, stocks)

	got, err = repo.ListByStock(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
