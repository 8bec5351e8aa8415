package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
)

func TestCacheRepositoryNilClientDegradesToMiss(t *testing.T) {
	repo := NewCacheRepository(nil, nil)

	var dest []string
	err := repo.Get(context.Background(), "classes:top-six", &dest)
	require.ErrorIs(t, err, appErrors.ErrCacheMiss)

	require.NoError(t, repo.Set(context.Background(), "classes:top-six", []string{"a"}, time.Minute))
	require.NoError(t, repo.Delete(context.Background(), "classes:top-six"))
	require.NoError(t, repo.Close())
}
