package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage/memory"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 10 * time.Minute

func TestNewWithoutRedis(t *testing.T) {
	backing := memory.New()
	assert.Same(t, backing, New(backing, nil, ttl))
}

func TestGetAccountByID(t *testing.T) {
	ctx := context.Background()

	t.Run("miss reads through and populates", func(t *testing.T) {
		backing := memory.New()
		acc, err := backing.GetOrCreateAccount(ctx, "icici")
		require.NoError(t, err)
		payload, _ := json.Marshal(acc)

		redisClient, mock := redismock.NewClientMock()
		s := New(backing, redisClient, ttl)

		mock.ExpectGet(accountKey(acc.ID)).RedisNil()
		mock.ExpectSet(accountKey(acc.ID), string(payload), ttl).SetVal("OK")

		got, err := s.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		assert.Equal(t, acc, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit skips the backing store", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		s := New(memory.New(), redisClient, ttl)

		mock.ExpectGet(accountKey("acc-1")).SetVal(`{"id":"acc-1","account_name":"HDFC"}`)

		got, err := s.GetAccountByID(ctx, "acc-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "HDFC", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent account is not cached", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		s := New(memory.New(), redisClient, ttl)

		mock.ExpectGet(accountKey("ghost")).RedisNil()

		got, err := s.GetAccountByID(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure falls through", func(t *testing.T) {
		backing := memory.New()
		acc, err := backing.GetOrCreateAccount(ctx, "sbi")
		require.NoError(t, err)

		redisClient, mock := redismock.NewClientMock()
		s := New(backing, redisClient, ttl)

		mock.ExpectGet(accountKey(acc.ID)).SetErr(errors.New("connection refused"))

		got, err := s.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		assert.Equal(t, "SBI", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt value is dropped", func(t *testing.T) {
		backing := memory.New()
		acc, err := backing.GetOrCreateAccount(ctx, "axis")
		require.NoError(t, err)
		payload, _ := json.Marshal(acc)

		redisClient, mock := redismock.NewClientMock()
		s := New(backing, redisClient, ttl)

		mock.ExpectGet(accountKey(acc.ID)).SetVal("not json")
		mock.ExpectDel(accountKey(acc.ID)).SetVal(1)
		mock.ExpectSet(accountKey(acc.ID), string(payload), ttl).SetVal("OK")

		got, err := s.GetAccountByID(ctx, acc.ID)
		require.NoError(t, err)
		assert.Equal(t, "AXIS", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWritesInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		backing := memory.New()
		acc, err := backing.GetOrCreateAccount(ctx, "old")
		require.NoError(t, err)

		redisClient, mock := redismock.NewClientMock()
		s := New(backing, redisClient, ttl)

		mock.ExpectDel(accountKey(acc.ID)).SetVal(1)

		renamed, err := s.UpdateAccountName(ctx, acc.ID, "new")
		require.NoError(t, err)
		assert.Equal(t, "NEW", renamed.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed write leaves cache alone", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		s := New(memory.New(), redisClient, ttl)

		_, err := s.UpdateAccountName(ctx, "missing", "x")
		assert.Error(t, err)
		assert.Error(t, s.DeletePeriod(ctx, "missing"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("period update and delete", func(t *testing.T) {
		backing := memory.New()
		p, err := backing.GetOrCreatePeriod(ctx, models.May, 2025)
		require.NoError(t, err)

		redisClient, mock := redismock.NewClientMock()
		s := New(backing, redisClient, ttl)

		mock.ExpectDel(periodKey(p.ID)).SetVal(1)
		mock.ExpectDel(periodKey(p.ID)).SetVal(0)

		_, err = s.UpdatePeriod(ctx, p.ID, models.June, 2025)
		require.NoError(t, err)
		require.NoError(t, s.DeletePeriod(ctx, p.ID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPeriodByID(t *testing.T) {
	ctx := context.Background()
	backing := memory.New()
	p, err := backing.GetOrCreatePeriod(ctx, models.September, 2025)
	require.NoError(t, err)
	payload, _ := json.Marshal(p)

	redisClient, mock := redismock.NewClientMock()
	s := New(backing, redisClient, ttl)

	mock.ExpectGet(periodKey(p.ID)).RedisNil()
	mock.ExpectSet(periodKey(p.ID), string(payload), ttl).SetVal("OK")
	mock.ExpectGet(periodKey(p.ID)).SetVal(string(payload))

	first, err := s.GetPeriodByID(ctx, p.ID)
	require.NoError(t, err)
	second, err := s.GetPeriodByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "September 2025", second.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
