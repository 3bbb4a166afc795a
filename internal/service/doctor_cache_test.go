package service

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCacheRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisDoctorCache(client, time.Minute)
	ctx := context.Background()

	_, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	userID := uuid.New()
	doctors := []entity.DoctorProfile{{
		ID:              uuid.New(),
		UserID:          userID,
		Specialization:  "Cardiology",
		ConsultationFee: decimal.NewNullDecimal(decimal.RequireFromString("150.50")),
		User:            entity.User{ID: userID, Name: "Dr. Strange", Email: "strange@example.com", Role: entity.RoleDoctor},
	}}
	require.NoError(t, cache.Set(ctx, doctors))
	assert.Equal(t, time.Minute, mr.TTL(doctorListKey))

	cached, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, cached, 1)
	assert.Equal(t, "Cardiology", cached[0].Specialization)
	assert.Equal(t, "Dr. Strange", cached[0].User.Name)
	assert.True(t, cached[0].ConsultationFee.Decimal.Equal(decimal.RequireFromString("150.5")))

	require.NoError(t, cache.Invalidate(ctx))
	_, hit, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDoctorCacheEmptyListIsAHit(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewRedisDoctorCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []entity.DoctorProfile{}))
	cached, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, cached)
}
