package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const doctorListKey = "doctors:list"

// DoctorCache keeps the public doctor directory out of the database on the
// hot read path. Writers to a doctor profile must call Invalidate.
type DoctorCache interface {
	Get(ctx context.Context) ([]entity.DoctorProfile, bool, error)
	Set(ctx context.Context, doctors []entity.DoctorProfile) error
	Invalidate(ctx context.Context) error
}

type redisDoctorCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDoctorCache(client *redis.Client, ttl time.Duration) DoctorCache {
	return &redisDoctorCache{client: client, ttl: ttl}
}

func (c *redisDoctorCache) Get(ctx context.Context) ([]entity.DoctorProfile, bool, error) {
	raw, err := c.client.Get(ctx, doctorListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var doctors []entity.DoctorProfile
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false, err
	}
	return doctors, true, nil
}

func (c *redisDoctorCache) Set(ctx context.Context, doctors []entity.DoctorProfile) error {
	raw, err := json.Marshal(doctors)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, doctorListKey, raw, c.ttl).Err()
}

func (c *redisDoctorCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, doctorListKey).Err()
}
