package session

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/exceptions"
	"time"
)

type redisSlotRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewRedisSlotRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SessionSlotRepository {
	return &redisSlotRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (r *redisSlotRepository) Read(ctx context.Context, slot string) (string, error) {
	raw, err := r.RedisRepository.Get(ctx, slot)
	if err != nil {
		return "", exceptions.ErrSessionSlotRead(err, slot)
	}
	return raw, nil
}

func (r *redisSlotRepository) Write(ctx context.Context, slot string, session *models.Session) error {
	err := r.RedisRepository.Set(ctx, slot, session, r.TTL)
	if err != nil {
		return exceptions.ErrSessionSlotWrite(err, slot)
	}
	return nil
}

func (r *redisSlotRepository) Delete(ctx context.Context, slot string) error {
	err := r.RedisRepository.Delete(ctx, slot)
	if err != nil {
		return exceptions.ErrSessionSlotDelete(err, slot)
	}
	return nil
}
