package usecase

import (
	"context"

	"go-intake-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redisClient *goredis.Client
}

func NewHealthUsecase(redisClient *goredis.Client) HealthUsecase {
	return &healthUsecase{redisClient: redisClient}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}
	if u.redisClient != nil {
		if err := redis.HealthCheck(ctx, u.redisClient); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}
