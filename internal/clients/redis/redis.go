package redis

import (
  goredis "github.com/redis/go-redis/v9"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/utils"
)

func NewClient(log *logger.Logger) *goredis.Client {
  addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
  password := utils.GetEnv("REDIS_PASSWORD", "", log)
  db := utils.GetEnvAsInt("REDIS_DB", 0, log)

  return goredis.NewClient(&goredis.Options{
    Addr:     addr,
    Password: password,
    DB:       db,
  })
}
