package app

import (
	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	UploadDir    string
	CacheEnabled bool
	Port         string
	Environment  string
	AllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	uploadDir := utils.GetEnv("UPLOAD_DIR", "./uploads", log)
	cacheEnabled := utils.GetEnvAsBool("CACHE_ENABLED", false, log)
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	allowOrigin := utils.GetEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000", log)
	return Config{
		JWTSecretKey: jwtSecretKey,
		UploadDir:    uploadDir,
		CacheEnabled: cacheEnabled,
		Port:         port,
		Environment:  environment,
		AllowOrigins: []string{allowOrigin},
	}
}
