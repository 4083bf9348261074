package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/itssoni10/ELance/internal/db"
	advicehttp "github.com/itssoni10/ELance/internal/modules/advice/http"
	adviceservice "github.com/itssoni10/ELance/internal/modules/advice/service"
	authdomain "github.com/itssoni10/ELance/internal/modules/auth/domain"
	authhttp "github.com/itssoni10/ELance/internal/modules/auth/http"
	authinfra "github.com/itssoni10/ELance/internal/modules/auth/infra"
	authpg "github.com/itssoni10/ELance/internal/modules/auth/infra/pg"
	authredis "github.com/itssoni10/ELance/internal/modules/auth/infra/redis"
	authservice "github.com/itssoni10/ELance/internal/modules/auth/service"
	careershttp "github.com/itssoni10/ELance/internal/modules/careers/http"
	careerspg "github.com/itssoni10/ELance/internal/modules/careers/infra/pg"
	careersservice "github.com/itssoni10/ELance/internal/modules/careers/service"
	"github.com/itssoni10/ELance/internal/platform/ai"
	"github.com/itssoni10/ELance/internal/platform/config"
	plathttp "github.com/itssoni10/ELance/internal/platform/http"
	"github.com/itssoni10/ELance/internal/platform/logger"
	"github.com/itssoni10/ELance/internal/platform/notify"
	"github.com/itssoni10/ELance/internal/platform/security"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	dbpool, err := db.Open(context.Background(), cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer dbpool.Close()

	var pending authdomain.PendingStore
	switch cfg.PendingStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pending = authredis.NewPendingStore(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("pending signups backed by redis")
	default:
		pending = authinfra.NewMemPendingStore()
	}

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	jwtMgr := security.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := authpg.NewUserRepo(dbpool)

	authSvc := authservice.New(authservice.Deps{
		Users:   userRepo,
		Pending: pending,
		Mailer:  mailer,
		Tokens:  jwtMgr,
		Logger:  log,
	})

	skillRepo := careerspg.NewSkillRepo(dbpool)
	profileRepo := careerspg.NewProfileRepo(dbpool)
	careersSvc := careersservice.New(careersservice.Deps{
		Skills:   skillRepo,
		Jobs:     careerspg.NewJobRepo(dbpool),
		Paths:    careerspg.NewPathRepo(dbpool),
		Profiles: profileRepo,
	})

	adviceSvc := adviceservice.New(adviceservice.Deps{
		AI:       ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		Skills:   skillRepo,
		Profiles: profileRepo,
		Users:    userRepo,
	})

	authMW := plathttp.JWTAuth(jwtMgr)
	app := plathttp.NewServer(
		plathttp.Options{AppName: "elance-api", Logger: log},
		authhttp.NewModule(authSvc, cfg.IsDev()),
		careershttp.NewModule(careersSvc, authMW),
		advicehttp.NewModule(adviceSvc, authMW),
	)

	log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("listening")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
