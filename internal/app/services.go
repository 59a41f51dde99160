package app

import (
	"fmt"

	"hris-console/internal/bootstrap"
	"hris-console/internal/config"
	"hris-console/internal/hrapi"
	"hris-console/internal/hrdb"
	"hris-console/internal/leave"
	"hris-console/internal/photocache"
	"hris-console/internal/rbac"
	"hris-console/internal/rbac/infra"
	"hris-console/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// Services is the dependency graph shared by the HTTP server and the
// operator console.
type Services struct {
	Leave leave.Service
	RBAC  rbac.Service
	Redis *redis.Client

	closers []func() error
}

func NewServices(cfg *config.Config, logger *zap.Logger) (*Services, error) {
	s := &Services{}

	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, connectRetries)
		if err != nil {
			return nil, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, rdb.Close)
	} else {
		logger.Warn("REDIS_ADDR not set, photo cache and idempotency disabled")
	}

	gateway, err := s.newGateway(cfg, logger)
	if err != nil {
		s.Close()
		return nil, err
	}

	var photos leave.PhotoCache
	if s.Redis != nil {
		photos = photocache.New(s.Redis, cfg.Redis.PhotoTTL, logger)
	}

	transformer := leave.NewTransformer(
		leave.ImageResolver{
			BaseOrigin:  cfg.Media.BaseOrigin,
			Placeholder: cfg.Media.Placeholder,
		},
		leave.NewCalculator(leave.Allowances{
			leave.TypeAnnual:  cfg.Leave.AnnualAllowance,
			leave.TypeAbsence: cfg.Leave.AbsenceAllowance,
			leave.TypeSick:    cfg.Leave.SickAllowance,
		}, leave.BalancePeriod(cfg.Leave.BalancePeriod)),
	)
	audit := bootstrap.LeaveAuditor{Logger: bootstrap.NewStdoutAuditLogger(logger)}
	s.Leave = leave.NewService(gateway, transformer, photos, audit, logger)

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("build enforcer: %w", err)
	}
	s.RBAC = rbac.NewService(rbac.NewRepository(), enforcer, logger)
	if err := s.RBAC.LoadPolicy(); err != nil {
		s.Close()
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}

	return s, nil
}

func (s *Services) newGateway(cfg *config.Config, logger *zap.Logger) (leave.Gateway, error) {
	switch cfg.Gateway.Mode {
	case config.GatewayDB:
		db, err := connection.ConnectGORMWithRetry(
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			cfg.Database.SSLMode,
			connectRetries,
		)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, sqlDB.Close)
		logger.Info("leave gateway ready", zap.String("mode", config.GatewayDB))
		return hrdb.NewGateway(db, logger), nil
	default:
		logger.Info("leave gateway ready", zap.String("mode", config.GatewayREST), zap.String("base_url", cfg.HRAPI.BaseURL))
		return hrapi.NewClient(cfg.HRAPI.BaseURL, cfg.HRAPI.Token, cfg.HRAPI.Timeout, logger), nil
	}
}

// Close releases connections in reverse order of acquisition.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			zap.L().Warn("close failed", zap.Error(err))
		}
	}
	s.closers = nil
}
