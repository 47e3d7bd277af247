package app

import (
	"context"
	authAPI "game_roulette/internal/api/auth"
	historyAPI "game_roulette/internal/api/history"
	playerAPI "game_roulette/internal/api/player"
	rollAPI "game_roulette/internal/api/roll"
	wheelAPI "game_roulette/internal/api/wheel"
	"game_roulette/internal/config"
	"game_roulette/internal/config/env"
	"game_roulette/internal/middleware"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/repository/category_repo"
	"game_roulette/internal/repository/history_repo"
	"game_roulette/internal/repository/player_repo"
	"game_roulette/internal/repository/wheel_repo"
	"game_roulette/internal/service"
	"game_roulette/internal/service/auth"
	"game_roulette/internal/service/history"
	"game_roulette/internal/service/player"
	"game_roulette/internal/service/roll"
	"game_roulette/internal/service/wheel"
	"game_roulette/internal/spin"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// configPath - config.yaml с кривой замедления, колесами по умолчанию и правилами импорта
const configPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	hostCfg  config.HostConfig
	jwtCfg   config.JWTConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	// Categories
	categoryRepo repository.CategoryRepository
	importRules  config.ImportRules

	// Wheels
	wheelDefaults config.WheelDefaults
	wheelRepo     repository.WheelRepository
	wheelServ     service.WheelService
	wheelHand     *wheelAPI.Handler

	// History
	historyCfg  config.HistoryConfig
	historyRepo repository.HistoryRepository
	historyServ service.HistoryService
	historyHand *historyAPI.Handler

	// Roll bits
	spinCfg  config.SpinConfig
	rollServ service.RollService
	rollHand *rollAPI.Handler

	// Players
	playerRepo repository.PlayerRepository
	playerServ service.PlayerService
	playerHand *playerAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) HostCfg() config.HostConfig {
	if sp.hostCfg == nil {
		sp.hostCfg = env.NewHostConfig()
		if !sp.hostCfg.Enabled() {
			log.Warn().Msg("HOST_PASSWORD_HASH is empty, host endpoints are open to everybody")
		}
	}
	return sp.hostCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.HostCfg(), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService()})
	}
	return sp.authHand
}

func (sp *ServiceProvider) CategoryRepository(ctx context.Context) repository.CategoryRepository {
	if sp.categoryRepo == nil {
		sp.categoryRepo = category_repo.NewCategoryRepository(sp.DBClient(ctx))
	}
	return sp.categoryRepo
}

func (sp *ServiceProvider) ImportRules() config.ImportRules {
	if sp.importRules == nil {
		cfg, err := env.NewImportRulesFromYAML(configPath)
		if err != nil {
			panic("failed to get import rules: " + err.Error())
		}
		sp.importRules = cfg
	}
	return sp.importRules
}

func (sp *ServiceProvider) WheelDefaults() config.WheelDefaults {
	if sp.wheelDefaults == nil {
		cfg, err := env.NewWheelDefaultsFromYAML(configPath)
		if err != nil {
			panic("failed to get default wheels: " + err.Error())
		}
		sp.wheelDefaults = cfg
	}
	return sp.wheelDefaults
}

func (sp *ServiceProvider) WheelRepository(ctx context.Context) repository.WheelRepository {
	if sp.wheelRepo == nil {
		sp.wheelRepo = wheel_repo.NewWheelRepository(sp.DBClient(ctx))
	}
	return sp.wheelRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.WheelRepository(ctx), sp.WheelDefaults(), sp.TXManager(ctx))
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService(ctx)})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HistoryCfg() config.HistoryConfig {
	if sp.historyCfg == nil {
		cfg, err := env.NewHistoryConfig()
		if err != nil {
			panic("failed to get history config: " + err.Error())
		}
		sp.historyCfg = cfg
	}
	return sp.historyCfg
}

func (sp *ServiceProvider) HistoryRepository() repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.HistoryCfg().Path(), sp.HistoryCfg().Limit())
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) HistoryService() service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = history.NewHistoryService(sp.HistoryRepository())
	}
	return sp.historyServ
}

func (sp *ServiceProvider) HistoryHandler() *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{Serv: sp.HistoryService()})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) SpinCfg() config.SpinConfig {
	if sp.spinCfg == nil {
		cfg, err := env.NewSpinConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get spin config: " + err.Error())
		}
		sp.spinCfg = cfg
	}
	return sp.spinCfg
}

func (sp *ServiceProvider) RollService(ctx context.Context) service.RollService {
	if sp.rollServ == nil {
		historyServ := sp.HistoryService()
		s, err := roll.NewRollService(roll.Deps{
			Categories: sp.CategoryRepository(ctx),
			Wheels:     sp.WheelService(ctx),
			// Запись в историю идет из обработчика колеса, контекст запроса к этому моменту уже закрыт
			OnRollRecorded: func(e model.RollEntry) {
				if _, err := historyServ.Record(context.Background(), e); err != nil {
					log.Error().Err(err).Str("type", string(e.Type)).Msg("failed to record roll")
				}
			},
			EngineOptions: []spin.Option{spin.WithTiming(sp.SpinCfg().Timing())},
		})
		if err != nil {
			panic("failed to create roll service: " + err.Error())
		}
		sp.rollServ = s
	}
	return sp.rollServ
}

func (sp *ServiceProvider) RollHandler(ctx context.Context) *rollAPI.Handler {
	if sp.rollHand == nil {
		sp.rollHand = rollAPI.NewHandler(rollAPI.HandlerDeps{
			Serv:    sp.RollService(ctx),
			Origins: sp.HTTPCfg().AllowedOrigins(),
		})
	}
	return sp.rollHand
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) PlayerService(ctx context.Context) service.PlayerService {
	if sp.playerServ == nil {
		sp.playerServ = player.NewPlayerService(sp.PlayerRepository(ctx), sp.TXManager(ctx))
	}
	return sp.playerServ
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{Serv: sp.PlayerService(ctx)})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		hostOnly := middleware.RequireHost(sp.AuthService())

		// Auth endpoints
		r.Post("/auth/login", sp.AuthHandler().Login)

		// Roll endpoints
		rollHandler := sp.RollHandler(ctx)
		r.Route("/roll", func(rr chi.Router) {
			rr.Post("/category", rollHandler.RollCategory)
			rr.Post("/game", rollHandler.RollGame)
			rr.Post("/custom/{wheelID}", rollHandler.RollCustom)
			rr.Get("/state", rollHandler.State)
			rr.Get("/stream", rollHandler.Stream)
		})

		// Category endpoints
		r.Route("/categories", func(rr chi.Router) {
			rr.Get("/", rollHandler.Categories)
			rr.Get("/{id}/games", rollHandler.Games)
			rr.Post("/{id}/select", rollHandler.SelectCategory)
			rr.With(hostOnly).Post("/{id}/toggle", rollHandler.ToggleCategory)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheels", func(rr chi.Router) {
			rr.Get("/", wheelHandler.List)
			rr.Group(func(hr chi.Router) {
				hr.Use(hostOnly)
				hr.Put("/", wheelHandler.Save)
				hr.Post("/", wheelHandler.Add)
				hr.Post("/reset", wheelHandler.Reset)
				hr.Put("/{id}", wheelHandler.Update)
				hr.Delete("/{id}", wheelHandler.Delete)
			})
		})

		// Player endpoints
		playerHandler := sp.PlayerHandler(ctx)
		r.Route("/players", func(rr chi.Router) {
			rr.Get("/", playerHandler.List)
			rr.Get("/board", playerHandler.Board)
			rr.Group(func(hr chi.Router) {
				hr.Use(hostOnly)
				hr.Post("/{id}/move", playerHandler.Move)
				hr.Put("/{id}/position", playerHandler.SetPosition)
				hr.Post("/{id}/game", playerHandler.AssignGame)
			})
		})

		// History endpoints
		historyHandler := sp.HistoryHandler()
		r.Route("/history", func(rr chi.Router) {
			rr.Get("/", historyHandler.List)
			rr.With(hostOnly).Delete("/", historyHandler.Clear)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает ресурсы, созданные провайдером
func (sp *ServiceProvider) Close() {
	if sp.rollServ != nil {
		sp.rollServ.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
