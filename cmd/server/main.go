package main

import (
	"context"
	"net"
	"net/http"

	"clubdeportivo/internal/models/config"
	"clubdeportivo/internal/repository/asistencia"
	"clubdeportivo/internal/repository/entrenamiento"
	"clubdeportivo/internal/repository/evento"
	"clubdeportivo/internal/repository/jugador"
	"clubdeportivo/internal/repository/mensualidad"
	asistencia_service "clubdeportivo/internal/service/asistencia"
	evento_service "clubdeportivo/internal/service/evento"
	jugador_service "clubdeportivo/internal/service/jugador"
	mensualidad_service "clubdeportivo/internal/service/mensualidad"
	"clubdeportivo/internal/settings"
	"clubdeportivo/internal/web"
	database "clubdeportivo/pkg"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			newLogger,
			database.NewPostgres,

			asistencia.NewAsistenciaRepository,
			evento.NewEventoRepository,
			mensualidad.NewMensualidadRepository,
			jugador.NewJugadorRepository,
			entrenamiento.NewEntrenamientoRepository,

			asistencia_service.NewAsistenciaService,
			evento_service.NewEventoService,
			mensualidad_service.NewMensualidadService,
			jugador_service.NewJugadorService,

			newSettingsStore,
			web.NewHandler,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(registerServer),
	).Run()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newSettingsStore(lc fx.Lifecycle, cfg *config.Config) (*settings.Store, error) {
	store, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return store.Close() },
	})
	return store, nil
}

func registerServer(lc fx.Lifecycle, handler *web.Handler, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.Routes(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("servidor escuchando", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Error("servidor http cayó", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
