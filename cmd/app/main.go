package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/tiktok_audio/internal/cache"
	"github.com/StounhandJ/tiktok_audio/internal/config"
	"github.com/StounhandJ/tiktok_audio/internal/handlers"
	"github.com/StounhandJ/tiktok_audio/internal/proxy"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers/oembed"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers/pagescrape"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers/shortlink"
	"github.com/StounhandJ/tiktok_audio/internal/resolvers/tikwm"
	"github.com/StounhandJ/tiktok_audio/internal/upstream"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	// .env не обязателен
	_ = godotenv.Load()

	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)
	//---------------//

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//------ HTTP клиент для отправки запросов ------//
	client, err := upstream.NewClient(cfg.Application.ProxyURL)
	if err != nil {
		utils.Log.Fatal(err)
	}

	headers := upstream.NewHeaders(cfg.Upstream.UserAgent, cfg.Upstream.Referer)
	//---------------//

	//------ Получение метаданных ------//
	resolver, err := newResolver(client, headers)
	if err != nil {
		utils.Log.Fatal(err)
	}

	if cfg.Cache.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			utils.Log.Fatal(err)
		}
		defer utils.CloseWithLog(rdb)

		resolver = cache.Wrap(resolver, rdb, cfg.Cache.TTL.Std())
		utils.Log.Infof("Кэш метаданных в redis %s", cfg.Cache.RedisAddr)
	}

	utils.Log.Infof("Способ получения метаданных: %s", resolver.Source())

	streamer := proxy.NewStreamer(client, headers, cfg.Upstream.StreamTimeout.Std())
	handler := handlers.NewHandler(resolver, streamer, cfg.HTTP.PublicURL, cfg.HTTP.AllowOrigins)
	//---------------//

	//------ TELEGRAM бот ------//
	if cfg.Application.TGBotToken != "" {
		bh, err := startBot(ctx, handler)
		if err != nil {
			utils.Log.Fatal(err)
		}
		defer func() {
			if err := bh.Stop(); err != nil {
				utils.Log.Error(err)
			}
		}()
	}
	//---------------//

	//------ HTTP сервер ------//
	server := &fasthttp.Server{
		Handler:         handler.Router(),
		Name:            "tiktok_audio",
		ReadTimeout:     cfg.HTTP.ReadTimeout.Std(),
		WriteTimeout:    cfg.HTTP.WriteTimeout.Std(),
		CloseOnShutdown: true,
		Logger:          utils.Log,
	}

	go func() {
		utils.Log.Infof("HTTP сервер на %s", cfg.HTTP.Listen)

		if err := server.ListenAndServe(cfg.HTTP.Listen); err != nil {
			utils.Log.Fatal(err)
		}
	}()
	//---------------//

	//------ Ожидание завершения программы ------//
	utils.Log.Info("Всё запущено")

	<-ctx.Done()

	utils.Log.Info("Остановка")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		utils.Log.Error(err)
	}
}

func newResolver(client *http.Client, headers upstream.Headers) (resolvers.IResolver, error) {
	source, ok := resolvers.ParseSource(cfg.Application.Strategy)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", cfg.Application.Strategy)
	}

	switch source {
	case resolvers.SourceOEmbed:
		return oembed.New(client, headers, cfg.Upstream.OEmbedTimeout.Std()), nil
	case resolvers.SourceTikwm:
		return tikwm.New(client, headers, cfg.Upstream.ScrapeTimeout.Std()), nil
	default:
		normalizer := shortlink.New(client, headers, cfg.Upstream.NormalizeTimeout.Std())

		return pagescrape.New(client, headers, normalizer, cfg.Upstream.ScrapeTimeout.Std()), nil
	}
}

func startBot(ctx context.Context, handler interface{ SetupRoutes(*th.BotHandler) }) (*th.BotHandler, error) {
	utils.Log.Info("Подключение TG-бота")

	bot, err := telego.NewBot(cfg.Application.TGBotToken, telego.WithDefaultLogger(cfg.Application.LogLevel == "debug", true))
	if err != nil {
		return nil, err
	}

	user, err := bot.GetMe(ctx)
	if err != nil {
		return nil, err
	}

	// Обработка сообщений ботом
	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return nil, err
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, err
	}

	handler.SetupRoutes(bh)

	go func() {
		utils.Log.Infof("TG БОТ ID=%d имя=%s username=@%s", user.ID, user.FirstName, user.Username)

		if err := bh.Start(); err != nil {
			utils.Log.Error(err)
		}
	}()

	return bh, nil
}
