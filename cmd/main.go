package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"oyunlag-bot/handler"
	"oyunlag-bot/internal/analytics"
	"oyunlag-bot/internal/bot"
	"oyunlag-bot/internal/content"
	"oyunlag-bot/internal/integrations/discord"
	"oyunlag-bot/internal/integrations/gemini"
	"oyunlag-bot/internal/integrations/messenger"
	"oyunlag-bot/internal/integrations/paramstore"
	"oyunlag-bot/internal/repository"
	"oyunlag-bot/internal/state"
)

func main() {
	ctx := context.Background()

	// Local runs keep config in a .env file; in deployment the
	// variables come from the environment and this is a no-op.
	_ = godotenv.Load()

	// ---- Configuration (read only here) ----
	verifyToken := mustEnv("VERIFY_TOKEN")
	pageID := os.Getenv("PAGE_ID")
	profileTable := os.Getenv("PROFILE_TABLE")
	analyticsURL := os.Getenv("ANALYTICS_URL")
	paramPrefix := os.Getenv("PARAM_PREFIX")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	adminTimeout := time.Duration(envInt("ADMIN_TIMEOUT_HOURS", 24)) * time.Hour

	// ---- AWS SDK config (only when something needs it) ----
	var secrets paramstore.Getter
	var dynamoClient *awsdynamodb.Client
	if paramPrefix != "" || profileTable != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
		if paramPrefix != "" {
			secrets, err = paramstore.New(awsssm.NewFromConfig(cfg), paramPrefix)
			if err != nil {
				slog.Error("failed to create SSM client", "err", err)
				os.Exit(1)
			}
		}
		if profileTable != "" {
			dynamoClient = awsdynamodb.NewFromConfig(cfg)
		}
	}

	// ---- Secrets (env first, then Parameter Store) ----
	pageAccessToken := mustSecret(ctx, secrets, "PAGE_ACCESS_TOKEN", "page-access-token")
	geminiKey := secret(ctx, secrets, "GEMINI_API_KEY", "gemini-api-key")
	discordURL := secret(ctx, secrets, "DISCORD_WEBHOOK_URL", "discord-webhook-url")
	adminSecret := secret(ctx, secrets, "ADMIN_SECRET", "admin-secret")

	// ---- Clients ----
	messengerClient, err := messenger.NewClient(pageAccessToken)
	if err != nil {
		slog.Error("failed to create messenger client", "err", err)
		os.Exit(1)
	}

	states := state.NewStore(state.WithAdminTimeout(adminTimeout))
	svcCfg := bot.Config{
		Messenger: messengerClient,
		States:    states,
	}
	flags := handler.ServiceFlags{Messenger: true}

	if geminiKey != "" {
		geminiClient, err := gemini.NewClient(geminiKey, content.SchoolFacts)
		if err != nil {
			slog.Error("failed to create gemini client", "err", err)
			os.Exit(1)
		}
		svcCfg.Completions = geminiClient
		flags.AI = true
	}
	if dynamoClient != nil {
		profileStore, err := repository.New(dynamoClient, profileTable)
		if err != nil {
			slog.Error("failed to create profile store", "err", err)
			os.Exit(1)
		}
		svcCfg.Profiles = profileStore
		flags.Profiles = true
	}
	if discordURL != "" {
		alerts, err := discord.NewWebhook(discordURL, pageID)
		if err != nil {
			slog.Error("failed to create discord webhook", "err", err)
			os.Exit(1)
		}
		svcCfg.Alerts = alerts
		flags.Alerts = true
	}
	if tracker := analytics.NewTracker(analyticsURL); tracker.Enabled() {
		svcCfg.Tracker = tracker
		flags.Analytics = true
	}

	// ---- HTTP surface ----
	svc, err := bot.NewService(svcCfg)
	if err != nil {
		slog.Error("failed to create bot service", "err", err)
		os.Exit(1)
	}

	h, err := handler.New(svc, states, verifyToken, adminSecret, flags, slog.Default())
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	h.Register(r)

	slog.Info("starting webhook server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// secret resolves an optional secret: environment variable first,
// Parameter Store second, empty when neither is configured.
func secret(ctx context.Context, getter paramstore.Getter, envKey, paramName string) string {
	v, err := paramstore.Resolve(ctx, getter, os.Getenv(envKey), paramName)
	if err != nil {
		slog.Warn("failed to resolve secret, continuing without it", "key", envKey, "err", err)
		return ""
	}
	return v
}

func mustSecret(ctx context.Context, getter paramstore.Getter, envKey, paramName string) string {
	v, err := paramstore.Resolve(ctx, getter, os.Getenv(envKey), paramName)
	if err != nil {
		slog.Error("failed to resolve required secret", "key", envKey, "err", err)
		os.Exit(1)
	}
	if v == "" {
		slog.Error("required secret is not configured", "key", envKey)
		os.Exit(1)
	}
	return v
}
