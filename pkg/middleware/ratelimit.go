package middleware

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/storymaker/tracking-api/pkg/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimitPrefix = "storymaker:ratelimit"

// RateLimiter limita as rotas públicas de captura por IP do cliente
type RateLimiter struct {
	middleware *stdlib.Middleware
	client     *redis.Client
}

// NewRateLimiter usa o Redis de RATE_LIMIT_REDIS_URL quando configurado e a
// memória do processo caso contrário.
func NewRateLimiter(cfg config.RateLimit) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, err
	}

	rl := &RateLimiter{}

	var store limiter.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		rl.client = redis.NewClient(opts)
		store, err = sredis.NewStoreWithOptions(rl.client, limiter.StoreOptions{Prefix: rateLimitPrefix})
		if err != nil {
			rl.client.Close()
			return nil, err
		}
		log.L.WithField("rate", cfg.Rate).Info("Rate limit usando Redis")
	} else {
		store = memory.NewStore()
		log.L.WithField("rate", cfg.Rate).Info("Rate limit usando memória local")
	}

	rl.middleware = stdlib.NewMiddleware(
		limiter.New(store, rate),
		stdlib.WithKeyGetter(rateLimitKey),
		stdlib.WithLimitReachedHandler(limitReached),
		stdlib.WithErrorHandler(limiterError),
	)

	return rl, nil
}

// Limit é o middleware aplicado por rota
func (rl *RateLimiter) Limit() func(http.Handler) http.Handler {
	return rl.middleware.Handler
}

func (rl *RateLimiter) Close() error {
	if rl.client == nil {
		return nil
	}
	return rl.client.Close()
}

// rateLimitKey usa o IP resolvido por ClientIP; sem proxy confiável é o
// próprio par da conexão, então X-Forwarded-For forjado não gera chave nova.
func rateLimitKey(r *http.Request) string {
	if ip := utils.ClientIP(r); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func limitReached(w http.ResponseWriter, r *http.Request) {
	log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Limite de requisições excedido")
	apiErrors.WriteError(w, apiErrors.ErrTooManyRequest, "Muitas requisições, tente novamente em instantes", nil)
}

func limiterError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro no rate limiter")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
