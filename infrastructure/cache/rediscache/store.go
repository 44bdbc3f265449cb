// Package rediscache implementa o cache de relatórios sobre o Redis
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
	"github.com/Shivarajkushals/Dashboard/pkg/metrics"
)

const scanBatchSize = 500

// ErrCacheUnavailable indica que o circuit breaker está aberto
var ErrCacheUnavailable = errors.New("cache unavailable")

type Options struct {
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Store é o gateway de cache. Get, Set e Delete passam pelo circuit breaker;
// as operações administrativas acessam o Redis diretamente.
type Store struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewClient cria o cliente Redis a partir da configuração
func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func New(client *redis.Client, opts Options) *Store {
	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.L.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("cache: mudança de estado do circuit breaker")
			metrics.SetCacheBreakerOpen(to == gobreaker.StateOpen)
		},
	}

	return &Store{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Get retorna o valor armazenado. found é falso quando a chave não existe.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.breaker.Execute(func() ([]byte, error) {
		value, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return value, err
	})
	if err != nil {
		return nil, false, wrapBreakerError("get", err)
	}

	return value, value != nil, nil
}

// Set grava o valor inteiro com expiração
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := s.breaker.Execute(func() ([]byte, error) {
		return nil, s.client.Set(ctx, key, value, ttl).Err()
	})

	return wrapBreakerError("set", err)
}

// Delete remove as chaves informadas e retorna quantas existiam
func (s *Store) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	var deleted int64
	_, err := s.breaker.Execute(func() ([]byte, error) {
		var err error
		deleted, err = s.client.Del(ctx, keys...).Result()
		return nil, err
	})
	if err != nil {
		return 0, wrapBreakerError("delete", err)
	}

	return deleted, nil
}

// Keys lista as chaves que casam com o padrão glob do Redis usando SCAN
func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0)

	iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar chaves do cache: %w", err)
	}

	return keys, nil
}

// DeleteMatching remove todas as chaves que contêm o trecho informado
func (s *Store) DeleteMatching(ctx context.Context, substring string) (int64, error) {
	keys, err := s.Keys(ctx, "*"+substring+"*")
	if err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao remover chaves do cache: %w", err)
	}

	return deleted, nil
}

// Clear remove todas as entradas do banco Redis configurado
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("erro ao limpar o cache: %w", err)
	}

	return nil
}

// TTL retorna o tempo restante da chave. Valores negativos seguem a semântica do Redis.
func (s *Store) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.client.TTL(ctx, key).Result()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func wrapBreakerError(operation string, err error) error {
	if err == nil {
		return nil
	}

	metrics.RecordCacheError(operation)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s", ErrCacheUnavailable, err)
	}

	return fmt.Errorf("erro no cache (%s): %w", operation, err)
}
