package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/Shivarajkushals/Dashboard/infrastructure/cache/rediscache"
)

const keySampleSize = 20

const usage = `uso: cachectl <comando> [opções]

comandos:
  stats                 estatísticas do Redis e as primeiras chaves com TTL
  clear [--pattern P]   remove as chaves que contêm P, ou todo o cache
`

// CacheAdmin são as operações administrativas do cache usadas pela CLI
type CacheAdmin interface {
	Stats(ctx context.Context, sampleSize int) (*rediscache.Stats, error)
	DeleteMatching(ctx context.Context, substring string) (int64, error)
	Clear(ctx context.Context) error
}

var errUsage = errors.New("comando inválido")

func run(ctx context.Context, args []string, out io.Writer, admin CacheAdmin) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errUsage
	}

	switch args[0] {
	case "stats":
		return printStats(ctx, out, admin)
	case "clear":
		flags := pflag.NewFlagSet("clear", pflag.ContinueOnError)
		flags.SetOutput(out)
		pattern := flags.String("pattern", "", "remove as chaves que contêm o trecho (ex.: store_)")
		if err := flags.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "erro ao ler opções de clear")
		}
		return clearCache(ctx, out, admin, *pattern)
	default:
		fmt.Fprint(out, usage)
		return errors.Wrapf(errUsage, "comando desconhecido %q", args[0])
	}
}

func printStats(ctx context.Context, out io.Writer, admin CacheAdmin) error {
	stats, err := admin.Stats(ctx, keySampleSize)
	if err != nil {
		return errors.Wrap(err, "erro ao obter estatísticas do cache")
	}

	fmt.Fprintln(out, "=== Redis Cache Statistics ===")
	fmt.Fprintf(out, "Connected clients: %d\n", stats.ConnectedClients)
	fmt.Fprintf(out, "Used memory: %s\n", stats.UsedMemoryHuman)
	fmt.Fprintf(out, "Total keys: %d\n", stats.TotalKeys)
	fmt.Fprintf(out, "Hits: %d\n", stats.Hits)
	fmt.Fprintf(out, "Misses: %d\n", stats.Misses)

	if rate, ok := stats.HitRate(); ok {
		fmt.Fprintf(out, "Hit rate: %.2f%%\n", rate)
	}

	if stats.KeyCount == 0 {
		return nil
	}

	fmt.Fprintf(out, "\n=== Cache Keys (%d) ===\n", stats.KeyCount)
	for _, key := range stats.Keys {
		fmt.Fprintf(out, "  %s (TTL: %ds)\n", key.Key, ttlSeconds(key.TTL))
	}
	if remaining := stats.KeyCount - len(stats.Keys); remaining > 0 {
		fmt.Fprintf(out, "  ... and %d more keys\n", remaining)
	}

	return nil
}

func clearCache(ctx context.Context, out io.Writer, admin CacheAdmin, pattern string) error {
	if pattern == "" {
		if err := admin.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Successfully cleared all cache")
		return nil
	}

	deleted, err := admin.DeleteMatching(ctx, pattern)
	if err != nil {
		return err
	}

	if deleted == 0 {
		fmt.Fprintf(out, "No cache keys found matching %q\n", pattern)
		return nil
	}

	fmt.Fprintf(out, "Successfully cleared %d cache keys matching %q\n", deleted, pattern)
	return nil
}

// ttlSeconds mantém -1 (sem expiração) e -2 (chave inexistente) como o Redis reporta
func ttlSeconds(ttl time.Duration) int64 {
	if ttl < 0 {
		return int64(ttl)
	}
	return int64(ttl / time.Second)
}
