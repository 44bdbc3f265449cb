package rediscache

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Stats resume o estado do servidor de cache
type Stats struct {
	ConnectedClients int64
	UsedMemoryHuman  string
	TotalKeys        int64
	Hits             int64
	Misses           int64
	Keys             []KeyTTL
	KeyCount         int
}

type KeyTTL struct {
	Key string
	TTL time.Duration
}

// HitRate retorna a taxa de acerto em porcentagem. ok é falso sem nenhuma leitura registrada.
func (s Stats) HitRate() (rate float64, ok bool) {
	total := s.Hits + s.Misses
	if total <= 0 {
		return 0, false
	}

	return float64(s.Hits) / float64(total) * 100, true
}

// Stats coleta INFO, DBSIZE e o TTL das primeiras sampleSize chaves
func (s *Store) Stats(ctx context.Context, sampleSize int) (*Stats, error) {
	raw, err := s.client.Info(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter INFO do cache: %w", err)
	}

	info := parseInfo(raw)

	dbSize, err := s.client.DBSize(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter DBSIZE do cache: %w", err)
	}

	keys, err := s.Keys(ctx, "*")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	stats := &Stats{
		ConnectedClients: infoInt(info, "connected_clients"),
		UsedMemoryHuman:  infoString(info, "used_memory_human", "N/A"),
		TotalKeys:        dbSize,
		Hits:             infoInt(info, "keyspace_hits"),
		Misses:           infoInt(info, "keyspace_misses"),
		KeyCount:         len(keys),
	}

	if sampleSize > len(keys) || sampleSize < 0 {
		sampleSize = len(keys)
	}

	for _, key := range keys[:sampleSize] {
		ttl, err := s.TTL(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("erro ao obter TTL de %s: %w", key, err)
		}
		stats.Keys = append(stats.Keys, KeyTTL{Key: key, TTL: ttl})
	}

	return stats, nil
}

// parseInfo converte a resposta textual do comando INFO em um mapa
func parseInfo(raw string) map[string]string {
	info := make(map[string]string)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		info[key] = value
	}

	return info
}

func infoInt(info map[string]string, key string) int64 {
	value, err := strconv.ParseInt(info[key], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func infoString(info map[string]string, key, fallback string) string {
	if value, ok := info[key]; ok && value != "" {
		return value
	}
	return fallback
}
