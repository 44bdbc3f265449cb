package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Shivarajkushals/Dashboard/infrastructure/repository"
	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/internal/domain"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
	"github.com/Shivarajkushals/Dashboard/pkg/metrics"
)

var _ Reporter = (*Service)(nil)

type Service struct {
	repository repository.SalesReportRepository
	cache      Cache
	summaryTTL time.Duration
	listTTL    time.Duration
}

// NewService cria o serviço de relatórios. cache pode ser nil, nesse caso todo pedido é calculado.
func NewService(repo repository.SalesReportRepository, cache Cache, cfg config.Cache) *Service {
	return &Service{
		repository: repo,
		cache:      cache,
		summaryTTL: cfg.SummaryTTL,
		listTTL:    cfg.ListTTL,
	}
}

func (s *Service) StoreSummary(ctx context.Context, filters domain.ReportFilters) ([]domain.StoreSummary, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	key := CacheKey(EndpointStoreSummary, filters)
	return remember(ctx, s, EndpointStoreSummary, key, s.summaryTTL, func(ctx context.Context) ([]domain.StoreSummary, error) {
		start := time.Now()

		rows, err := s.repository.StoreSalesRows(ctx, filters)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar vendas por loja")
		}

		summaries := ReduceStoreSummaries(rows, filters.CurrentWindow())

		log.ForContext(ctx).WithFields(log.Fields{
			"rows":     len(rows),
			"stores":   len(summaries),
			"duration": time.Since(start).String(),
		}).Info("Resumo por loja calculado")

		return summaries, nil
	})
}

func (s *Service) ShopTypeSummary(ctx context.Context, filters domain.ReportFilters) ([]domain.ShopTypeSummary, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	key := CacheKey(EndpointShopTypeSummary, filters)
	return remember(ctx, s, EndpointShopTypeSummary, key, s.summaryTTL, func(ctx context.Context) ([]domain.ShopTypeSummary, error) {
		start := time.Now()

		rows, err := s.repository.ShopTypeSalesRows(ctx, filters)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar vendas por tipo de loja")
		}

		summaries := ReduceShopTypeSummaries(rows, filters.CurrentWindow())

		log.ForContext(ctx).WithFields(log.Fields{
			"rows":       len(rows),
			"shop_types": len(summaries),
			"duration":   time.Since(start).String(),
		}).Info("Resumo por tipo de loja calculado")

		return summaries, nil
	})
}

func (s *Service) MonthOnMonth(ctx context.Context, filters domain.ReportFilters) (domain.MonthMatrix, error) {
	if err := ValidateFilters(filters); err != nil {
		return domain.MonthMatrix{}, err
	}

	key := CacheKey(EndpointMonthOnMonth, filters)
	return remember(ctx, s, EndpointMonthOnMonth, key, s.summaryTTL, func(ctx context.Context) (domain.MonthMatrix, error) {
		start := time.Now()

		rows, err := s.repository.MonthSalesRows(ctx, filters)
		if err != nil {
			return domain.MonthMatrix{}, errors.Wrap(err, "erro ao buscar vendas mensais")
		}

		matrix := BuildMonthMatrix(rows)

		log.ForContext(ctx).WithFields(log.Fields{
			"rows":     len(rows),
			"months":   len(matrix.Months),
			"stores":   len(matrix.Stores),
			"duration": time.Since(start).String(),
		}).Info("Relatório mês a mês calculado")

		return matrix, nil
	})
}

func (s *Service) StoreList(ctx context.Context) ([]domain.StoreItem, error) {
	return remember(ctx, s, KeyStoreList, KeyStoreList, s.listTTL, s.loadStoreList)
}

func (s *Service) TranTypeList(ctx context.Context) ([]domain.TranTypeItem, error) {
	return remember(ctx, s, KeyTranTypeList, KeyTranTypeList, s.listTTL, s.loadTranTypeList)
}

func (s *Service) ShopTypeList(ctx context.Context) ([]domain.ShopTypeItem, error) {
	return remember(ctx, s, KeyShopTypeList, KeyShopTypeList, s.listTTL, s.loadShopTypeList)
}

// RefreshLists consulta as três listas e sobrescreve o cache, ignorando o valor armazenado
func (s *Service) RefreshLists(ctx context.Context) error {
	if err := refresh(ctx, s, KeyStoreList, s.listTTL, s.loadStoreList); err != nil {
		return err
	}
	if err := refresh(ctx, s, KeyTranTypeList, s.listTTL, s.loadTranTypeList); err != nil {
		return err
	}
	return refresh(ctx, s, KeyShopTypeList, s.listTTL, s.loadShopTypeList)
}

func (s *Service) loadStoreList(ctx context.Context) ([]domain.StoreItem, error) {
	values, err := s.repository.DistinctStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lista de lojas")
	}
	return storeItems(values), nil
}

func (s *Service) loadTranTypeList(ctx context.Context) ([]domain.TranTypeItem, error) {
	values, err := s.repository.DistinctTranTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tipos de transação")
	}
	return tranTypeItems(values), nil
}

func (s *Service) loadShopTypeList(ctx context.Context) ([]domain.ShopTypeItem, error) {
	values, err := s.repository.DistinctShopTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tipos de loja")
	}
	return shopTypeItems(values), nil
}

// remember devolve o valor do cache quando existir; caso contrário calcula e grava.
// Falhas do cache são registradas e o pedido segue direto para o banco.
func remember[T any](ctx context.Context, s *Service, endpoint, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"endpoint":  endpoint,
		"cache_key": key,
	})

	if s.cache != nil {
		raw, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.RecordCacheError("get")
			logger.WithError(err).Warn("Falha ao ler do cache, calculando relatório")
		case found:
			var cached T
			decodeErr := json.Unmarshal(raw, &cached)
			if decodeErr == nil {
				metrics.RecordCacheLookup(endpoint, true)
				logger.Debug("Relatório servido do cache")
				return cached, nil
			}
			metrics.RecordCacheError("decode")
			logger.WithError(decodeErr).Warn("Valor inválido no cache, recalculando")
		}
	}

	metrics.RecordCacheLookup(endpoint, false)

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	s.store(ctx, logger, key, value, ttl)

	return value, nil
}

func refresh[T any](ctx context.Context, s *Service, key string, ttl time.Duration, compute func(context.Context) (T, error)) error {
	value, err := compute(ctx)
	if err != nil {
		return err
	}

	s.store(ctx, log.ForContext(ctx).WithField("cache_key", key), key, value, ttl)
	return nil
}

func (s *Service) store(ctx context.Context, logger log.Logger, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		metrics.RecordCacheError("encode")
		logger.WithError(err).Warn("Falha ao serializar relatório para o cache")
		return
	}

	if err := s.cache.Set(ctx, key, raw, ttl); err != nil {
		metrics.RecordCacheError("set")
		logger.WithError(err).Warn("Falha ao gravar relatório no cache")
	}
}
