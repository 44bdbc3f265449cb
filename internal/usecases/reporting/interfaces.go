package reporting

import (
	"context"
	"time"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Cache é o gateway de cache chave/valor com TTL usado pelos relatórios
type Cache interface {
	// Get retorna o valor armazenado; found é falso quando a chave não existe
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set grava o valor inteiro com expiração
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Reporter define os relatórios de vendas expostos pela API
type Reporter interface {
	StoreSummary(ctx context.Context, filters domain.ReportFilters) ([]domain.StoreSummary, error)
	ShopTypeSummary(ctx context.Context, filters domain.ReportFilters) ([]domain.ShopTypeSummary, error)
	MonthOnMonth(ctx context.Context, filters domain.ReportFilters) (domain.MonthMatrix, error)

	StoreList(ctx context.Context) ([]domain.StoreItem, error)
	TranTypeList(ctx context.Context) ([]domain.TranTypeItem, error)
	ShopTypeList(ctx context.Context) ([]domain.ShopTypeItem, error)

	// RefreshLists recalcula as três listas de filtros e regrava o cache
	RefreshLists(ctx context.Context) error
}
