package keeper

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// Metrics exposes Prometheus counters and gauges for pool activity.
type Metrics struct {
	PoolsCreated      prometheus.Counter
	LiquidityAdds     prometheus.Counter
	LiquidityRemovals prometheus.Counter
	Swaps             *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	PoolReserves      *prometheus.GaugeVec
	PoolShareSupply   *prometheus.GaugeVec
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

// NewMetrics returns the process-wide metrics singleton. Collectors register
// with the default registry exactly once.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			PoolsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "pools_created_total",
				Help:      "Total number of pools created",
			}),
			LiquidityAdds: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "liquidity_adds_total",
				Help:      "Total number of successful liquidity deposits",
			}),
			LiquidityRemovals: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "liquidity_removals_total",
				Help:      "Total number of successful liquidity withdrawals",
			}),
			Swaps: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "swaps_total",
				Help:      "Total number of executed swaps by direction",
			}, []string{"token_in", "token_out"}),
			SwapVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "swap_volume",
				Help:      "Cumulative swap input volume by denom",
			}, []string{"denom"}),
			PoolReserves: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "pool_reserves",
				Help:      "Current pool reserves by pool and denom",
			}, []string{"pool_id", "denom"}),
			PoolShareSupply: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: "basin",
				Subsystem: types.ModuleName,
				Name:      "pool_share_supply",
				Help:      "Outstanding ownership shares by pool",
			}, []string{"pool_id"}),
		}
	})
	return metricsInstance
}

// observePool updates the per-pool gauges after a state change.
func (k Keeper) observePool(pool types.Pool) {
	if k.metrics == nil {
		return
	}
	id := fmt.Sprintf("%d", pool.Id)
	if pool.ReserveA.IsInt64() {
		k.metrics.PoolReserves.WithLabelValues(id, pool.TokenA).Set(float64(pool.ReserveA.Int64()))
	}
	if pool.ReserveB.IsInt64() {
		k.metrics.PoolReserves.WithLabelValues(id, pool.TokenB).Set(float64(pool.ReserveB.Int64()))
	}
	if pool.TotalShares.IsInt64() {
		k.metrics.PoolShareSupply.WithLabelValues(id).Set(float64(pool.TotalShares.Int64()))
	}
}
