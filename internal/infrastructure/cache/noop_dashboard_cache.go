package cache

import (
	"context"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
)

type noopDashboardCache struct{}

// NewNoopDashboardCache returns a DashboardCache that never holds anything.
func NewNoopDashboardCache() engagement.DashboardCache {
	return noopDashboardCache{}
}

func (noopDashboardCache) Get(context.Context) (*engagement.Dashboard, error) {
	return nil, engagement.ErrCacheMiss
}

func (noopDashboardCache) Set(context.Context, *engagement.Dashboard, time.Duration) error {
	return nil
}

func (noopDashboardCache) Invalidate(context.Context) error {
	return nil
}
