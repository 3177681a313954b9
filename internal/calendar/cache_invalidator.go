package calendar

import (
	"context"
	"errors"

	"go-care/internal/events"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const scanBatch = 100

// CacheInvalidator bumps the company's cache generation and drops every
// cached calendar view when its leave data changes, then rebuilds the organization calendar of the
// affected branch. Stats refill on the next read.
type CacheInvalidator struct {
	rdb      *redis.Client
	calendar Service
	logger   *zap.Logger
}

func NewCacheInvalidator(rdb *redis.Client, calendar Service, logger ...*zap.Logger) *CacheInvalidator {
	l := zap.L().Named("calendar.invalidator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.invalidator")
	}
	return &CacheInvalidator{rdb: rdb, calendar: calendar, logger: l}
}

// Handle matches events.LeaveMutatedHandler.
func (i *CacheInvalidator) Handle(ctx context.Context, event events.LeaveMutatedEvent) error {
	// fills that started before this point must not store their view
	if err := i.rdb.Incr(ctx, GenerationKey(event.CompanyID)).Err(); err != nil {
		return err
	}

	removed := 0
	for _, prefix := range []string{OrgKeyPrefix, StatsKeyPrefix} {
		n, err := i.deleteMatching(ctx, prefix+event.CompanyID+":*")
		if err != nil {
			return err
		}
		removed += n
	}
	i.logger.Debug("calendar cache invalidated",
		zap.String("company_id", event.CompanyID),
		zap.String("source", event.Source),
		zap.String("operation", event.Operation),
		zap.Int("keys", removed),
	)

	if event.BranchID == nil {
		return nil
	}

	var errs []error
	for _, year := range event.Years() {
		if err := i.calendar.Refresh(ctx, event.CompanyID, *event.BranchID, year); err != nil {
			i.logger.Warn("calendar refresh failed",
				zap.String("company_id", event.CompanyID),
				zap.String("branch_id", *event.BranchID),
				zap.Int("year", year),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (i *CacheInvalidator) deleteMatching(ctx context.Context, pattern string) (int, error) {
	var cursor uint64
	total := 0
	for {
		keys, next, err := i.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return total, err
		}
		if len(keys) > 0 {
			if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
				return total, err
			}
			total += len(keys)
		}
		cursor = next
		if cursor == 0 {
			return total, nil
		}
	}
}
