package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/SscSPs/finances_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finances_app/internal/core/ports/repositories"
	"github.com/SscSPs/finances_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "account:"

// CachedAccountRepository serves FindAccountByID from redis and delegates
// everything else to the wrapped repository. Writes evict the cached entry.
// Redis failures are logged and never surface to the caller.
type CachedAccountRepository struct {
	next   portsrepo.AccountRepositoryFacade
	client *redis.Client
	ttl    time.Duration
}

var _ portsrepo.AccountRepositoryFacade = (*CachedAccountRepository)(nil)

// NewCachedAccountRepository wraps next with a read-through cache.
func NewCachedAccountRepository(next portsrepo.AccountRepositoryFacade, client *redis.Client, ttl time.Duration) *CachedAccountRepository {
	return &CachedAccountRepository{next: next, client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func accountKey(id uuid.UUID) string {
	return accountKeyPrefix + id.String()
}

func (r *CachedAccountRepository) FindAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	key := accountKey(accountID)

	val, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var account domain.Account
		if err := json.Unmarshal(val, &account); err == nil {
			logger.Debug("Account cache hit", "key", key)
			return &account, nil
		}
		logger.Warn("Dropping undecodable cached account", "key", key)
		r.evict(ctx, accountID)
	case errors.Is(err, redis.Nil):
		logger.Debug("Account cache miss", "key", key)
	default:
		logger.Error("Account cache get error", "key", key, "error", err)
	}

	account, err := r.next.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(account)
	if err != nil {
		logger.Error("Account cache marshal error", "key", key, "error", err)
		return account, nil
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logger.Error("Account cache set error", "key", key, "error", err)
	}
	return account, nil
}

func (r *CachedAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.next.ListAccounts(ctx)
}

func (r *CachedAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.next.ListActiveAccounts(ctx)
}

func (r *CachedAccountRepository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	return r.next.ListAccountsByType(ctx, accountType)
}

func (r *CachedAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (bool, error) {
	return r.next.CreateAccount(ctx, account)
}

// UpdateAccount evicts on both sides of the write so a read that lands
// between eviction and commit cannot leave the old row cached.
func (r *CachedAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (bool, error) {
	r.evict(ctx, account.ID)
	defer r.evict(ctx, account.ID)
	return r.next.UpdateAccount(ctx, account)
}

func (r *CachedAccountRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	r.evict(ctx, accountID)
	defer r.evict(ctx, accountID)
	return r.next.DeleteAccount(ctx, accountID)
}

func (r *CachedAccountRepository) evict(ctx context.Context, accountID uuid.UUID) {
	if err := r.client.Del(ctx, accountKey(accountID)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Account cache delete error", "key", accountKey(accountID), "error", err)
	}
}
