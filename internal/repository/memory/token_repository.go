package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AnonymousToken identifies a japa counter who has not registered. It lives
// only in memory; the durable japa rows are keyed by the token string, so a
// returning anonymous client keeps its history as long as the client resends
// the same token.
type AnonymousToken struct {
	Token     string
	CreatedAt time.Time
	LastSeen  time.Time
}

type TokenRepository struct {
	cache *cache.Cache
}

func NewTokenRepository() *TokenRepository {
	// Expire idle anonymous tokens after a day, purge every hour.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &TokenRepository{
		cache: c,
	}
}

// Issue mints a fresh anonymous token.
func (r *TokenRepository) Issue() *AnonymousToken {
	now := time.Now()
	t := &AnonymousToken{
		Token:     "anon-" + uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}
	r.cache.Set(t.Token, t, cache.DefaultExpiration)
	return t
}

// Touch refreshes a known token, re-registering it when it expired so a
// returning client never loses the key to its durable counts.
func (r *TokenRepository) Touch(token string) *AnonymousToken {
	if x, found := r.cache.Get(token); found {
		t := x.(*AnonymousToken)
		t.LastSeen = time.Now()
		r.cache.Set(token, t, cache.DefaultExpiration)
		return t
	}
	now := time.Now()
	t := &AnonymousToken{
		Token:     token,
		CreatedAt: now,
		LastSeen:  now,
	}
	r.cache.Set(token, t, cache.DefaultExpiration)
	return t
}

func (r *TokenRepository) Get(token string) (*AnonymousToken, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*AnonymousToken), true
	}
	return nil, false
}

func (r *TokenRepository) Delete(token string) {
	r.cache.Delete(token)
}
