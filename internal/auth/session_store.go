package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "calisthenix-session||"
	tokensSetKey     = "calisthenix-sessions"
	tokenSize        = 35
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps login sessions in redis. Each session key holds
// "<created-at-unix>|<user-id>"; all tokens are also tracked in a set so
// expired ones can be swept.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// injectable for tests
	RandStringFunc func(s int) (string, error)
	nowFunc        func() time.Time
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		nowFunc:        time.Now,
	}
}

func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

func sessionValue(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%d|%s", createdAt.Unix(), userID)
}

func parseSessionValue(val string) (userID string, createdAt time.Time, err error) {
	createdAtStr, userID, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, fmt.Errorf("malformed session value: %q", val)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed session timestamp: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}

func (s *SessionStore) Create(ctx context.Context, userID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	token, err := s.RandStringFunc(tokenSize)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, sessionValue(userID, s.nowFunc()), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("track session token: %w", err)
	}

	return token, nil
}

// Resolve returns the user id owning the session token.
func (s *SessionStore) Resolve(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.resolve")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	userID, createdAt, err := parseSessionValue(val)
	if err != nil {
		return "", err
	}
	if s.nowFunc().Sub(createdAt) > s.ttl {
		return "", ErrSessionNotFound
	}

	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("untrack session token: %w", err)
	}
	return nil
}

// ScanAndClean runs through all tracked sessions and removes the ones
// that are expired or already gone. Returns the number of removed tokens.
func (s *SessionStore) ScanAndClean(ctx context.Context) int {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("sessions scan and clean, get tokens: %s", err)
		return 0
	}
	if len(sessionTokens) == 0 {
		log.Debugln("sessions scan and clean, no sessions")
		return 0
	}

	log.Debugf("sessions scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// expired by redis already, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("sessions scan and clean, get token: %s", err)
			continue
		}

		_, createdAt, err := parseSessionValue(val)
		if err != nil || s.nowFunc().Sub(createdAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := s.Delete(ctx, token); err != nil {
			log.Errorf("sessions scan and clean, remove token: %s", err)
			continue
		}
		removed++
	}
	log.Debugf("sessions scan and clean done, removed %d", removed)

	return removed
}
