// Package auth gives anonymous shoppers a stable identity.
//
// A shopper never signs in: the first request gets a random shopper ID that
// lives in a session. Session keys should be 32 or 64 bytes for HMAC and 16,
// 24 or 32 bytes for AES. Generate production keys with:
//
//	openssl rand -hex 16
package auth

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/gob"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

// SessionLifetime is how long an idle shopper keeps their ID, and with it
// their saved shopping list.
const SessionLifetime = 30 * 24 * time.Hour

const sessionKeyPrefix = "budgeteer:session:"

// SessionKey returns the Redis key holding session id.
func SessionKey(id string) string { return sessionKeyPrefix + id }

func sessionOptions(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   int(SessionLifetime / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewCookieSessionStore keeps the whole session in the signed and encrypted
// cookie. The API uses it when Redis is not configured.
func NewCookieSessionStore(authKey, encryptionKey []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(authKey, encryptionKey)
	store.Options = sessionOptions(secure)
	return store
}

// RedisStore is a sessions.Store that keeps session values in Redis. The
// cookie only carries the encrypted session ID. Every read pushes the key's
// expiry out by the session MaxAge, so active shoppers never lose their list.
type RedisStore struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewSessionStore returns a Redis-backed store. secure marks the cookie
// HTTPS-only and should be set in production.
func NewSessionStore(client *redis.Client, authKey, encryptionKey []byte, secure bool) *RedisStore {
	return &RedisStore{
		client:  client,
		codecs:  securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: sessionOptions(secure),
	}
}

// Get returns the request's cached session, creating it on first use.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. Missing, tampered or
// expired sessions come back as a fresh session and no error.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}
	if err := s.load(r.Context(), id, session); err != nil {
		return session, nil
	}
	session.ID = id
	session.IsNew = false
	return session, nil
}

// Save writes the session values to Redis and sets the cookie. A negative
// MaxAge deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), SessionKey(session.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.client.Set(r.Context(), SessionKey(session.ID), buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string, session *sessions.Session) error {
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	data, err := s.client.GetEx(ctx, SessionKey(id), ttl).Bytes()
	if err != nil {
		return err
	}
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&session.Values)
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
