// internal/httpserver/session.go
//
// Session cookie handling.
// The cookie carries an HS256 JWT whose "sid" claim is the stored session ID,
// so a client cannot pick another player's session by guessing IDs.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoSession = errors.New("no session")

// signSession creates a token for sid, valid for the configured TTL.
func (s *Server) signSession(sid string) (string, time.Time, error) {
	now := s.clock.Now()
	exp := now.Add(s.cfg.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.SessionSecret))
	return ss, exp, err
}

// sessionID extracts and verifies the session ID from the request.
func (s *Server) sessionID(r *http.Request) (string, error) {
	tok := bearerOrCookie(r, s.cfg.CookieName)
	if tok == "" {
		return "", errNoSession
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !t.Valid {
		return "", errNoSession
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errNoSession
	}
	return sid, nil
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, sid string) error {
	tok, exp, err := s.signSession(sid)
	if err != nil {
		return err
	}
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  exp,
	})
	return nil
}

// bearerOrCookie extracts a bearer token from the Authorization header or the session cookie.
func bearerOrCookie(r *http.Request, cookie string) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}
