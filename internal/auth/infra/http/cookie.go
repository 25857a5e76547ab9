package http

import (
	"strconv"
	"strings"
)

const (
	sessionCookieName   = "token"
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

type SessionCookies struct {
	secure bool
}

// NewSessionCookies builds cookies with the Secure attribute when secure is set, that is in production.
func NewSessionCookies(secure bool) SessionCookies {
	return SessionCookies{secure: secure}
}

func (c SessionCookies) BuildSessionCookie(token string) string {
	cookie := sessionCookieName + "=" + token + "; HttpOnly; SameSite=Strict; Path=/; Max-Age=" + strconv.Itoa(sessionCookieMaxAge)
	if c.secure {
		cookie += "; Secure"
	}
	return cookie
}

func (c SessionCookies) BuildExpiredCookie() string {
	return sessionCookieName + "=; HttpOnly; Path=/; Max-Age=0; SameSite=Strict"
}

// ExtractToken finds the session token in a Cookie header value.
// Entries with an empty value are skipped, the first non-empty token wins.
func ExtractToken(cookieHeader string, present bool) (string, bool) {
	if !present {
		return "", false
	}

	for _, entry := range strings.Split(cookieHeader, ";") {
		name, value, _ := strings.Cut(strings.TrimSpace(entry), "=")
		if name != sessionCookieName || value == "" {
			continue
		}
		return value, true
	}

	return "", false
}
