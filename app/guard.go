package app

import (
	"strings"

	"github.com/km-arc/go-xmf/framework/mvc"
)

// TokenGuard authenticates requests carrying a known bearer token and
// grants the privileges listed for that token as "namespace:name".
type TokenGuard struct {
	Tokens map[string][]string
}

// NewTokenGuard builds a guard from token → "priv|priv" pairs, as found in
// the APP_TOKENS setting.
func NewTokenGuard(tokens map[string]string) *TokenGuard {
	g := &TokenGuard{Tokens: make(map[string][]string, len(tokens))}
	for token, privs := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		g.Tokens[token] = nil
		for _, p := range strings.Split(privs, "|") {
			if p = strings.TrimSpace(p); p != "" {
				g.Tokens[token] = append(g.Tokens[token], p)
			}
		}
	}
	return g
}

func (g *TokenGuard) Authenticated(ctx *mvc.Context) bool {
	token := ctx.Request.BearerToken()
	if token == "" {
		return false
	}
	_, ok := g.Tokens[token]
	return ok
}

func (g *TokenGuard) Authorized(ctx *mvc.Context, p *mvc.Privilege) bool {
	want := p.Name
	if p.Namespace != "" {
		want = p.Namespace + ":" + p.Name
	}
	for _, granted := range g.Tokens[ctx.Request.BearerToken()] {
		if granted == want {
			return true
		}
	}
	return false
}
