package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid access token")

// Resolver превращает bearer-токен в Identity.
// Ядро заказа токены не разбирает, ему передаётся уже разрешённая личность.
type Resolver struct {
	secret []byte
}

func NewResolver(secret string) *Resolver {
	return &Resolver{secret: []byte(secret)}
}

func (r *Resolver) Resolve(token string) (entities.Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, ErrInvalidToken
	}

	id, _ := claims["_id"].(string)
	if id == "" {
		return entities.Identity{}, ErrInvalidToken
	}

	role := entities.RoleCustomer
	if raw, _ := claims["role"].(string); raw == string(entities.RoleAdmin) {
		role = entities.RoleAdmin
	}

	return entities.Identity{ID: id, Role: role}, nil
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entities.Identity)
	return id, ok
}
