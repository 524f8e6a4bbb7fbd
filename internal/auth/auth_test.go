package auth_test

import (
	"testing"
	"time"

	"github.com/hasanbut17314/kaspas-backend/internal/auth"
	"github.com/hasanbut17314/kaspas-backend/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestResolver_Resolve(t *testing.T) {
	resolver := auth.NewResolver(secret)

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		want    entities.Identity
		wantErr bool
	}{
		{
			name: "customer token",
			token: func(t *testing.T) string {
				return signToken(t, secret, jwt.MapClaims{"_id": "user-1", "role": "customer"})
			},
			want: entities.Identity{ID: "user-1", Role: entities.RoleCustomer},
		},
		{
			name: "admin token",
			token: func(t *testing.T) string {
				return signToken(t, secret, jwt.MapClaims{"_id": "admin-1", "role": "admin"})
			},
			want: entities.Identity{ID: "admin-1", Role: entities.RoleAdmin},
		},
		{
			name: "unknown role defaults to customer",
			token: func(t *testing.T) string {
				return signToken(t, secret, jwt.MapClaims{"_id": "user-1", "role": "superuser"})
			},
			want: entities.Identity{ID: "user-1", Role: entities.RoleCustomer},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, "other-secret", jwt.MapClaims{"_id": "user-1"})
			},
			wantErr: true,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signToken(t, secret, jwt.MapClaims{
					"_id": "user-1",
					"exp": time.Now().Add(-time.Hour).Unix(),
				})
			},
			wantErr: true,
		},
		{
			name: "missing subject claim",
			token: func(t *testing.T) string {
				return signToken(t, secret, jwt.MapClaims{"role": "customer"})
			},
			wantErr: true,
		},
		{
			name:    "garbage token",
			token:   func(t *testing.T) string { return "not.a.token" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := resolver.Resolve(tc.token(t))

			if tc.wantErr {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, identity)
		})
	}
}
