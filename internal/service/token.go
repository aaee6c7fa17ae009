package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

type (
	AccessToken struct {
		AccessToken string `json:"access_token"`
	}

	// Identity is the caller resolved from a verified access token.
	Identity struct {
		UserID uint64
		Email  string
	}

	Claims struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	TokenIssuer interface {
		Issue(user *db.User) (*AccessToken, error)
		Verify(token string) (*Identity, error)
	}

	JWTIssuer struct {
		secret []byte
		ttl    time.Duration
		now    func() time.Time
	}
)

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func NewJWTIssuerFromConfig(cfg *config.Config) *JWTIssuer {
	return NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
}

func (i *JWTIssuer) Issue(user *db.User) (*AccessToken, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.New().String(),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &AccessToken{AccessToken: signed}, nil
}

func (i *JWTIssuer) Verify(token string) (*Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrUnauthorized, err.Error())
	}
	if !parsed.Valid {
		return nil, ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(ErrUnauthorized, "invalid subject")
	}

	return &Identity{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
