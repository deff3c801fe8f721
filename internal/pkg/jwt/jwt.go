package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

// Claims is what an access token carries about its user.
type Claims struct {
	UserID   string
	Username string
	IsStaff  bool
}

type Service interface {
	GenerateAccessToken(userID string, username string, isStaff bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID string, username string, isStaff bool) (token string, expiresAt int64, err error) {
	now := j.now()
	expiresAt = now.Add(j.accessTokenExpiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"is_staff": isStaff,
		"type":     tokenTypeAccess,
		"iat":      now.Unix(),
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

// ClaimsFromContext reads the access token claims placed in ctx by jwtauth.Verifier.
// ok is false when the token is missing or is not an access token.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return Claims{}, false
	}

	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return Claims{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, false
	}
	username, _ := claims["username"].(string)
	isStaff, _ := claims["is_staff"].(bool)

	return Claims{UserID: userID, Username: username, IsStaff: isStaff}, true
}
