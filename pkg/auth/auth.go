package auth

import (
	"context"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"droscher.com/BreweryTracker/configs"
)

type PrincipalKey struct{}

// Principal is the caller identified by a bearer token. Rater is set when the
// token carries a "rater" claim naming one of the configured raters.
type Principal struct {
	Subject string
	Email   string
	Rater   string
}

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// Enabled reports whether requests must carry a token. Auth is off without a secret key.
func (a *Manager) Enabled() bool {
	return len(a.conf.SecretKey) > 0
}

func (a *Manager) GrpcAuthInterceptor() connect_go.UnaryInterceptorFunc {
	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			if !a.Enabled() {
				return next(ctx, req)
			}

			accessToken, err := a.extractTokenFromHeader(req.Header())
			if err != nil {
				return nil, err
			}

			principal, err := a.Authenticate(accessToken)
			if err != nil {
				return nil, err
			}

			ctx = context.WithValue(ctx, PrincipalKey{}, principal)

			return next(ctx, req)
		}
	}
}

// Authenticate validates a signed token and returns who it was issued to.
func (a *Manager) Authenticate(accessToken string) (*Principal, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, status.Errorf(codes.Unauthenticated, "unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, unauthenticated("error parsing token: %v", err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, unauthenticated("invalid token")
	}

	if len(a.conf.Audience) > 0 && !claims.VerifyAudience(a.conf.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("aud", claims["aud"]))

		return nil, unauthenticated("invalid token audience")
	}

	if len(a.conf.Domain) > 0 && !claims.VerifyIssuer(a.conf.Domain, true) {
		a.logger.Error("token issuer mismatch", zap.Any("iss", claims["iss"]))

		return nil, unauthenticated("invalid token issuer")
	}

	principal := &Principal{}
	principal.Subject, _ = claims["sub"].(string)
	principal.Email, _ = claims["email"].(string)
	principal.Rater, _ = claims["rater"].(string)

	if len(principal.Subject) == 0 && len(principal.Email) == 0 {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, unauthenticated("unable to get user id from token")
	}

	return principal, nil
}

// FromContext returns the authenticated caller, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey{}).(*Principal)

	return principal, ok
}

func (a *Manager) extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return "", unauthenticated("authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", unauthenticated("authorization format must be Bearer {token}")
	}

	return token, nil
}

func unauthenticated(format string, args ...any) error {
	return connect_go.NewError(connect_go.CodeUnauthenticated, status.Errorf(codes.Unauthenticated, format, args...))
}
