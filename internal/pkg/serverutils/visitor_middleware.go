package serverutils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const VisitorLocalKey = "visitor_id"

// VisitorConfig controls the anonymous visitor cookie. The token only keys the
// visitor's selection; it grants nothing.
type VisitorConfig struct {
	Secret     []byte
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type visitorClaims struct {
	VisitorId string `json:"visitor_id"`
	jwt.RegisteredClaims
}

var errInvalidVisitor = errors.New("invalid visitor token")

func IssueVisitorToken(cfg VisitorConfig, visitorId string, now time.Time) (string, error) {
	claims := visitorClaims{
		VisitorId: visitorId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}

func ParseVisitorToken(cfg VisitorConfig, tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", errInvalidVisitor
	}

	claims := &visitorClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errInvalidVisitor
	}

	if _, err := uuid.Parse(claims.VisitorId); err != nil {
		return "", errInvalidVisitor
	}
	return claims.VisitorId, nil
}

// VisitorMiddleware makes sure every request carries a visitor id, issuing a
// fresh cookie when the current one is missing, forged or expired.
func VisitorMiddleware(cfg VisitorConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		visitorId, err := ParseVisitorToken(cfg, ctx.Cookies(cfg.CookieName))
		if err != nil {
			now := time.Now()
			visitorId = uuid.NewString()
			token, err := IssueVisitorToken(cfg, visitorId, now)
			if err != nil {
				return err
			}
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  now.Add(cfg.TTL),
				HTTPOnly: true,
				Secure:   cfg.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		ctx.Locals(VisitorLocalKey, visitorId)
		return ctx.Next()
	}
}

// VisitorId reads the id stored by VisitorMiddleware.
func VisitorId(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(VisitorLocalKey).(string)
	return id
}
