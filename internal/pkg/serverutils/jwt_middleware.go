package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"notevault-be/internal/repository/memory"
)

// NewJwtMiddleware authenticates bearer tokens. The signature must verify
// and the token's jti must still map to a live session: a logged-out token
// carries a valid signature but no session, so it is rejected here.
func NewJwtMiddleware(secret string, sessions *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		tokenId, _ := claims["jti"].(string)
		if _, found := sessions.Get(tokenId); !found {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session expired"})
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("token_id", tokenId)
		return ctx.Next()
	}
}
