package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AdminJWT carries the claims for operator endpoints (signal ingest,
// manual scoring passes, digest sends). Tokens are minted out of band
// and signed with the shared admin secret.
type AdminJWT struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
	Subject   string `json:"sub"`
}

func parseAdminJWT(jwtStr string, decodeToken string) (*AdminJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("Failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("Error marshalling claims: %w", err)
	}

	var parsedJWT AdminJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("Error unmarshalling into JWT struct: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing Authorization header"), c, 401)
		return
	}

	jwtStr := strings.TrimPrefix(header, "Bearer ")
	parsed, err := parseAdminJWT(jwtStr, m.AdminJwtSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	if parsed.Role != "admin" {
		returnErrorJsonCode(fmt.Errorf("insufficient permissions"), c, 403)
		return
	}

	c.Set("adminEmail", parsed.Email)
	c.Next()
}
