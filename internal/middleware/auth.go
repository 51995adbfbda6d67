// internal/middleware/auth.go
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/i18n"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

// MemberChecker reports whether a token's member may still act.
type MemberChecker interface {
	IsActive(ctx context.Context, memberID uint) (bool, error)
}

// AuthRequired validates the bearer token and stores the member claims in the
// context. With a checker, tokens of withdrawn members are refused.
func AuthRequired(checker MemberChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			key := i18n.KeyAuthInvalidToken
			if utils.IsTokenExpired(err) {
				key = i18n.KeyAuthTokenExpired
			}
			utils.UnauthorizedResponse(c, i18n.T(lang, key))
			c.Abort()
			return
		}

		if checker != nil {
			active, err := checker.IsActive(c.Request.Context(), claims.MemberID)
			if err != nil {
				logrus.WithError(err).WithField("member_id", claims.MemberID).Error("Failed to check member")
				utils.InternalErrorResponse(c, "")
				c.Abort()
				return
			}
			if !active {
				utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyMemberWithdrawn))
				c.Abort()
				return
			}
		}

		// Set member info in context
		c.Set("member_id", claims.MemberID)
		c.Set("classification_code", claims.ClassificationCode)
		c.Set("grade", claims.Grade)
		c.Next()
	}
}

// GradeRequired lets through members of the given grades only. It must run after
// AuthRequired.
func GradeRequired(grades ...models.Grade) gin.HandlerFunc {
	return func(c *gin.Context) {
		grade, exists := utils.GetGradeFromContext(c)
		if exists {
			for _, allowed := range grades {
				if grade == allowed {
					c.Next()
					return
				}
			}
		}

		utils.ForbiddenResponse(c, "")
		c.Abort()
	}
}

func SupplierRequired() gin.HandlerFunc {
	return GradeRequired(models.GradeSupplier)
}

func ClientRequired() gin.HandlerFunc {
	return GradeRequired(models.GradeClient)
}

func AdminRequired() gin.HandlerFunc {
	return GradeRequired(models.GradeAdmin)
}
