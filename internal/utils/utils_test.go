package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(7, "S1", models.GradeSupplier, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.MemberID)
	assert.Equal(t, "S1", claims.ClassificationCode)
	assert.Equal(t, models.GradeSupplier, claims.Grade)
	assert.Equal(t, "7", claims.Subject)

	SetJWTSecret("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(1, "C1", models.GradeClient, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	require.Error(t, err)
	assert.True(t, IsTokenExpired(err))
}

func TestValidateCodeTag(t *testing.T) {
	type req struct {
		Code string `validate:"required,code"`
	}

	assert.NoError(t, ValidateStruct(req{Code: "SUP-001_a"}))

	err := ValidateStruct(req{Code: "bad code"})
	require.Error(t, err)
	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "code", errs[0].Field)
	assert.Equal(t, "code", errs[0].Tag)
}

func TestPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{query: "", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{query: "page=3&limit=10", wantPage: 3, wantLimit: 10, wantOffset: 20},
		{query: "page=-1&limit=1000", wantPage: 1, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			p := GetPaginationParams(c)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}

	result := CreatePaginationResult([]int{1, 2}, 21, PaginationParams{Page: 1, Limit: 10})
	assert.Equal(t, 3, result.TotalPages)
}
