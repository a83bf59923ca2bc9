package utils

import (
	"testing"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "test-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "admin@clinic.local",
		Role:      models.RoleAdmin,
	}

	access, refresh, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty tokens")
	}

	claims, err := ValidateToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}

	refreshClaims, err := ValidateToken(refresh, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("validating refresh token: %v", err)
	}
	if refreshClaims.UserID != "user-1" {
		t.Errorf("unexpected refresh claims: %+v", refreshClaims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Role: models.RoleStaff}

	access, _, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}
	if _, err := ValidateToken(access, "wrong-secret"); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
	if _, err := ValidateToken("not-a-token", cfg.JWTSecret); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
