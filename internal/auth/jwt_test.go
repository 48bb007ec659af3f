package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	if err := CarregarSegredo(); err != nil {
		t.Fatalf("CarregarSegredo: %v", err)
	}

	token, err := GerarToken("user-123")
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("ValidarToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID: esperado user-123, veio %q", claims.UserID)
	}
}

func TestValidarTokenExpirado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	if err := CarregarSegredo(); err != nil {
		t.Fatalf("CarregarSegredo: %v", err)
	}

	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	vencido, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("assinar token: %v", err)
	}

	if _, err := ValidarToken(vencido); err == nil {
		t.Fatal("token vencido deveria ser recusado")
	}
}

func TestCarregarSegredoAusente(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if err := CarregarSegredo(); err == nil {
		t.Fatal("segredo ausente deveria falhar")
	}
}
