package auth

import "testing"

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Issuer:         "thybackend",
		AccessSecret:   "access-secret",
		RefreshSecret:  "refresh-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	tok, exp, err := m.SignAccess(42, "admin")
	if err != nil {
		t.Fatal(err)
	}
	if exp.IsZero() {
		t.Fatal("expiry not set")
	}

	claims, err := m.ParseAccess(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	m := testManager()

	tok, _, err := m.SignRefresh(42, "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ParseAccess(tok); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
	if _, err := m.ParseRefresh(tok); err != nil {
		t.Fatalf("refresh token rejected by its own parser: %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := testManager()
	if _, err := m.ParseAccess("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
