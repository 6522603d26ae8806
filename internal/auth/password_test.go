package auth

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("reset-token")
	b := HashToken("reset-token")
	if a != b {
		t.Fatal("same token hashed differently")
	}
	if a == HashToken("other-token") {
		t.Fatal("different tokens collided")
	}
	if a == "reset-token" {
		t.Fatal("token stored in the clear")
	}
}
