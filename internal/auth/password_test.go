package auth

import "testing"

func TestPasswordRoundtrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest equals plaintext")
	}
	if !CheckPassword("correct horse battery staple", digest) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong password", digest) {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPasswordSeedPlaceholder(t *testing.T) {
	// The seeded demo employer carries this sentinel instead of a real
	// digest; it must never verify against any input.
	for _, plain := range []string{"", "password123", "seed-placeholder-hash"} {
		if CheckPassword(plain, "seed-placeholder-hash") {
			t.Fatalf("placeholder hash verified against %q", plain)
		}
	}
}
