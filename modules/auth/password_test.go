package auth

import (
	"testing"
)

func TestPasswordHasher_Hash(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "password123",
		},
		{
			name:     "complex password",
			password: "P@ssw0rd!#$%^&*()",
		},
		{
			name:     "unicode password",
			password: "contraseña123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			if digest == "" {
				t.Error("Hash() returned empty string")
			}
			if digest == tt.password {
				t.Error("Hash() returned the original password")
			}

			if !hasher.Verify(tt.password, digest) {
				t.Error("Verify() returned false for correct password")
			}
		})
	}
}

func TestPasswordHasher_Verify(t *testing.T) {
	hasher := NewPasswordHasher()
	password := "testpassword123"

	digest, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{
			name:     "correct password",
			password: password,
			digest:   digest,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			digest:   digest,
			want:     false,
		},
		{
			name:     "empty password",
			password: "",
			digest:   digest,
			want:     false,
		},
		{
			name:     "malformed digest",
			password: password,
			digest:   "not-a-bcrypt-digest",
			want:     false,
		},
		{
			name:     "empty digest",
			password: password,
			digest:   "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasher.Verify(tt.password, tt.digest)
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordHasher_UniqueDigests(t *testing.T) {
	hasher := NewPasswordHasher()
	password := "samepassword"

	digest1, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	digest2, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// The embedded salt makes every digest unique
	if digest1 == digest2 {
		t.Error("Hash() produced identical digests for the same password")
	}

	if !hasher.Verify(password, digest1) {
		t.Error("Verify() failed for digest1")
	}
	if !hasher.Verify(password, digest2) {
		t.Error("Verify() failed for digest2")
	}
}
