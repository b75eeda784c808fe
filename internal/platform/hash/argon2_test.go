package hash_test

import (
	"strings"
	"testing"

	"github.com/hmondejar/notekit/internal/config"
	"github.com/hmondejar/notekit/internal/platform/hash"
)

func newTestHasher() *hash.Argon2Hasher {
	opts := &config.Argon2{
		Memory:     65535,
		Iterations: 3,
		Threads:    2,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(opts, "paminta")
}

func TestArgon2Hasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	plain := "rice"
	hashed, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(hashed, "$")
	wantLen, gotLen := 6, len(parts)
	if gotLen != wantLen {
		t.Errorf("\ngot: %d\nwant: %d\n", gotLen, wantLen)
	}

	wantHasher, gotHasher := "argon2id", parts[1]
	if gotHasher != wantHasher {
		t.Errorf("\ngot: %s\nwant: %s\n", gotHasher, wantHasher)
	}
}

func TestArgon2Hasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	plain := "rice"
	hashed, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := hasher.Verify(plain, hashed)
	if err != nil {
		t.Fatal(err)
	}
	if !matches {
		t.Errorf("\ngot: %v\nwant: %v\n", matches, true)
	}

	matches, err = hasher.Verify("garlic", hashed)
	if err != nil {
		t.Fatal(err)
	}
	if matches {
		t.Errorf("\ngot: %v\nwant: %v\n", matches, false)
	}
}

func TestArgon2Hasher_Verify_InvalidFormat(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	if _, err := hasher.Verify("rice", "not-a-hash"); err == nil {
		t.Error("Verify accepted a malformed hash")
	}
}

func TestArgon2Hasher_Hash_Salted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	first, err := hasher.Hash("rice")
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.Hash("rice")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ by salt")
	}
}
