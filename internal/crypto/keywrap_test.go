package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// RFC 3394 §4.6: wrap of 256 bits of key data with a 256-bit KEK.
func TestWrapKey_RFC3394Vector(t *testing.T) {
	svc := testVault(t)

	kek := make([]byte, 32)
	for i := range kek {
		kek[i] = byte(i)
	}
	key, _ := hex.DecodeString("00112233445566778899aabbccddeeff000102030405060708090a0b0c0d0e0f")

	wrapped, err := svc.WrapKey(key, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	want := "28c9f404c4b810f4cbccb35cfb87f8263f5786e2d80ed326cbc7f0e71a99f43bfb988b9b7a02dd21"
	if got := hex.EncodeToString(wrapped); got != want {
		t.Fatalf("WrapKey = %s, want %s", got, want)
	}
}

func TestWrapKey_OutputLengthAndDeterminism(t *testing.T) {
	svc := testVault(t)

	key := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	w1, err := svc.WrapKey(key, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	w2, err := svc.WrapKey(key, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	if len(w1) != len(key)+8 {
		t.Fatalf("wrapped length = %d, want %d", len(w1), len(key)+8)
	}
	if !bytes.Equal(w1, w2) {
		t.Fatalf("expected wrap to be deterministic")
	}
}

func TestUnwrapKey_RoundTrip(t *testing.T) {
	svc := testVault(t)

	key, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	kek, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	wrapped, err := svc.WrapKey(key, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	unwrapped, err := svc.UnwrapKey(wrapped, kek)
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}

	if !bytes.Equal(unwrapped, key) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestUnwrapKey_WrongWrappingKey(t *testing.T) {
	svc := testVault(t)

	key := bytes.Repeat([]byte{0xDD}, 32)
	kekA := bytes.Repeat([]byte{0x01}, 32)
	kekB := bytes.Repeat([]byte{0x02}, 32)

	wrapped, err := svc.WrapKey(key, kekA)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	if _, err = svc.UnwrapKey(wrapped, kekB); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("UnwrapKey error = %v, want ErrIntegrity", err)
	}
}

func TestUnwrapKey_CorruptedBlob(t *testing.T) {
	svc := testVault(t)

	key := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	wrapped, err := svc.WrapKey(key, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	for _, pos := range []int{0, 8, len(wrapped) - 1} {
		corrupted := make([]byte, len(wrapped))
		copy(corrupted, wrapped)
		corrupted[pos] ^= 0x01

		if _, err = svc.UnwrapKey(corrupted, kek); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("UnwrapKey with byte %d corrupted: error = %v, want ErrIntegrity", pos, err)
		}
	}
}

func TestUnwrapKey_MalformedLength(t *testing.T) {
	svc := testVault(t)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	for _, blob := range [][]byte{nil, make([]byte, 7), make([]byte, 16), make([]byte, 33)} {
		if _, err := svc.UnwrapKey(blob, kek); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("UnwrapKey with %d-byte blob: error = %v, want ErrIntegrity", len(blob), err)
		}
	}
}

func TestWrapKey_RejectsUnwrappableInputs(t *testing.T) {
	svc := testVault(t)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	if _, err := svc.WrapKey([]byte("short"), kek); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("WrapKey short key: error = %v, want ErrConfiguration", err)
	}
	if _, err := svc.WrapKey(bytes.Repeat([]byte{0x01}, 32), []byte("bad-kek")); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("WrapKey bad kek: error = %v, want ErrConfiguration", err)
	}
}
