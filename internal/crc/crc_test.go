package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

func TestEncodeKnownCodeword(t *testing.T) {
	payload := bits.Seq{1, 0, 0, 1, 0, 0}
	key := bits.Seq{1, 1, 0, 1}

	codeword, err := Encode(payload, key)
	require.NoError(t, err)
	assert.True(t, codeword.Equal(bits.Seq{1, 0, 0, 1, 0, 0, 0, 0, 1}))

	ok, err := Check(codeword, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncodeWideKey(t *testing.T) {
	payload := bits.Seq{1, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1}
	key := bits.Seq{1, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1}

	codeword, err := Encode(payload, key)
	require.NoError(t, err)
	require.Len(t, codeword, len(payload)+len(key)-1)
	assert.True(t, codeword[len(payload):].Equal(bits.Seq{0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 1}))
}

func TestCheckRejectsCorruption(t *testing.T) {
	payload := bits.Seq{1, 0, 0, 1, 0, 0}
	key := bits.Seq{1, 1, 0, 1}
	codeword, err := Encode(payload, key)
	require.NoError(t, err)

	for i := range codeword {
		bad := codeword.Clone()
		bad[i] ^= 1
		ok, err := Check(bad, key)
		require.NoError(t, err)
		assert.False(t, ok, "flip at %d went undetected", i)
	}
}

func TestEncodeErrors(t *testing.T) {
	key := bits.Seq{1, 1, 0, 1}

	_, err := Encode(nil, key)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = Encode(bits.Seq{1}, bits.Seq{1})
	assert.ErrorIs(t, err, ErrShortKey)

	_, err = Encode(bits.Seq{1}, bits.Seq{0, 1, 1})
	assert.ErrorIs(t, err, ErrKeyLeadingZero)

	_, err = Check(bits.Seq{1, 0}, key)
	assert.ErrorIs(t, err, ErrShortCodeword)
}

func TestEncodeCheckProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payloadLen := rapid.IntRange(1, 128).Draw(t, "payloadLen")
		keyLen := rapid.IntRange(2, 16).Draw(t, "keyLen")

		payload := make(bits.Seq, payloadLen)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 1).Draw(t, "payloadBit"))
		}
		key := make(bits.Seq, keyLen)
		key[0] = 1
		for i := 1; i < keyLen; i++ {
			key[i] = byte(rapid.IntRange(0, 1).Draw(t, "keyBit"))
		}

		codeword, err := Encode(payload, key)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if len(codeword) != payloadLen+keyLen-1 {
			t.Fatalf("codeword length %d", len(codeword))
		}
		if !codeword[:payloadLen].Equal(payload) {
			t.Fatalf("systematic prefix altered")
		}

		ok, err := Check(codeword, key)
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		if !ok {
			t.Fatalf("clean codeword failed its own check")
		}

		// A single flipped bit must be caught whenever the key has a
		// nonzero tail (a degenerate key like 1000 cannot detect
		// every position).
		hasTail := false
		for _, v := range key[1:] {
			if v == 1 {
				hasTail = true
			}
		}
		if hasTail {
			pos := rapid.IntRange(0, len(codeword)-1).Draw(t, "flip")
			bad := codeword.Clone()
			bad[pos] ^= 1
			ok, err := Check(bad, key)
			if err != nil {
				t.Fatalf("check flipped: %v", err)
			}
			if ok {
				t.Fatalf("flip at %d went undetected", pos)
			}
		}
	})
}
