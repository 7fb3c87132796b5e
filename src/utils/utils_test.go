package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestB2S(t *testing.T) {
	assert.Equal(t, "puuid", B2S([]byte("puuid")))
	assert.Equal(t, "", B2S(nil))
}

func TestS2B(t *testing.T) {
	assert.Equal(t, []byte("EUW1_1234"), S2B("EUW1_1234"))
	assert.Len(t, S2B(""), 0)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(-4, 1, 100))
	assert.Equal(t, 20, ClampInt(20, 1, 100))
	assert.Equal(t, 100, ClampInt(250, 1, 100))
}
