package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Run("valid data url", func(t *testing.T) {
		payload := []byte{0xFF, 0xD8, 0xFF}
		encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

		data, ext, err := DecodeBase64Image(encoded)
		require.NoError(t, err)

		assert.Equal(t, payload, data)
		assert.Contains(t, []string{".jpe", ".jpeg", ".jpg"}, ext)
	})

	t.Run("missing data prefix", func(t *testing.T) {
		_, _, err := DecodeBase64Image("image/png;base64,AAAA")
		assert.Error(t, err)
	})

	t.Run("no comma separator", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("broken base64 payload", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,!!!!")
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	allowed := []string{".png", ".jpeg"}

	assert.NoError(t, ValidateImageFormat(".png", allowed))
	assert.Error(t, ValidateImageFormat(".gif", allowed))
}

func TestValidateImageSize(t *testing.T) {
	assert.NoError(t, ValidateImageSize(make([]byte, 1024), 1))
	assert.Error(t, ValidateImageSize(make([]byte, 2*1024*1024), 1))
}
