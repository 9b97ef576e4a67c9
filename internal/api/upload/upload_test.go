package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignParamsSortsKeys(t *testing.T) {
	params := map[string]string{
		"upload_preset": "preset",
		"folder":        "portafolio",
		"timestamp":     "1700000000",
	}

	expected := sha1.Sum([]byte("folder=portafolio&timestamp=1700000000&upload_preset=preset" + "secret"))
	assert.Equal(t, hex.EncodeToString(expected[:]), SignParams(params, "secret"))
}

func TestSignParamsSecretChangesSignature(t *testing.T) {
	params := map[string]string{"timestamp": "1700000000"}
	assert.NotEqual(t, SignParams(params, "a"), SignParams(params, "b"))
}
