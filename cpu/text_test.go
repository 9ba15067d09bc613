package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeText(t *testing.T) {
	assert := assert.New(t)

	words, err := EncodeText("Hi")
	assert.NoError(err)
	assert.Equal([]uint16{0x0048, 0x0069}, words)

	words, err = EncodeText("😀!")
	assert.NoError(err)
	assert.Equal([]uint16{0xd83d, 0xde00, '!'}, words)

	words, err = EncodeText("")
	assert.NoError(err)
	assert.Empty(words)
}

func TestDecodeText(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"", "Hi", "Hello, 世界", "😀"} {
		words, err := EncodeText(text)
		assert.NoError(err)
		back, err := DecodeText(words)
		assert.NoError(err)
		assert.Equal(text, back)
	}

	text, err := DecodeText([]uint16{0xfeff, 'A'})
	assert.NoError(err)
	assert.Equal("\ufeffA", text)
}
