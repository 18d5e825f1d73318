// internal/alphabet/alphabet_test.go
package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid(Hiragana))
	assert.True(t, Valid(Katakana))
	assert.True(t, Valid(Kanji))
	assert.False(t, Valid("latin"))
	assert.False(t, Valid(""))
}

func TestSelectRandomNeverRepeatsExclude(t *testing.T) {
	for _, name := range []string{Hiragana, Katakana, Kanji} {
		exclude := SelectRandom(name, "")
		require.NotEmpty(t, exclude)
		for i := 0; i < 1000; i++ {
			picked := SelectRandom(name, exclude)
			require.NotEqual(t, exclude, picked, "alphabet %s returned the excluded key", name)
			require.Contains(t, Table(name), picked)
		}
	}
}

func TestPickSingleEntryTerminates(t *testing.T) {
	// A one-entry table cannot avoid the excluded key; it must still
	// return instead of looping forever.
	got := Pick([]string{"あ"}, "あ")
	assert.Equal(t, "あ", got)
}

func TestPickEmpty(t *testing.T) {
	assert.Equal(t, "", Pick(nil, ""))
}

func TestCheckPrimaryReading(t *testing.T) {
	assert.True(t, Check(Hiragana, "あ", "a"))
	assert.True(t, Check(Katakana, "ツ", "tsu"))
	assert.False(t, Check(Hiragana, "あ", "i"))
}

func TestCheckNormalizesInput(t *testing.T) {
	assert.True(t, Check(Hiragana, "か", "  KA "))
	assert.True(t, Check(Kanji, "水", "MIZU"))
}

func TestCheckVariantsAndMeanings(t *testing.T) {
	// ふ accepts both hu and fu.
	assert.True(t, Check(Hiragana, "ふ", "hu"))
	assert.True(t, Check(Hiragana, "ふ", "fu"))

	// Kanji accept reading variants and both meanings.
	assert.True(t, Check(Kanji, "四", "yon"))
	assert.True(t, Check(Kanji, "四", "shi"))
	assert.True(t, Check(Kanji, "四", "four"))
	assert.True(t, Check(Kanji, "月", "month"))
	assert.True(t, Check(Kanji, "月", "moon"))
}

func TestCheckRejectsEmptyInput(t *testing.T) {
	// Characters without variants must not match the empty string
	// against their empty variant fields.
	assert.False(t, Check(Hiragana, "あ", ""))
	assert.False(t, Check(Hiragana, "あ", "   "))
}

func TestCheckUnknownCharacter(t *testing.T) {
	assert.False(t, Check(Hiragana, "ア", "a")) // katakana key, hiragana table
	assert.False(t, Check("latin", "a", "a"))
}
