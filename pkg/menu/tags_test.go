package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagSet(t *testing.T) {
	assert.Nil(t, ParseTagSet(""))
	assert.Equal(t, []string{"keto", "spicy"}, ParseTagSet("keto, spicy"))
	assert.Equal(t, []string{"keto", "spicy"}, ParseTagSet("keto,,  , spicy , keto"))
}

func TestJoinTagSetRoundTrip(t *testing.T) {
	assert.Equal(t, "keto,spicy", JoinTagSet(ParseTagSet(" keto , spicy , keto ")))
	assert.Equal(t, "", JoinTagSet(nil))
}

func TestAddTag(t *testing.T) {
	assert.Equal(t, "keto", AddTag("", "keto"))
	assert.Equal(t, "keto,spicy", AddTag("keto", "spicy"))
}

func TestAddTagBlankNoOp(t *testing.T) {
	assert.Equal(t, "keto", AddTag("keto", ""))
	assert.Equal(t, "keto", AddTag("keto", "   "))
}

func TestAddTagDuplicateNoOp(t *testing.T) {
	assert.Equal(t, "keto,spicy", AddTag("keto,spicy", "keto"))

	// Matching is case sensitive, so a differently cased tag is new.
	assert.Equal(t, "keto,Keto", AddTag("keto", "Keto"))
}

func TestRemoveTag(t *testing.T) {
	assert.Equal(t, "keto,vegan", RemoveTag("keto,spicy,vegan", 1))
	assert.Equal(t, "spicy,vegan", RemoveTag("keto,spicy,vegan", 0))
}

func TestRemoveTagOutOfRangeNoOp(t *testing.T) {
	assert.Equal(t, "keto,spicy", RemoveTag("keto,spicy", 5))
	assert.Equal(t, "keto,spicy", RemoveTag("keto,spicy", -1))
}
