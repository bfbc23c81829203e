package menu

import (
	"Meal-Prep-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngDataURL = "data:image/png;base64,aGVsbG8="

func TestDecodePhotoDataURL(t *testing.T) {
	blob, err := decodePhotoDataURL(pngDataURL)

	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), blob.Data)
	assert.Equal(t, "image/png", blob.ContentType)
	assert.Equal(t, ".png", blob.Extension)
}

func TestDecodePhotoDataURLUnknownTypeFallsBackToJpg(t *testing.T) {
	blob, err := decodePhotoDataURL("data:image/x-icon;base64,aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, ".jpg", blob.Extension)
}

func TestDecodePhotoDataURLMalformed(t *testing.T) {
	for _, raw := range []string{
		"data:image/png;base64",          // no payload separator
		"data:image/png,aGVsbG8=",        // missing base64 marker
		"data:image/png;base64,!!not64!", // invalid base64
	} {
		_, err := decodePhotoDataURL(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidPhotoData, raw)
	}
}

func TestDecodePhotoBatchSkipsNonImages(t *testing.T) {
	blobs, err := decodePhotoBatch([]string{
		"https://example.com/photo.jpg",
		"data:text/plain;base64,aGVsbG8=",
		pngDataURL,
	})

	require.NoError(t, err)
	require.Len(t, blobs, 1)
	assert.Equal(t, "image/png", blobs[0].ContentType)
}

func TestDecodePhotoBatchMalformedImageFailsAll(t *testing.T) {
	blobs, err := decodePhotoBatch([]string{
		pngDataURL,
		"data:image/png;base64,!!!",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPhotoData)
	assert.Nil(t, blobs)
}
