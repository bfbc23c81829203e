package menu

import (
	"Meal-Prep-Backend/domain"
	"encoding/base64"
	"strings"
)

// photoBlob is one decoded photo ready for object storage.
type photoBlob struct {
	Data        []byte
	ContentType string
	Extension   string
}

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// decodePhotoBatch turns the form's data-URL strings into blobs. Non-image
// entries are filtered out before anything else happens; a malformed image
// entry fails the whole batch, so a partial photo list is never persisted.
func decodePhotoBatch(raws []string) ([]photoBlob, error) {
	var blobs []photoBlob
	for _, raw := range raws {
		if !strings.HasPrefix(raw, "data:image/") {
			continue
		}
		blob, err := decodePhotoDataURL(raw)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, blob)
	}
	return blobs, nil
}

func decodePhotoDataURL(raw string) (photoBlob, error) {
	rest := strings.TrimPrefix(raw, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return photoBlob{}, domain.ErrInvalidPhotoData
	}

	contentType := meta
	if semi := strings.Index(meta, ";"); semi >= 0 {
		contentType = meta[:semi]
		if !strings.Contains(meta[semi:], "base64") {
			return photoBlob{}, domain.ErrInvalidPhotoData
		}
	} else {
		return photoBlob{}, domain.ErrInvalidPhotoData
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return photoBlob{}, domain.ErrInvalidPhotoData
	}

	ext, ok := photoExtensions[contentType]
	if !ok {
		ext = ".jpg"
	}

	return photoBlob{Data: data, ContentType: contentType, Extension: ext}, nil
}
