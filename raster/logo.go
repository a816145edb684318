package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	"github.com/pkg/errors"
)

// LogoLoader resolves a logo source reference into an image.
type LogoLoader func(ref string) (image.Image, error)

// DefaultLogoLoader decodes base64 data URIs and reads local files. Remote
// references are refused; supply a LogoLoader that fetches them.
func DefaultLogoLoader(ref string) (image.Image, error) {
	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "data:"):
		return decodeDataURI(ref)
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return nil, errors.Errorf("remote logo %q needs a fetching LogoLoader", ref)
	}

	return Read(ref)
}

func decodeDataURI(ref string) (image.Image, error) {
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, errors.New("data URI without payload")
	}

	header := strings.ToLower(ref[len("data:"):comma])
	if !strings.HasSuffix(header, ";base64") {
		return nil, errors.Errorf("data URI %q is not base64 encoded", header)
	}

	raw, err := base64.StdEncoding.DecodeString(ref[comma+1:])
	if err != nil {
		return nil, errors.Wrap(err, "decode data URI payload")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode data URI image")
	}

	return img, nil
}
