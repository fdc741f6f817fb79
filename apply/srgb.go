package apply

import "github.com/reoring/texnaming"

// InferSRGB reports whether a texture using compression should be sampled as
// sRGB. Data textures (normal maps, masks, grayscale, HDR, alpha and distance
// field fonts) are linear; everything else is color.
func InferSRGB(c texnaming.CompressionKind) bool {
	switch c {
	case texnaming.CompressionNormalMap,
		texnaming.CompressionMasks,
		texnaming.CompressionGrayscale,
		texnaming.CompressionHDR,
		texnaming.CompressionAlpha,
		texnaming.CompressionDistanceFieldFont:
		return false
	default:
		return true
	}
}

// ResolveSRGB turns an sRGB mode into the flag written to the asset. AUTO
// defers to InferSRGB.
func ResolveSRGB(mode texnaming.SRGBMode, c texnaming.CompressionKind) bool {
	switch mode {
	case texnaming.SRGBOn:
		return true
	case texnaming.SRGBOff:
		return false
	default:
		return InferSRGB(c)
	}
}
