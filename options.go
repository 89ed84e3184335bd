package docunit

import "go.uber.org/zap"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	logger              *zap.Logger
	convertLegacyImages bool // re-encode TIFF/BMP images as PNG
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		logger:              zap.NewNop(),
		convertLegacyImages: false,
	}
}

// clone creates a copy of ConvertOptions. The logger is shared.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		logger:              o.logger,
		convertLegacyImages: o.convertLegacyImages,
	}
}
