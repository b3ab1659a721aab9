package config

import "github.com/ayoisaiah/pomod/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q (must be debug, info, warn, or error)",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log %s must not be negative, got %d",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max_size_mb must be at least 1, got %d",
	}

	errUnknownGlyphState = &apperr.Error{
		Message: "glyph configured for unknown phase: %q",
	}

	errInvalidSessionCmd = &apperr.Error{
		Message: "invalid session command",
	}
)
