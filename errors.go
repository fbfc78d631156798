package datepicker

import "errors"

// ErrUnsupportedLocaleFile indicates a locale file with an unknown extension.
var ErrUnsupportedLocaleFile = errors.New("datepicker: unsupported locale file")

// ErrEmptyLocaleCode marks a locale definition without a code
var ErrEmptyLocaleCode = errors.New("datepicker: empty locale code")

// ErrNoLoaderPaths is returned by loaders constructed without input files
var ErrNoLoaderPaths = errors.New("datepicker: no loader paths configured")

// ErrInvalidBounds is returned when the configured minimum is after the maximum
var ErrInvalidBounds = errors.New("datepicker: min date after max date")

// ErrUnsupportedLocale is returned when no localization data exists for a locale code
var ErrUnsupportedLocale = errors.New("datepicker: unsupported locale")
