package format

import "errors"

// ErrInvalidFormat is the format-error taxon from spec.md §7.2: invalid
// team/clause combinations, out-of-range active counts, malformed
// serialized forms.
var ErrInvalidFormat = errors.New("invalid battle format")
