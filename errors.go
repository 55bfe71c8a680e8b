package gear

import "errors"

// Errors reported by the package. All returned errors wrap one of these
// sentinels, so callers can classify failures with errors.Is while the
// wrapped message names the offending parameter or stage.
var (
	// ErrInvalidParameter indicates a malformed or out-of-range input:
	// non-positive pitch, tooth count below 3, pressure angle outside
	// (0, 90) degrees, or a bore that would breach the tooth roots.
	ErrInvalidParameter = errors.New("gear: invalid parameter")

	// ErrDegenerateGeometry indicates derived geometry that is
	// self-intersecting or inverted, such as a kerf large enough to
	// consume the tooth, or an undercut profile from a low tooth count
	// combined with a high pressure angle.
	ErrDegenerateGeometry = errors.New("gear: degenerate geometry")
)
