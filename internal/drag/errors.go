package drag

import "errors"

// ErrInvalidActivationDistance is returned for an activation distance below one cell
var ErrInvalidActivationDistance = errors.New("activation distance must be at least 1")
