package discovery

import "errors"

// ErrListDirectory is returned when an existing directory cannot be listed.
var ErrListDirectory = errors.New("failed to list directory")
