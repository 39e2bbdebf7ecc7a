package multigrid

import "errors"

// ErrHierarchy - the requested BC combination or coefficient set cannot
// produce a consistent level hierarchy
var ErrHierarchy = errors.New("multigrid: inconsistent hierarchy configuration")
