package sync

import "time"

// nowFunc is swapped in tests.
var nowFunc = time.Now
