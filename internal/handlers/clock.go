package handlers

import "time"

// timeNow supplies the current instant for status and rollup computations.
// Tests replace it to pin "today".
var timeNow = time.Now
