package testutil

import "time"

var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
