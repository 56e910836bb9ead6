package reqcode

import (
	"fmt"
	"time"
)

// Prefix maps a request type id to its human-readable code prefix:
// 1 service, 2 information system, 3 development.
func Prefix(typeID int) string {
	switch typeID {
	case 1:
		return "IT"
	case 2:
		return "IS"
	case 3:
		return "DEV"
	}
	return "UNK"
}

// Generate builds the request code shown to users: prefix + yymmdd +
// the 3-digit millisecond part of the instant, which keeps codes unique
// enough within a day of submissions.
func Generate(typeID int, now time.Time) string {
	return fmt.Sprintf("%s%s%03d", Prefix(typeID), now.Format("060102"), now.Nanosecond()/1e6)
}
