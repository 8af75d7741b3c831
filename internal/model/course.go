package model

// Courses is the fixed list of programmes the office publishes results for.
// Manual entry is validated against it; bulk ingestion stores course values
// as-is (legacy spreadsheets predate the list).
var Courses = []string{
	"B.Tech",
	"B.Sc",
	"B.Com",
	"B.A",
	"BBA",
	"BCA",
	"M.Tech",
	"M.Sc",
	"M.A",
	"MBA",
	"MCA",
}

// IsValidCourse reports whether course is one of the fixed programme names.
func IsValidCourse(course string) bool {
	for _, c := range Courses {
		if c == course {
			return true
		}
	}
	return false
}
