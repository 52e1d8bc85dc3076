package ai

import (
	"regexp"
	"strconv"
)

var gradePattern = regexp.MustCompile(`(?i)\bgrade\s*[:\-]\s*\[?\s*(\d{1,3})(?:\s*/\s*100|\s*out of 100)?`)

// ExtractGrade returns the last "Grade: N" score (0 to 100) found in essay feedback.
func ExtractGrade(feedback string) (int, bool) {
	matches := gradePattern.FindAllStringSubmatch(feedback, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(matches[i][1])
		if err != nil || n > 100 {
			continue
		}
		return n, true
	}
	return 0, false
}
