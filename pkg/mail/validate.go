package mail

import (
	"regexp"
	"strings"
)

var (
	imgTagPattern = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	altPattern    = regexp.MustCompile(`(?i)\balt\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// ValidateHTML performs basic HTML validation for email client compatibility.
// Fragments are checked for image alt text only; full documents also get the
// Outlook and table checks.
func ValidateHTML(htmlContent string) []string {
	var issues []string

	for _, tag := range imgTagPattern.FindAllString(htmlContent, -1) {
		m := altPattern.FindStringSubmatch(tag)
		if m == nil || strings.TrimSpace(m[1]+m[2]) == "" {
			issues = append(issues, "Image without alt text: "+tag)
		}
	}

	if strings.Contains(strings.ToLower(htmlContent), "$subject") {
		issues = append(issues, "Unresolved template variable $subject")
	}

	if !strings.Contains(strings.ToLower(htmlContent), "doctype html") {
		// fragment
		return issues
	}

	if !strings.Contains(htmlContent, "<!--[if mso") {
		issues = append(issues, "Missing Outlook conditional comments")
	}

	if !strings.Contains(htmlContent, "border-collapse:collapse") && !strings.Contains(htmlContent, "border-collapse: collapse") {
		issues = append(issues, "Missing border-collapse for table compatibility")
	}

	if strings.Contains(htmlContent, "display: flex") {
		issues = append(issues, "WARNING: CSS flexbox not supported in many email clients")
	}

	return issues
}
