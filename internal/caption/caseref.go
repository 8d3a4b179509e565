// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package caption

import (
	"regexp"

	"github.com/pdiddy/case-tracker/internal/textnorm"
)

// caseRefRe matches docket and case numbers in the forms trackers
// publish: federal docket numbers ("1:23-cv-11195"), "No. ..." and
// "Case No. ..." citations, and UK-style "Claim No. ..." references.
var caseRefRe = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}-cv-\d{4,6}[A-Za-z\-]*|No\.\s?[A-Za-z0-9\-.:]+|Case\s?(?:No\.|#)\s?[A-Za-z0-9\-:]+|Claim\s?No\.\s?[A-Za-z0-9\-]+)\b`)

// CaseRef returns the first docket or case number found in text, or
// the empty string. Best effort: trackers publish these inconsistently.
func CaseRef(text string) string {
	m := caseRefRe.FindString(text)
	return textnorm.Collapse(m)
}
