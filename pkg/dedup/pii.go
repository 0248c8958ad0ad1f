package dedup

import "regexp"

// Compiled PII patterns. These are one of the two process-wide statics the
// design allows (the other is the budget cost table); everything else is
// run-scoped.
var (
	phonePattern   = regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]?\d{4}`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	ssnPattern     = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	addressPattern = regexp.MustCompile(`(?i)\b\d{1,5}\s+[A-Za-z0-9.\s]{2,30}\s(?:st|street|ave|avenue|blvd|boulevard|rd|road|dr|drive|ln|lane|way|ct|court)\b`)
)

// piiThreshold is how many PII hits content may carry before the node is
// rejected. A single phone number on a flyer is normal; a list of them is a
// roster.
const piiThreshold = 3

// CountPII returns the number of PII pattern hits in text. SSNs count
// double, so two of them exceed the threshold on their own.
func CountPII(text string) int {
	count := len(phonePattern.FindAllString(text, -1)) +
		len(emailPattern.FindAllString(text, -1)) +
		len(addressPattern.FindAllString(text, -1))
	count += 2 * len(ssnPattern.FindAllString(text, -1))
	return count
}

// ExceedsPIIThreshold reports whether text carries too much PII to store.
func ExceedsPIIThreshold(text string) bool {
	return CountPII(text) > piiThreshold
}
