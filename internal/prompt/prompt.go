// Package prompt renders the natural-language instructions sent to the model.
package prompt

import "strings"

const (
	replyBase   = "Generate a professional email reply for the following email."
	replyHeader = "\n\nOriginal Email:\n"

	summarizeHead   = "Summarize the following email into "
	summarizeTail   = " clear bullet-points followed by a 1-2 sentence summary. Do not add extra commentary."
	summarizeHeader = "\n\nEmail:\n"
)

// ReplyRequest asks for a reply to EmailContent. A nil or empty Tone leaves
// the tone unspecified.
type ReplyRequest struct {
	EmailContent string  `json:"emailContent"`
	Tone         *string `json:"tone,omitempty"`
}

// SummarizeRequest asks for a summary of EmailContent. SummaryLength is
// resolved with ParseLength.
type SummarizeRequest struct {
	EmailContent  string  `json:"emailContent"`
	SummaryLength *string `json:"summaryLength,omitempty"`
}

// Length returns the requested summary length, Short when absent.
func (r SummarizeRequest) Length() Length {
	if r.SummaryLength == nil {
		return Short
	}
	return ParseLength(*r.SummaryLength)
}

// Length is the size of a requested summary.
type Length int

const (
	Short Length = iota
	Medium
	Long
)

// ParseLength matches "medium" and "long" case-insensitively.
// Everything else, including "", is Short.
func ParseLength(s string) Length {
	switch strings.ToLower(s) {
	case "medium":
		return Medium
	case "long":
		return Long
	default:
		return Short
	}
}

func (l Length) String() string {
	switch l {
	case Medium:
		return "medium"
	case Long:
		return "long"
	default:
		return "short"
	}
}

func (l Length) descriptor() string {
	switch l {
	case Medium:
		return "a medium-length"
	case Long:
		return "a detailed"
	default:
		return "a short"
	}
}

// Reply builds the reply prompt. The tone clause is only added for a
// non-empty tone.
func Reply(req ReplyRequest) string {
	var b strings.Builder
	b.WriteString(replyBase)
	if req.Tone != nil && *req.Tone != "" {
		b.WriteString(" Use a ")
		b.WriteString(*req.Tone)
		b.WriteString(" tone.")
	}
	b.WriteString(replyHeader)
	b.WriteString(req.EmailContent)
	return b.String()
}

// Summarize builds the summary prompt for emailContent.
func Summarize(emailContent string, length Length) string {
	var b strings.Builder
	b.WriteString(summarizeHead)
	b.WriteString(length.descriptor())
	b.WriteString(summarizeTail)
	b.WriteString(summarizeHeader)
	b.WriteString(emailContent)
	return b.String()
}
