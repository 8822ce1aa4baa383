package attachmentController

import (
	"fmt"
	"strings"
	"studytrack/models"
	"studytrack/utils"
)

// URLSigner resolves a storage key to a time-limited download URL.
// ttlSeconds <= 0 means the configured default window.
type URLSigner func(path string, ttlSeconds int) (string, error)

// EmbedAttachments appends a note's attachments to its markdown body as a
// render-ready document. Images become inline embeds, everything else a
// download link with a human-readable size. Attachments whose URL cannot be
// signed are skipped rather than failing the render; the note text itself is
// never touched. The result is a presentation-time transform and is never
// written back to the store.
func EmbedAttachments(text string, attachments []models.NoteAttachment, sign URLSigner) string {
	if len(attachments) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n---\n\n**Attachments:**\n\n")

	for _, att := range attachments {
		url, err := sign(att.FilePath, 0)
		if err != nil {
			continue
		}

		if strings.HasPrefix(att.FileType, "image/") {
			// Embed images directly
			fmt.Fprintf(&b, "![%s](%s \"%s\")\n\n", att.FileName, url, att.FileName)
		} else {
			// Download link for non-image files
			fmt.Fprintf(&b, "[**%s**](%s) *(%s)*\n\n", att.FileName, url, utils.FormatFileSize(att.FileSize))
		}
	}

	return b.String()
}
