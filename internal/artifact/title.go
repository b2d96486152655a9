package artifact

import (
	"path/filepath"
	"strings"
)

var unsafeChars = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	"*", "_",
	"?", "_",
	":", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeTitle replaces characters that are unsafe in file names with "_".
func SanitizeTitle(title string) string {
	return unsafeChars.Replace(title)
}

// Stem returns the sanitized output file stem for a document: its title, or
// "podcast_<base name>" when no title was extracted.
func Stem(title, sourcePath string) string {
	if strings.TrimSpace(title) == "" {
		title = "podcast_" + filepath.Base(sourcePath)
	}
	return SanitizeTitle(title)
}

// Paths names the artifacts produced for one document.
type Paths struct {
	Text  string
	Audio string
	Docx  string
}

// PathsFor returns the artifact paths for stem inside dir.
func PathsFor(dir, stem string) Paths {
	base := filepath.Join(dir, stem)
	return Paths{
		Text:  base + ".txt",
		Audio: base + ".mp3",
		Docx:  base + ".docx",
	}
}
