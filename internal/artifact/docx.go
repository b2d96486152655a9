package artifact

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	bodyFont  = "Times New Roman"
	bodySize  = 13
	titleSize = 16
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[-*]\s+(.+)$`)
	reRule    = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	reSpeaker = regexp.MustCompile(`^([A-Z][\w .'-]{0,40}):\s+(.+)$`)
	reStrong  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	inlineMD  = strings.NewReplacer("**", "", "__", "", "`", "")
)

// run is a span of script text sharing one style.
type run struct {
	text string
	bold bool
}

// WriteDocx renders a podcast script as a Word document: the title, then one
// paragraph per script line. Markdown headings and bullets become styling,
// "**bold**" spans and "Host:" speaker labels are set in bold.
func WriteDocx(path, title, script string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return &FilesystemError{Path: path, Err: err}
	}

	writeRuns(doc.AddParagraph(""), []run{{text: title, bold: true}}, titleSize)

	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || reRule.MatchString(line) {
			continue
		}

		if m := reHeading.FindStringSubmatch(line); m != nil {
			writeRuns(doc.AddParagraph(""), []run{{text: m[2], bold: true}}, headingSize(len(m[1])))
			continue
		}

		prefix := ""
		if m := reBullet.FindStringSubmatch(line); m != nil {
			prefix, line = "• ", m[1]
		}
		writeRuns(doc.AddParagraph(""), lineRuns(prefix, line), bodySize)
	}

	if err := doc.SaveTo(path); err != nil {
		return &FilesystemError{Path: path, Err: err}
	}
	return nil
}

// lineRuns splits one script line into runs. A leading speaker label is a
// bold run of its own.
func lineRuns(prefix, line string) []run {
	runs := []run{}
	if prefix != "" {
		runs = append(runs, run{text: prefix})
	}
	if m := reSpeaker.FindStringSubmatch(line); m != nil {
		runs = append(runs, run{text: m[1] + ": ", bold: true})
		line = m[2]
	}

	last := 0
	for _, loc := range reStrong.FindAllStringSubmatchIndex(line, -1) {
		runs = append(runs,
			run{text: line[last:loc[0]]},
			run{text: line[loc[2]:loc[3]], bold: true},
		)
		last = loc[1]
	}
	return append(runs, run{text: line[last:]})
}

// headingSize shrinks one point per heading level, never below body text.
func headingSize(level int) uint64 {
	if size := titleSize + 1 - level; size > bodySize {
		return uint64(size)
	}
	return bodySize
}

func writeRuns(p *docx.Paragraph, runs []run, size uint64) {
	for _, r := range runs {
		text := inlineMD.Replace(r.text)
		if text == "" {
			continue
		}
		styled := p.AddText(text).Font(bodyFont).Size(size).Color("000000")
		if r.bold {
			styled.Bold(true)
		}
	}
}
