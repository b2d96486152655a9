package summarizer

const (
	DefaultChunkWords = 3000
	DefaultMaxTokens  = 1000
)

const podcastPrompt = "You are a podcast host summarizing a scientific paper. Focus on key sections such as Introduction, Related Work, " +
	"System Design, User Study, Results, Discussion, and Conclusion. Also emphasize the research questions. " +
	"Read the title at the start, and don't split it into several episodes. Keep it in one. " +
	"Present the content in a conversational style, engaging the audience and making the research accessible. " +
	"Here is the academic text to summarize:\n\n"

// BuildPrompt returns the request for one chunk. A non-empty custom prompt is
// used verbatim and the chunk text is not appended.
func BuildPrompt(customPrompt string, chunk Chunk) string {
	if customPrompt != "" {
		return customPrompt
	}
	return podcastPrompt + chunk.Text()
}
