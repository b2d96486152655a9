package summarizer

import "strings"

// Chunk is a contiguous window of words from the cleaned text.
type Chunk struct {
	Index int
	Words []string
}

// Text joins the chunk's words with single spaces.
func (c Chunk) Text() string {
	return strings.Join(c.Words, " ")
}

// SplitChunks splits text on whitespace and windows the words into chunks of
// exactly size words; the last chunk may be shorter. Empty text yields no chunks.
func SplitChunks(text string, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkWords
	}

	words := strings.Fields(text)
	chunks := make([]Chunk, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Words: words[start:end],
		})
	}
	return chunks
}
