package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/paper2podcast/internal/artifact"
	"github.com/nguyentantai21042004/paper2podcast/internal/source"
)

// Process orchestrates the pipeline for a single paper
func (p *implProcessor) Process(ctx context.Context, doc source.Document) Result {
	startTime := time.Now()
	res := Result{Source: doc.Name}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting paper: %s", doc.Name)
	p.logger.Info(ctx, "========================================")

	// Step 1: Local copy of the document (downloads remote papers)
	pdfPath, err := doc.Path(ctx)
	if err != nil {
		return p.fail(ctx, res, fmt.Errorf("resolve document: %w", err))
	}
	if doc.IsRemote() && p.cfg.Remote.RemoveDownloads {
		defer p.cleanupDownload(ctx, pdfPath)
	}
	res.Stage = StageResolved

	// Step 2: Extract cleaned text and title
	text, title, err := p.extractor.Extract(ctx, pdfPath)
	if err != nil {
		return p.fail(ctx, res, err)
	}
	res.Stage = StageExtracted

	stem := artifact.Stem(title, pdfPath)
	res.Title = stem
	res.Paths = artifact.PathsFor(p.cfg.Paths.Output, stem)
	p.logger.Info(ctx, "Title: %s", stem)

	// Step 3: Summarize into a podcast script
	script, err := p.summarizer.Summarize(ctx, text, p.cfg.LLM.CustomPrompt)
	if err != nil {
		return p.fail(ctx, res, fmt.Errorf("summarize: %w", err))
	}
	res.Stage = StageSummarized

	// Step 4: Persist the script
	if err := artifact.WriteText(res.Paths.Text, script); err != nil {
		return p.fail(ctx, res, err)
	}
	p.logger.Info(ctx, "Script written to file %s", res.Paths.Text)
	if p.cfg.Output.Docx {
		if err := artifact.WriteDocx(res.Paths.Docx, stem, script); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX: %v", err)
		} else {
			p.logger.Info(ctx, "Document written to file %s", res.Paths.Docx)
		}
	}
	res.Stage = StagePersisted

	// Step 5: Synthesize audio from the same script
	if err := p.synthesizer.Synthesize(ctx, script, res.Paths.Audio); err != nil {
		return p.fail(ctx, res, err)
	}
	res.Stage = StageSynthesized

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Podcast completed: %s", stem)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")
	res.Stage = StageDone
	return res
}

func (p *implProcessor) ProcessAll(ctx context.Context, docs []source.Document) []Result {
	results := make([]Result, 0, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Source: doc.Name, Err: err})
			continue
		}
		p.logger.Info(ctx, "Paper %d/%d", i+1, len(docs))
		results = append(results, p.Process(ctx, doc))
	}

	failed := Failed(results)
	p.logger.Info(ctx, "Run finished: %d succeeded, %d failed", len(results)-failed, failed)
	for _, r := range results {
		if !r.OK() {
			p.logger.Error(ctx, "  %s: %s error after stage %s: %v", r.Source, r.Kind(), r.Stage, r.Err)
		}
	}
	return results
}

func (p *implProcessor) fail(ctx context.Context, res Result, err error) Result {
	res.Err = err
	p.logger.Error(ctx, "Failed %s after stage %s: %v", res.Source, res.Stage, err)
	return res
}
