package processor

import (
	"context"
	"os"
)

// cleanupDownload removes a downloaded paper, logs warning if fails
func (p *implProcessor) cleanupDownload(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup downloaded file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up downloaded file: %s", filePath)
	}
}
