package source

import (
	"github.com/mmcdole/gofeed"
	"github.com/nguyentantai21042004/paper2podcast/internal/config"
	"github.com/nguyentantai21042004/paper2podcast/internal/logger"
	"github.com/nguyentantai21042004/paper2podcast/pkg/httpclient"
)

type implResolver struct {
	cfg        config.RemoteConfig
	fetcher    *Fetcher
	feedParser *gofeed.Parser
	logger     logger.Logger
}

// New creates a Resolver using the remote settings from cfg.
func New(cfg *config.Config, log logger.Logger) Resolver {
	return newResolver(cfg.Remote, NewFetcher(httpclient.New(httpclient.Plain), httpclient.New(httpclient.Browser), log), log)
}

func newResolver(cfg config.RemoteConfig, fetcher *Fetcher, log logger.Logger) *implResolver {
	return &implResolver{
		cfg:        cfg,
		fetcher:    fetcher,
		feedParser: gofeed.NewParser(),
		logger:     log,
	}
}
