package global

import (
	"github.com/travigo/sbb-mcp/pkg/config"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator"
	"github.com/travigo/sbb-mcp/pkg/dataaggregator/source/sbb"
	"github.com/travigo/sbb-mcp/pkg/sbbclient"
)

// Setup builds the aggregator with every data source configured from cfg.
func Setup(cfg config.Config) *dataaggregator.Aggregator {
	client := sbbclient.New(cfg.Backend.Endpoint, cfg.Backend.AcceptLanguage)

	return dataaggregator.New(sbb.Source{
		Client: client,
		Config: cfg,
	})
}
