package cli

import (
	"log"

	"github.com/dyike/finchat/internal/answer"
	"github.com/dyike/finchat/internal/config"
	"github.com/dyike/finchat/internal/dataset"
	"github.com/dyike/finchat/internal/engine"
	"github.com/dyike/finchat/internal/intent"
)

// Bot answers one question at a time against a loaded dataset. It keeps no
// state between questions, so identical input always yields identical output.
type Bot struct {
	store     *dataset.Store
	formatter answer.Formatter
	debug     bool
}

// NewBot creates a bot over a loaded store
func NewBot(cfg *config.Config, store *dataset.Store) *Bot {
	return &Bot{
		store:     store,
		formatter: answer.NewFormatter(int32(cfg.PctPrecision)),
		debug:     cfg.Debug,
	}
}

// Answer interprets a question, resolves it and formats the reply
func (b *Bot) Answer(text string) string {
	q := intent.Extract(text)
	b.debugf("intent: companies=%v all=%t metric=%q year=%d yoy=%t compare=%t",
		q.Companies, q.AllCompanies, q.Metric, q.Year, q.YoY, q.Compare)

	res, err := engine.Resolve(q, b.store)
	if err != nil {
		b.debugf("resolve: %v", err)
	}
	return b.formatter.Reply(res, err)
}

func (b *Bot) debugf(format string, args ...any) {
	if b.debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
