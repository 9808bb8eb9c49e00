package api

import (
	"github.com/latinta/dashboard/internal/analytics"
	"github.com/latinta/dashboard/internal/chat"
	"github.com/latinta/dashboard/internal/config"
	"github.com/latinta/dashboard/internal/improve"
	"github.com/latinta/dashboard/internal/prices"
	"github.com/latinta/dashboard/internal/prompts"
	"github.com/latinta/dashboard/internal/strategies"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prices     prices.System
	Prompts    prompts.System
	Strategies strategies.System
	Improve    improve.System
	Chat       chat.System
	Analytics  analytics.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	return &Domain{
		Prices: prices.New(
			runtime.Storage,
			cfg.Prices.File,
			cfg.Prices.Sheet,
			runtime.Logger,
		),
		Prompts:    prompts.New(runtime.Docstore, runtime.Logger),
		Strategies: strategies.New(runtime.Docstore, runtime.Logger),
		Improve: improve.New(
			runtime.Generator,
			cfg.Gemini.TimeoutDuration(),
			runtime.Logger,
		),
		Chat: chat.New(
			cfg.Chat.WebhookURL,
			cfg.Chat.TimeoutDuration(),
			runtime.Logger,
		),
		Analytics: analytics.New(runtime.Logger),
	}
}
