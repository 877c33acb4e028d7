package app

import (
	"fmt"

	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
	"github.com/ferdiebergado/autokit/internal/platform/router"
	"github.com/ferdiebergado/autokit/internal/platform/validation"
)

type Providers struct {
	Signer    jwt.Signer
	Validator validation.Validator
	Router    router.Router
	Publisher broker.Publisher
}

func setupProviders(cfg *config.Config, securityKey string) (*Providers, error) {
	signer := jwt.NewGolangJWTSigner(cfg.JWT, securityKey)
	validator := validation.NewGoPlaygroundValidator()
	rtr := router.NewGoexpressRouter()

	publisher, err := broker.NewSaramaPublisher(cfg.Broker.Addresses)
	if err != nil {
		return nil, fmt.Errorf("new sarama publisher: %w", err)
	}

	return &Providers{
		Signer:    signer,
		Validator: validator,
		Router:    rtr,
		Publisher: publisher,
	}, nil
}
