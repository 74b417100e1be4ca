package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"tzform/config"
	"tzform/helper"
	"tzform/shared/logger"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	switch action := os.Args[1]; action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp, helper.ActionVersion:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
		}
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'version'")
	}
}
