package main

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"texenhance/pkg/enhance"
	"texenhance/pkg/store"
)

func main() {
	logger, _ := zap.NewDevelopment()

	st, err := store.New(afero.NewOsFs(), "", logger)
	if err != nil {
		logger.Fatal("open store failed", zap.Error(err))
	}

	p := enhance.New(logger, enhance.WithStages(enhance.NewParams().Stages()...))
	if err := p.Run(st, "stars_3.jpg", "stars_enhanced.jpg", "stars_texture.png"); err != nil {
		logger.Fatal("enhance failed", zap.Error(err))
	}
}
