package main

import (
	"log"
	"os"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"texenhance/pkg/enhance"
	"texenhance/pkg/store"
)

var defaults = enhance.NewParams()

var input = flag.StringP("input", "i", "stars_3.jpg", "input image")
var jpegOut = flag.String("jpeg", "stars_enhanced.jpg", "jpeg output path")
var pngOut = flag.String("png", "stars_texture.png", "png output path")
var root = flag.String("root", "", "resolve all paths inside this dir")
var cropSize = flag.Int("crop-size", defaults.CropSize, "centered square crop size")
var gamma = flag.Float64("gamma", defaults.Gamma, "gamma exponent")
var greenGain = flag.Float64("green-gain", defaults.GreenGain, "green channel gain")
var redGain = flag.Float64("red-gain", defaults.RedGain, "red channel gain")
var progress = flag.Bool("progress", false, "show stage progress")
var debug = flag.Bool("debug", false, "set debug")

func newLogger() (*zap.Logger, error) {
	return lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)()
}

func newParams() (*enhance.Params, error) {
	p := &enhance.Params{
		CropSize:  *cropSize,
		Gamma:     *gamma,
		GreenGain: *greenGain,
		RedGain:   *redGain,
	}
	return p, p.Validate()
}

func newStore(logger *zap.Logger) (*store.Store, error) {
	return store.New(afero.NewOsFs(), *root, logger)
}

func newPipeline(params *enhance.Params, logger *zap.Logger) *enhance.Pipeline {
	stages := params.Stages()
	opts := []enhance.Option{enhance.WithStages(stages...)}

	if *progress {
		bar := progressbar.NewOptions(len(stages),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("enhancing"),
		)
		opts = append(opts, enhance.WithObserver(func(l *enhance.StageLog) {
			bar.Describe(l.Stage)
			_ = bar.Add(1)
		}))
	}

	return enhance.New(logger, opts...)
}

func run(p *enhance.Pipeline, st *store.Store, logger *zap.Logger) error {
	defer func() {
		_ = logger.Sync()
	}()
	return p.Run(st, *input, *jpegOut, *pngOut)
}

func main() {
	flag.Parse()

	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
		fx.Provide(
			newLogger,
			newParams,
			newStore,
			newPipeline,
		),
		fx.Invoke(
			run,
		),
	)

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
}
