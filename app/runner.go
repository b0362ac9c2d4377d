package app

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	structaware "github.com/structaware/structaware-go"
)

// Run parses options, assembles the client runtime and drives the view
// loop until the user quits.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if err := options.Init(); err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if options.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	runtime, err := structaware.New(&structaware.Config{
		APIURL:            options.APIURL,
		StorageURL:        options.StateURL,
		SystemPrefersDark: options.Dark,
		Logger:            logger,
	})
	if err != nil {
		return err
	}
	return newApp(runtime, os.Stdin, os.Stdout).Run(context.Background())
}
