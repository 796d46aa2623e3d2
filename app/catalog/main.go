package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/artbay/goapi/app/internal/catalog"
	"github.com/artbay/goapi/base/config"
	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
)

func main() {
	defer log.Sync()

	fs := pflag.NewFlagSet("catalog", pflag.ExitOnError)
	config.AddFlags(fs)
	o := addFlags(fs)
	_ = fs.Parse(os.Args[1:])

	c := ctx.Background()
	if err := config.Load(fs); err != nil {
		c.WithField("err", err).Error("config.Load failed")
		os.Exit(1)
	}

	deps, err := catalog.Build(c)
	if err != nil {
		c.WithField("err", err).Error("catalog.Build failed")
		os.Exit(1)
	}
	defer deps.Close(c)

	if o.interactive {
		err = interactive(c, deps.Catalog, o, os.Stdin, os.Stdout)
	} else {
		err = oneShot(c, deps.Catalog, o, os.Stdout)
	}
	if err != nil {
		c.WithField("err", err).Error("catalog failed")
		deps.Close(c)
		os.Exit(1)
	}
}
