// Command iio-explore is an interactive browser for IIO context
// descriptions.
//
// It loads a context from an XML description file or an inline
// document, lets you walk devices, channels, attributes and sample
// formats, toggle scan-element masks, and keep named snapshots in a
// local store.
//
// Usage:
//
//	iio-explore [flags] [<file.xml | xml-document>]
//
// Examples:
//
//	# Browse a description file
//	iio-explore pluto.xml
//
//	# Start empty and load from the snapshot store
//	iio-explore -store ~/.iio-snapshots
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openiio/iio-go/cmd/iio-explore/interactive"
	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/model"
	"github.com/openiio/iio-go/pkg/persistence"
)

func main() {
	storeDir := flag.String("store", ".iio-snapshots", "Directory for named context snapshots")
	lenient := flag.Bool("lenient", false, "Keep building when a scale value is malformed")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `iio-explore - interactive browser for IIO context descriptions

Usage:
  iio-explore [flags] [<file.xml | xml-document>]

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	params := iioxml.Params{LenientScale: *lenient}

	var ctxModel *model.Context
	if flag.NArg() > 0 {
		var err error
		ctxModel, err = iioxml.CreateContext(iioxml.SourceFromArg(flag.Arg(0)), params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	explorer, err := interactive.New(ctxModel, persistence.NewStore(*storeDir), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go explorer.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}
}
