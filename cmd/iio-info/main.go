// Command iio-info dumps the attributes of an IIO context.
//
// The context comes from an XML description file, an inline XML
// document, or mDNS discovery of network daemons.
//
// Usage:
//
//	iio-info [flags] <file.xml | xml-document>
//	iio-info -scan
//
// Examples:
//
//	# Dump a context description file
//	iio-info pluto.xml
//
//	# Dump an inline document
//	iio-info '<?xml version="1.0" encoding="utf-8"?><context ...>'
//
//	# Record build diagnostics while parsing a lenient document
//	iio-info -lenient -log build.ilog broken.xml
//
//	# Discover network daemons
//	iio-info -scan
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/openiio/iio-go/pkg/discovery"
	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/inspect"
	"github.com/openiio/iio-go/pkg/log"
)

func main() {
	scan := flag.Bool("scan", false, "Discover network daemons via mDNS instead of reading a description")
	scanTimeout := flag.Duration("scan-timeout", discovery.BrowseTimeout, "How long to browse for daemons")
	lenient := flag.Bool("lenient", false, "Keep building when a scale value is malformed")
	logFile := flag.String("log", "", "Write build diagnostics to a CBOR log file")
	verbose := flag.Bool("verbose", false, "Print build diagnostics to stderr")
	emitXML := flag.Bool("xml", false, "Re-emit the context as XML instead of the attribute tree")
	filenames := flag.Bool("filenames", false, "Show sysfs filenames next to channel attributes")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `iio-info - dump the attributes of an IIO context

Usage:
  iio-info [flags] <file.xml | xml-document>
  iio-info -scan

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *scan {
		if err := runScan(*scanTimeout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: description file or XML document required")
		flag.Usage()
		os.Exit(1)
	}

	logger, closeLog, err := buildLogger(*logFile, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	params := iioxml.Params{
		Logger:       logger,
		LenientScale: *lenient,
	}

	ctx, err := iioxml.CreateContext(iioxml.SourceFromArg(flag.Arg(0)), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *emitXML {
		text, err := iioxml.EncodeContext(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	formatter := inspect.NewFormatter()
	formatter.ShowFilenames = *filenames
	fmt.Print(formatter.FormatContextTree(inspect.InspectContext(ctx)))
}

// buildLogger assembles the build logger from the -log and -verbose
// flags. The returned closer flushes the log file, when there is one.
func buildLogger(path string, verbose bool) (log.Logger, func(), error) {
	var loggers []log.Logger

	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
	}

	closer := func() {}
	if path != "" {
		fl, err := log.NewFileLogger(path)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fl)
		closer = func() { _ = fl.Close() }
	}

	switch len(loggers) {
	case 0:
		return log.NoopLogger{}, closer, nil
	case 1:
		return loggers[0], closer, nil
	default:
		return log.NewMultiLogger(loggers...), closer, nil
	}
}

func runScan(timeout time.Duration) error {
	browser, err := discovery.NewMDNSBrowser(discovery.BrowserConfig{BrowseTimeout: timeout})
	if err != nil {
		return err
	}
	defer browser.Stop()

	daemons, err := browser.FindAll(context.Background())
	if err != nil {
		return err
	}

	if len(daemons) == 0 {
		fmt.Println("No network daemons found.")
		return nil
	}

	for _, d := range daemons {
		fmt.Printf("%s [%s]", d.InstanceName, d.URI())
		if d.Description != "" {
			fmt.Printf(" (%s)", d.Description)
		}
		fmt.Println()
		for _, addr := range d.Addresses {
			fmt.Printf("\t%s\n", addr)
		}
	}
	return nil
}

