// Package interactive provides the interactive command loop for
// iio-explore.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/openiio/iio-go/pkg/discovery"
	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/model"
	"github.com/openiio/iio-go/pkg/persistence"
)

// Explorer handles interactive mode for iio-explore.
type Explorer struct {
	ctx    *model.Context
	store  *persistence.Store
	params iioxml.Params
	rl     *readline.Instance
}

// New creates a new interactive explorer. The context may be nil; use
// the load or restore commands to get one.
func New(ctx *model.Context, store *persistence.Store, params iioxml.Params) (*Explorer, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "iio> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Explorer{
		ctx:    ctx,
		store:  store,
		params: params,
		rl:     rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (e *Explorer) Stdout() io.Writer {
	return e.rl.Stdout()
}

// Run starts the interactive command loop.
func (e *Explorer) Run(ctx context.Context, cancel context.CancelFunc) {
	defer e.rl.Close()

	e.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := e.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(e.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			e.printHelp()

		case "load", "l":
			e.cmdLoad(args)

		case "info", "i":
			e.cmdInfo()

		case "devices", "d":
			e.cmdDevices()

		case "device":
			e.cmdDevice(args)

		case "channel", "c":
			e.cmdChannel(args)

		case "mask", "m":
			e.cmdMask(args)

		case "enable":
			e.cmdMaskBit(args, true)

		case "disable":
			e.cmdMaskBit(args, false)

		case "xml":
			e.cmdXML()

		case "save":
			e.cmdSave(args)

		case "snapshots", "ls":
			e.cmdSnapshots()

		case "restore":
			e.cmdRestore(args)

		case "rm":
			e.cmdRemove(args)

		case "scan":
			e.cmdScan(args)

		case "quit", "exit", "q":
			fmt.Fprintln(e.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(e.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (e *Explorer) printHelp() {
	fmt.Fprintln(e.rl.Stdout(), `
IIO Explorer Commands:
  Browsing:
    load <file|xml>         - Load a context description
    info                    - Show context summary
    devices                 - List devices
    device <id>             - Show device attributes and channels
    channel <dev> <id> [out] - Show channel details
    xml                     - Re-emit the context as XML

  Scan Mask:
    mask <dev>              - Show the device's channels mask
    enable <dev> <chn>      - Set the channel's mask bit
    disable <dev> <chn>     - Clear the channel's mask bit

  Snapshots:
    save <name>             - Save the context to the snapshot store
    snapshots               - List stored snapshots
    restore <name>          - Load a stored snapshot
    rm <name>               - Delete a stored snapshot

  Discovery:
    scan [timeout]          - Discover network daemons via mDNS

  General:
    help                    - Show this help
    quit                    - Exit`)
}

// requireContext reports whether a context is loaded, complaining when
// not.
func (e *Explorer) requireContext() bool {
	if e.ctx == nil {
		fmt.Fprintln(e.rl.Stdout(), "No context loaded (use 'load' or 'restore')")
		return false
	}
	return true
}

// cmdLoad handles the load command.
func (e *Explorer) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: load <file.xml | xml-document>")
		return
	}

	arg := strings.Join(args, " ")
	ctx, err := iioxml.CreateContext(iioxml.SourceFromArg(arg), e.params)
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Load failed: %v\n", err)
		return
	}

	e.ctx = ctx
	fmt.Fprintf(e.rl.Stdout(), "Loaded context %q with %d devices\n", ctx.Name(), len(ctx.Devices()))
}

// cmdInfo shows the context summary.
func (e *Explorer) cmdInfo() {
	if !e.requireContext() {
		return
	}

	fmt.Fprintln(e.rl.Stdout(), "\nContext")
	fmt.Fprintln(e.rl.Stdout(), "-------------------------------------------")
	fmt.Fprintf(e.rl.Stdout(), "  Name:        %s\n", e.ctx.Name())
	if e.ctx.Description() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Description: %s\n", e.ctx.Description())
	}
	if major, minor, gitTag := e.ctx.Version(); gitTag != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Version:     %d.%d (%s)\n", major, minor, gitTag)
	}
	fmt.Fprintf(e.rl.Stdout(), "  Devices:     %d\n", len(e.ctx.Devices()))

	attrs := e.ctx.Attrs()
	fmt.Fprintf(e.rl.Stdout(), "  Attributes:  %d\n", len(attrs))
	for _, a := range attrs {
		fmt.Fprintf(e.rl.Stdout(), "    %s: %s\n", a.Name, a.Value)
	}
	fmt.Fprintln(e.rl.Stdout())
}

// cmdDevices lists the devices.
func (e *Explorer) cmdDevices() {
	if !e.requireContext() {
		return
	}

	devices := e.ctx.Devices()
	if len(devices) == 0 {
		fmt.Fprintln(e.rl.Stdout(), "No devices")
		return
	}

	for _, dev := range devices {
		name := dev.Name()
		if dev.Label() != "" {
			name = dev.Label()
		}
		fmt.Fprintf(e.rl.Stdout(), "  %-16s %-24s %d channels\n", dev.ID(), name, len(dev.Channels()))
	}
}

// cmdDevice shows one device in detail.
func (e *Explorer) cmdDevice(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: device <id>")
		return
	}

	dev := e.findDevice(args[0])
	if dev == nil {
		return
	}

	fmt.Fprintf(e.rl.Stdout(), "\nDevice %s\n", dev.ID())
	fmt.Fprintln(e.rl.Stdout(), "-------------------------------------------")
	if dev.Name() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Name:  %s\n", dev.Name())
	}
	if dev.Label() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Label: %s\n", dev.Label())
	}

	e.printAttrList(dev.Attrs(model.NamespaceDevice), "Device attributes")
	e.printAttrList(dev.Attrs(model.NamespaceBuffer), "Buffer attributes")
	e.printAttrList(dev.Attrs(model.NamespaceDebug), "Debug attributes")

	channels := dev.Channels()
	fmt.Fprintf(e.rl.Stdout(), "  Channels (%d):\n", len(channels))
	for _, chn := range channels {
		direction := "in "
		if chn.IsOutput() {
			direction = "out"
		}
		scan := ""
		if chn.IsScanElement() {
			scan = fmt.Sprintf("  index %d", chn.Index())
		}
		fmt.Fprintf(e.rl.Stdout(), "    [%2d] %s %-16s%s\n", chn.Number(), direction, chn.ID(), scan)
	}
	fmt.Fprintln(e.rl.Stdout())
}

func (e *Explorer) printAttrList(list *model.AttrList, what string) {
	if list.Len() == 0 {
		return
	}
	fmt.Fprintf(e.rl.Stdout(), "  %s (%d):\n", what, list.Len())
	for i := 0; i < list.Len(); i++ {
		fmt.Fprintf(e.rl.Stdout(), "    %s\n", list.Name(i))
	}
}

// cmdChannel shows one channel in detail.
func (e *Explorer) cmdChannel(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: channel <device-id> <channel-id> [out]")
		return
	}

	dev := e.findDevice(args[0])
	if dev == nil {
		return
	}

	output := len(args) >= 3 && args[2] == "out"
	chn := dev.Channel(args[1], output)
	if chn == nil {
		fmt.Fprintf(e.rl.Stdout(), "Channel not found: %s\n", args[1])
		return
	}

	direction := "input"
	if chn.IsOutput() {
		direction = "output"
	}

	fmt.Fprintf(e.rl.Stdout(), "\nChannel %s (%s)\n", chn.ID(), direction)
	fmt.Fprintln(e.rl.Stdout(), "-------------------------------------------")
	if chn.Name() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Name:     %s\n", chn.Name())
	}
	if chn.Kind() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Kind:     %s\n", chn.Kind())
	}
	if chn.Modifier() != "" {
		fmt.Fprintf(e.rl.Stdout(), "  Modifier: %s\n", chn.Modifier())
	}
	fmt.Fprintf(e.rl.Stdout(), "  Number:   %d\n", chn.Number())

	if chn.IsScanElement() {
		fmt.Fprintf(e.rl.Stdout(), "  Index:    %d\n", chn.Index())
		if f := chn.Format(); f.Repeat >= 1 {
			fmt.Fprintf(e.rl.Stdout(), "  Format:   %s\n", iioxml.EncodeFormat(f))
			if f.WithScale {
				fmt.Fprintf(e.rl.Stdout(), "  Scale:    %s\n", iioxml.EncodeScale(f.Scale))
			}
		}
	}

	attrs := chn.Attrs()
	if len(attrs) > 0 {
		fmt.Fprintf(e.rl.Stdout(), "  Attributes (%d):\n", len(attrs))
		for _, a := range attrs {
			fmt.Fprintf(e.rl.Stdout(), "    %-24s %s\n", a.Name, a.Filename)
		}
	}
	fmt.Fprintln(e.rl.Stdout())
}

// cmdMask shows a device's channels mask.
func (e *Explorer) cmdMask(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: mask <device-id>")
		return
	}

	dev := e.findDevice(args[0])
	if dev == nil {
		return
	}

	mask := dev.Mask()
	fmt.Fprintf(e.rl.Stdout(), "Mask: %d of %d channels enabled (%d words)\n",
		mask.Count(), mask.Len(), mask.Words())
	for _, chn := range dev.Channels() {
		state := " "
		if mask.Test(chn.Number()) {
			state = "*"
		}
		fmt.Fprintf(e.rl.Stdout(), "  [%s] %2d %s\n", state, chn.Number(), chn.ID())
	}
}

// cmdMaskBit sets or clears one channel's mask bit.
func (e *Explorer) cmdMaskBit(args []string, set bool) {
	verb := "enable"
	if !set {
		verb = "disable"
	}
	if len(args) < 2 {
		fmt.Fprintf(e.rl.Stdout(), "Usage: %s <device-id> <channel-id>\n", verb)
		return
	}

	dev := e.findDevice(args[0])
	if dev == nil {
		return
	}

	chn := dev.Channel(args[1], false)
	if chn == nil {
		chn = dev.Channel(args[1], true)
	}
	if chn == nil {
		fmt.Fprintf(e.rl.Stdout(), "Channel not found: %s\n", args[1])
		return
	}

	mask := dev.Mask()
	var err error
	if set {
		err = mask.Set(chn.Number())
	} else {
		err = mask.Clear(chn.Number())
	}
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Failed to %s: %v\n", verb, err)
		return
	}
	fmt.Fprintf(e.rl.Stdout(), "%s %sd\n", chn.ID(), verb)
}

// cmdXML re-emits the loaded context.
func (e *Explorer) cmdXML() {
	if !e.requireContext() {
		return
	}

	text, err := iioxml.EncodeContext(e.ctx)
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Encode failed: %v\n", err)
		return
	}
	fmt.Fprintln(e.rl.Stdout(), text)
}

// cmdSave saves the context to the snapshot store.
func (e *Explorer) cmdSave(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: save <name>")
		return
	}
	if !e.requireContext() {
		return
	}

	snap, err := e.store.Save(args[0], e.ctx)
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(e.rl.Stdout(), "Saved snapshot %q (%s)\n", snap.Name, snap.ID)
}

// cmdSnapshots lists the stored snapshots.
func (e *Explorer) cmdSnapshots() {
	snaps, err := e.store.List()
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "List failed: %v\n", err)
		return
	}
	if len(snaps) == 0 {
		fmt.Fprintln(e.rl.Stdout(), "No snapshots")
		return
	}

	for _, snap := range snaps {
		fmt.Fprintf(e.rl.Stdout(), "  %-16s %2d devices  %s\n",
			snap.Name, snap.Devices, snap.SavedAt.Format("2006-01-02 15:04:05"))
	}
}

// cmdRestore loads a stored snapshot.
func (e *Explorer) cmdRestore(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: restore <name>")
		return
	}

	ctx, err := e.store.Load(args[0], e.params)
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Restore failed: %v\n", err)
		return
	}

	e.ctx = ctx
	fmt.Fprintf(e.rl.Stdout(), "Restored context %q with %d devices\n", ctx.Name(), len(ctx.Devices()))
}

// cmdRemove deletes a stored snapshot.
func (e *Explorer) cmdRemove(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(e.rl.Stdout(), "Usage: rm <name>")
		return
	}

	if err := e.store.Remove(args[0]); err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Remove failed: %v\n", err)
		return
	}
	fmt.Fprintln(e.rl.Stdout(), "Snapshot removed")
}

// cmdScan discovers network daemons via mDNS.
func (e *Explorer) cmdScan(args []string) {
	timeout := discovery.BrowseTimeout
	if len(args) >= 1 {
		d, err := time.ParseDuration(args[0])
		if err != nil {
			fmt.Fprintf(e.rl.Stdout(), "Invalid timeout: %v\n", err)
			return
		}
		timeout = d
	}

	browser, err := discovery.NewMDNSBrowser(discovery.BrowserConfig{BrowseTimeout: timeout})
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Scan failed: %v\n", err)
		return
	}
	defer browser.Stop()

	fmt.Fprintf(e.rl.Stdout(), "Scanning for %s...\n", timeout)
	daemons, err := browser.FindAll(context.Background())
	if err != nil {
		fmt.Fprintf(e.rl.Stdout(), "Scan failed: %v\n", err)
		return
	}

	if len(daemons) == 0 {
		fmt.Fprintln(e.rl.Stdout(), "No network daemons found")
		return
	}
	for _, d := range daemons {
		fmt.Fprintf(e.rl.Stdout(), "  %-24s %s\n", d.InstanceName, d.URI())
	}
}

// findDevice resolves a device by id, falling back to name and label.
func (e *Explorer) findDevice(id string) *model.Device {
	if !e.requireContext() {
		return nil
	}

	if dev := e.ctx.Device(id); dev != nil {
		return dev
	}
	for _, dev := range e.ctx.Devices() {
		if dev.Name() == id || dev.Label() == id {
			return dev
		}
	}
	fmt.Fprintf(e.rl.Stdout(), "Device not found: %s\n", id)
	return nil
}
