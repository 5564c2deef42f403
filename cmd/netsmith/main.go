package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/netsmith-ops/netsmith/logger"
	"github.com/netsmith-ops/netsmith/netsmith/device"
	"github.com/netsmith-ops/netsmith/netsmith/inventory"
	"github.com/netsmith-ops/netsmith/netsmith/reconciler"
)

type flags struct {
	SpecPath       string
	InventoryPath  string
	Group          string
	DeviceName     string
	Username       string
	PasswordPrompt bool
	KeyPassPrompt  bool
	DryRun         bool
	Debug          bool
	CommandRate    float64
	Timeout        time.Duration
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.SpecPath, "spec", "netsmith.yaml", "Path to the desired-state YAML file")
	flag.StringVar(&f.InventoryPath, "inventory", "", "Path to INI file with device inventory")
	flag.StringVar(&f.Group, "group", "", "Only reconcile devices in this inventory group")
	flag.StringVar(&f.DeviceName, "device", "", "Only reconcile this device")
	flag.StringVar(&f.Username, "username", "", "Username for the device CLI session")
	flag.BoolVar(&f.PasswordPrompt, "password", false, "Prompt for a CLI password")
	flag.BoolVar(&f.KeyPassPrompt, "keypass", false, "Prompt for an SSH key passphrase")
	flag.BoolVar(&f.DryRun, "dry-run", false, "Compute commands without submitting them")
	flag.BoolVar(&f.Debug, "debug", false, "Enable debug log level")
	flag.Float64Var(&f.CommandRate, "command-rate", 10, "Maximum device CLI commands per second")
	flag.DurationVar(&f.Timeout, "timeout", 5*time.Minute, "Timeout for one device reconciliation")
	flag.Parse()
	return f
}

func configureLogging(f *flags) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if f.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func readSecret(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read secret")
	}
	return string(secret)
}

// buildOptions resolves credentials up front; devices and reconcilers
// never consult credential stores themselves.
func buildOptions(f *flags, log logger.Logger) []device.DeviceOption {
	options := []device.DeviceOption{
		device.WithCommandRate(f.CommandRate),
		device.WithLogger(log),
	}
	if f.Username != "" {
		options = append(options, device.WithUser(f.Username))
	}
	if f.PasswordPrompt {
		options = append(options, device.WithPassword(readSecret("Enter the device password: ")))
	}
	if f.KeyPassPrompt {
		options = append(options, device.WithKeyPassphrase(readSecret("Enter the key passphrase: ")))
	}
	return options
}

func resolveDevices(f *flags, spec *SpecFile) ([]inventory.Entry, error) {
	if f.InventoryPath != "" {
		entries, err := inventory.Load(f.InventoryPath)
		if err != nil {
			return nil, fmt.Errorf("reading inventory: %w", err)
		}
		return inventory.Filter(entries, f.Group), nil
	}

	// Without an inventory, spec device names double as hostnames.
	var entries []inventory.Entry
	for name := range spec.Devices {
		entries = append(entries, inventory.Entry{Name: name, Hostname: name, Group: "default"})
	}
	return entries, nil
}

func reconcileDevice(ctx context.Context, entry inventory.Entry, spec DeviceSpec, f *flags, options []device.DeviceOption) ([]*reconciler.Report, error) {
	dev, err := device.NewDevice(entry.Name, entry.Hostname, options...)
	if err != nil {
		return nil, err
	}

	var reports []*reconciler.Report
	var result *multierror.Error
	for _, nr := range spec.Requests(f.DryRun) {
		rctx, cancel := context.WithTimeout(ctx, f.Timeout)
		report, err := dev.Reconcile(rctx, nr.Kind, nr.Request)
		cancel()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s %s: %w", entry.Name, nr.Kind, err))
			continue
		}
		reports = append(reports, report)
	}
	return reports, result.ErrorOrNil()
}

func main() {
	f := parseFlags()
	configureLogging(f)
	log := logger.New()

	spec, err := LoadSpec(f.SpecPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load desired-state spec")
	}

	entries, err := resolveDevices(f, spec)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to resolve devices")
	}

	options := buildOptions(f, log)
	ctx := context.Background()

	reports := make(map[string][]*reconciler.Report)
	var result *multierror.Error
	for _, entry := range entries {
		if f.DeviceName != "" && entry.Name != f.DeviceName {
			continue
		}
		deviceSpec, ok := spec.Devices[entry.Name]
		if !ok {
			logrus.WithField("device", entry.Name).Debug("No desired state declared, skipping")
			continue
		}

		devReports, err := reconcileDevice(ctx, entry, deviceSpec, f, options)
		if err != nil {
			result = multierror.Append(result, err)
		}
		if len(devReports) > 0 {
			reports[entry.Name] = devReports
		}
	}

	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to encode reports")
	}
	fmt.Println(string(out))

	if err := result.ErrorOrNil(); err != nil {
		for _, e := range result.Errors {
			logrus.WithError(e).Error("Reconciliation error")
		}
		os.Exit(1)
	}
}
