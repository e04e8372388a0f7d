// Package main provides the CLI entrypoint for number-caster.
//
// number-caster is a debugging tool for the numeric type resolution core:
//   - Loads a resolution policy from a YAML config file
//   - Normalizes column descriptors given as KIND:size:digits arguments
//   - Prints the resolved target type and conversion strategy per column
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"number-caster/handle"
	"number-caster/policy"
	"number-caster/resolve"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML policy config (optional)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	exitCode := 0

	for _, arg := range flag.Args() {
		raw, err := parseColumn(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			exitCode = 1

			continue
		}

		desc := handle.Normalize(raw)

		res := resolve.Column(desc, cfg)
		switch res.Outcome {
		case resolve.OutcomeMapped:
			fmt.Printf("%s -> %s (%s conversion)\n", desc.Description(), res.Mapping.Target, res.Mapping.Conv.Strategy)
		case resolve.OutcomeSkipped:
			fmt.Printf("%s -> skipped\n", desc.Description())
		default:
			fmt.Fprintf(os.Stderr, "%s: %v\n", desc.Description(), res.Err)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: number-caster [-config policy.yaml] KIND:size:digits ...")
	fmt.Fprintln(os.Stderr, "example: number-caster NUMERIC:10:2 NUMERIC:0:-127 VARCHAR:20:0")
}

func loadConfig(path string) (*policy.Config, error) {
	v := viper.New()
	if path == "" {
		return policy.Load(v)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return policy.Load(v)
}

// parseColumn parses a KIND:size:digits descriptor argument.
func parseColumn(arg string) (handle.RawTypeInfo, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return handle.RawTypeInfo{}, fmt.Errorf("expected KIND:size:digits, got %q", arg)
	}

	kind, err := handle.ParseKind(parts[0])
	if err != nil {
		return handle.RawTypeInfo{}, err
	}

	size, err := strconv.Atoi(parts[1])
	if err != nil {
		return handle.RawTypeInfo{}, fmt.Errorf("invalid column size %q", parts[1])
	}

	digits, err := strconv.Atoi(parts[2])
	if err != nil {
		return handle.RawTypeInfo{}, fmt.Errorf("invalid decimal digits %q", parts[2])
	}

	return handle.RawTypeInfo{Kind: kind, ColumnSize: size, DecimalDigits: digits}, nil
}
