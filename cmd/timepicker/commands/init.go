package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/timepicker/config"
)

// Init implements the 'timepicker init' command
func Init(args []string) error {
	return initTo(os.Stdout, args)
}

func initTo(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", "", "File to write (default timepicker.toml, or timepicker.yaml with --yaml)")
	useYAML := fs.Bool("yaml", false, "Write YAML instead of TOML")
	mode := fs.String("mode", "single", "Picker mode: single or two-step")
	format := fs.String("format", "", "Time format: 12h, 24h, or empty for the host default")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target := *path
	if target == "" {
		target = config.DefaultFile
		if *useYAML {
			target = "timepicker.yaml"
		}
	}
	if _, err := os.Stat(target); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	cfg := config.Default()
	cfg.Picker.Mode = *mode
	cfg.Picker.Format = *format
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(target, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", target)
	return nil
}
