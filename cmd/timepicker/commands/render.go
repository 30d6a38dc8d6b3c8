package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/anim"
	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/render"
)

// frame is the JSON printed by render.
type frame struct {
	Time     timepicker.PickedTime `json:"time"`
	Display  string                `json:"display"`
	Mode     string                `json:"mode"`
	Step     string                `json:"step"`
	Size     float32               `json:"size"`
	Commands []render.Command      `json:"commands"`
}

// Render implements the 'timepicker render' command
func Render(args []string) error {
	return renderTo(os.Stdout, args)
}

func renderTo(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultFile, "Config file")
	size := fs.Float64("size", 300, "Square extent in pixels")
	at := fs.String("time", "", "Time as HH:MM in 24-hour notation (default now)")
	mode := fs.String("mode", "", "Override the picker mode: single or two-step")
	format := fs.String("format", "", "Override the time format: 12h or 24h")
	step := fs.String("step", "hour", "Two-step only: hour or minute")
	disabled := fs.Bool("disabled", false, "Render the disabled palette")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.Picker.Mode = *mode
	}
	if *format != "" {
		cfg.Picker.Format = *format
	}
	opts, err := cfg.PickerOptions(false)
	if err != nil {
		return err
	}

	// A fake clock lets the glide be run to its end without waiting.
	clock := anim.NewFakeClock(time.Now())
	opts = append(opts, timepicker.WithClock(clock), timepicker.WithSize(float32(*size), float32(*size)))
	p := timepicker.New(opts...)

	if *at != "" {
		t, err := time.Parse("15:04", *at)
		if err != nil {
			return fmt.Errorf("invalid --time %q: want HH:MM", *at)
		}
		is24Hour := p.Is24Hour()
		if err := p.SetTime(t.Hour(), t.Minute()); err != nil {
			return err
		}
		p.SetIs24Hour(is24Hour)
	}
	switch *step {
	case "hour":
		p.SetStep(timepicker.StepHour)
	case "minute":
		p.SetStep(timepicker.StepMinute)
	default:
		return fmt.Errorf("invalid --step %q: want hour or minute", *step)
	}
	if *disabled {
		p.SetEnabled(false)
	}
	p.Tick(clock.Advance(timepicker.AnimationDuration))

	t := p.Time()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(frame{
		Time:     t,
		Display:  t.String(),
		Mode:     p.Mode().String(),
		Step:     p.Step().String(),
		Size:     p.Size(),
		Commands: p.Draw(),
	})
}
