package commands

import (
	"context"
	"flag"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/host/gioview"
	"github.com/agiangrant/timepicker/internal/logger"
	"github.com/agiangrant/timepicker/internal/watch"
)

// Demo implements the 'timepicker demo' command. It never returns on
// success: the Gio event loop owns the main goroutine and the process
// exits when the window closes.
func Demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", config.DefaultFile, "Config file")
	mode := fs.String("mode", "", "Override the picker mode: single or two-step")
	use24Hour := fs.Bool("24h", false, "Default to 24-hour format when the config leaves it unset")
	watchConfig := fs.Bool("watch", true, "Restyle the dial when the config file changes")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.Picker.Mode = *mode
	}
	opts, err := cfg.PickerOptions(*use24Hour)
	if err != nil {
		return err
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title(cfg.App.Title))
		w.Option(app.Size(unit.Dp(cfg.App.Width), unit.Dp(cfg.App.Height)))

		d := newDemo(w, opts)
		if *watchConfig {
			d.watch(*configPath)
		}
		err := d.loop()
		logger.Close()
		if err != nil {
			logger.Errorf("Demo window failed: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

type demo struct {
	window *app.Window
	theme  *material.Theme
	picker *timepicker.Picker
	dial   *gioview.Dial

	is24Hour widget.Bool
	enabled  widget.Bool
	last     timepicker.PickedTime

	reloads chan config.File
	stop    context.CancelFunc
}

func newDemo(w *app.Window, opts []timepicker.Option) *demo {
	th := material.NewTheme()
	p := timepicker.New(opts...)
	d := &demo{
		window:  w,
		theme:   th,
		picker:  p,
		dial:    gioview.NewDial(p, th),
		last:    p.Time(),
		reloads: make(chan config.File, 1),
		stop:    func() {},
	}
	d.is24Hour.Value = p.Is24Hour()
	d.enabled.Value = p.Enabled()

	p.OnRedraw(w.Invalidate)
	p.OnTimeChanged(func(t timepicker.PickedTime) {
		d.last = t
		logger.Debugf("Picked %s", t)
	})
	return d
}

// watch restyles the dial on config changes. Reloads arrive on a timer
// goroutine and are handed to the frame loop through a channel.
func (d *demo) watch(path string) {
	w, err := watch.New(path, func(cfg config.File) {
		offerLatest(d.reloads, cfg)
		d.window.Invalidate()
	})
	if err != nil {
		logger.Warnf("Config watching disabled: %v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.stop = func() {
		cancel()
		w.Close()
	}
	go w.Run(ctx)
}

// offerLatest puts cfg in the one-slot channel, replacing a reload the
// frame loop has not picked up yet.
func offerLatest(ch chan config.File, cfg config.File) {
	for {
		select {
		case ch <- cfg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (d *demo) loop() error {
	defer d.stop()
	logger.Infof("Demo window opened (%s mode)", d.picker.Mode())

	var ops op.Ops
	for {
		switch e := d.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.update(gtx)
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) update(gtx layout.Context) {
	select {
	case cfg := <-d.reloads:
		if err := cfg.ApplyStyle(d.picker); err != nil {
			logger.Warnf("Config reload rejected: %v", err)
		}
		d.enabled.Value = d.picker.Enabled()
	default:
	}
	if d.is24Hour.Update(gtx) {
		d.picker.SetIs24Hour(d.is24Hour.Value)
		d.last = d.picker.Time()
	}
	if d.enabled.Update(gtx) {
		d.picker.SetEnabled(d.enabled.Value)
	}
}

func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, d.dial.Layout)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.H5(d.theme, "24h  "+d.last.String24Hour()).Layout),
			layout.Rigid(material.H5(d.theme, "12h  "+d.last.String12Hour()).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.CheckBox(d.theme, &d.is24Hour, "24-hour format").Layout),
			layout.Rigid(material.CheckBox(d.theme, &d.enabled, "Enabled").Layout),
		)
	})
}
