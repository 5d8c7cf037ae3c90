package chromebrowser

import "github.com/chromedp/chromedp"

// Flag is a Chrome command-line switch. An empty Value means a bare boolean
// switch.
type Flag struct {
	Name  string
	Value string
}

// LaunchFlags returns the switches every engine passes to Chrome: container
// friendly sandboxing, no background services, hidden scrollbars.
func LaunchFlags() []Flag {
	return []Flag{
		{Name: "no-first-run"},
		{Name: "no-default-browser-check"},
		{Name: "no-sandbox"},
		{Name: "disable-dev-shm-usage"},
		{Name: "disable-background-networking"},
		{Name: "disable-extensions"},
		{Name: "disable-sync"},
		{Name: "disable-translate"},
		{Name: "metrics-recording-only"},
		{Name: "mute-audio"},
		{Name: "safebrowsing-disable-auto-update"},
		{Name: "hide-scrollbars"},
		{Name: "disable-gpu"},
		{Name: "disable-setuid-sandbox"},
		{Name: "no-zygote"},
		{Name: "force-device-scale-factor", Value: "1"},
		{Name: "disable-features", Value: "VizDisplayCompositor"},
	}
}

// Args renders flags as command-line arguments ("--name" or "--name=value").
func Args(flags []Flag) []string {
	args := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.Value == "" {
			args = append(args, "--"+f.Name)
		} else {
			args = append(args, "--"+f.Name+"="+f.Value)
		}
	}
	return args
}

// AllocatorOptions builds chromedp exec allocator options for the binary at
// execPath. An empty execPath leaves discovery to chromedp.
func AllocatorOptions(execPath string, headless bool) []chromedp.ExecAllocatorOption {
	var opts []chromedp.ExecAllocatorOption
	for _, f := range LaunchFlags() {
		if f.Value == "" {
			opts = append(opts, chromedp.Flag(f.Name, true))
		} else {
			opts = append(opts, chromedp.Flag(f.Name, f.Value))
		}
	}

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}
