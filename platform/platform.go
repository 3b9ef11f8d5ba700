// Package platform answers coarse questions about where the program runs.
package platform

import (
	"context"
	"runtime"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/host"
)

const develVersion = "(devel)"

type Platform struct {
	GOOS   string
	GOARCH string
	// Devel is set for binaries built from a working tree (go run, go test)
	// rather than installed from a tagged module version.
	Devel bool
}

func Current() Platform {
	p := Platform{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		p.Devel = info.Main.Version == "" || info.Main.Version == develVersion
	}
	return p
}

// IsDesktop reports a development build, a native desktop OS or a browser.
func (p Platform) IsDesktop() bool {
	return p.IsEditor() || p.IsDesktopStandalone() || p.IsWeb()
}

func (p Platform) IsDesktopStandalone() bool {
	switch p.GOOS {
	case "windows", "linux", "darwin", "freebsd", "netbsd", "openbsd":
		return true
	}
	return false
}

func (p Platform) IsEditor() bool {
	return p.Devel
}

func (p Platform) IsWeb() bool {
	return p.GOOS == "js" || p.GOOS == "wasip1"
}

func (p Platform) IsMobile() bool {
	return p.GOOS == "android" || p.GOOS == "ios"
}

type Description struct {
	Platform
	Hostname       string
	OS             string
	Family         string
	Version        string
	KernelVersion  string
	Virtualization string
}

// Describe adds host details to p. Host lookups are not available on every
// target; the error is returned together with whatever was filled in.
func Describe(ctx context.Context, p Platform) (Description, error) {
	d := Description{Platform: p}
	info, err := host.InfoWithContext(ctx)
	if info != nil {
		d.Hostname = info.Hostname
		d.OS = info.Platform
		d.Family = info.PlatformFamily
		d.Version = info.PlatformVersion
		d.KernelVersion = info.KernelVersion
		d.Virtualization = info.VirtualizationSystem
	}
	if err != nil {
		return d, errors.Wrap(err, "failed to read host info")
	}
	return d, nil
}
