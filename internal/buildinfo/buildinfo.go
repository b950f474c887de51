// Package buildinfo carries the static program metadata shown in banners.
// Every field may be overridden at link time, e.g.:
//
// 	go build -ldflags "-X github.com/jcorbin/mdwrap/internal/buildinfo.Version=1.2.3"
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Name        = "mdwrap"
	Version     = ""
	Description = "a minimal line oriented markdown to HTML translator"
	Author      = "the mdwrap authors"
	Homepage    = "https://github.com/jcorbin/mdwrap"
)

// Info is a snapshot of the program metadata.
type Info struct {
	Name        string
	Version     string
	Description string
	Author      string
	Homepage    string
}

var (
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Get returns the linked metadata. An unset Version falls back to the main
// module version recorded by the go tool, then to "dev".
func Get() Info {
	info := Info{
		Name:        Name,
		Version:     Version,
		Description: Description,
		Author:      Author,
		Homepage:    Homepage,
	}
	if info.Version == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = strings.TrimPrefix(bi.Main.Version, "v")
		} else {
			info.Version = "dev"
		}
	}
	return info
}

// Title returns the one line banner, e.g. "mdwrap (v1.2.3), description".
func (info Info) Title() string {
	return fmt.Sprintf("%v (v%v), %v", info.Name, info.Version, info.Description)
}

// Long returns the multi line banner printed with usage.
func (info Info) Long() string {
	return fmt.Sprintf("Written by: %v\nHomepage: %v\nUsage: %v <somefile>.md",
		authorStyle.Render(info.Author), info.Homepage, info.Name)
}

// Alert styles a message for display as an error.
func Alert(msg string) string {
	return errorStyle.Render(msg)
}
