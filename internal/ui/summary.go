package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary is the boot outcome presented to the console.
type Summary struct {
	SSID       string
	Password   string
	URL        string
	AuthMode   string
	AccessPt   bool
	WebServer  bool
	ListenAddr string
	MDNS       bool
}

// RenderSummary renders s in a box of the given width.
func RenderSummary(s Summary, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("ESP32 is running as WiFi Access Point"))
	b.WriteString("\n\n")

	b.WriteString(field("SSID", s.SSID))
	b.WriteString(field("Password", s.Password))
	b.WriteString(field("Auth", s.AuthMode))
	b.WriteString(field("Visit", s.URL))
	b.WriteString("\n")

	b.WriteString(status("Access point", s.AccessPt, ""))
	b.WriteString(status("Web server", s.WebServer, s.ListenAddr))
	b.WriteString(status("mDNS", s.MDNS, ""))

	return BoxStyle(width).Render(strings.TrimRight(b.String(), "\n"))
}

func field(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, KeyStyle.Render(key+":"), ValueStyle.Render(value)) + "\n"
}

func status(name string, up bool, detail string) string {
	marker, style := DegradedMarker, DegradedStyle
	if up {
		marker, style = UpMarker, UpStyle
	}
	line := style.Render(marker) + " " + name
	if detail != "" {
		line += " " + KeyStyle.UnsetWidth().Render("("+detail+")")
	}
	return line + "\n"
}
