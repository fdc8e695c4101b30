package service

import (
	"fmt"
	"strings"
	"time"

	"launchbot/internal/dal"
)

// markdownV2Specials are the characters Telegram requires escaped in
// MarkdownV2 text.
const markdownV2Specials = `_*[]()~` + "`" + `>#+-=|{}.!\`

func escapeMarkdownV2(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownV2Specials, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// humanDuration renders a countdown like "1d 23h 59m"; anything non-positive
// collapses to "0m".
func humanDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	if d <= 0 {
		return "0m"
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// renderLaunch builds the MarkdownV2 notification text for one launch. The
// slug goes into the URL unescaped; feed slugs are plain [a-z0-9-].
func renderLaunch(launch dal.Launch, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s \\- %s](https://rocketlaunch.live/launch/%s)",
		escapeMarkdownV2(launch.Provider.Name),
		escapeMarkdownV2(launch.Vehicle.Name),
		launch.Slug)

	if launch.T0 != nil {
		t0 := launch.T0.Time
		until := t0.Sub(now.Add(time.Second).Round(time.Minute))
		fmt.Fprintf(&sb, "\n%s \\(in *%s*\\)",
			escapeMarkdownV2(t0.Format("2006-01-02 15:04 UTC")),
			escapeMarkdownV2(humanDuration(until)))
	}

	sb.WriteString("\n")
	sb.WriteString(escapeMarkdownV2(launch.Pad.String()))

	if launch.MissionDescription != nil && *launch.MissionDescription != "" {
		sb.WriteString("\n\n")
		sb.WriteString(escapeMarkdownV2(*launch.MissionDescription))
	}

	if launch.Suborbital {
		sb.WriteString("\n\nsuborbital")
	}

	return sb.String()
}
