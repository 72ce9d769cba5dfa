package app

import (
	"fmt"
	"strings"
	"time"

	"newsbrief/internal/classify"
	"newsbrief/internal/model"
	"newsbrief/internal/pipeline"
)

var registerEmoji = map[string]string{
	"alert":      "🚨",
	"concern":    "⚠️",
	"analysis":   "🔍",
	"awareness":  "📰",
	"curiosity":  "💡",
	"reflection": "🌙",
}

// FormatBrief renders the brief as a Telegram HTML message: grouped
// stories first with their source list, then standalone articles, capped
// at max entries total.
func FormatBrief(res *pipeline.Result, max int) string {
	var b strings.Builder

	date := time.UnixMilli(res.Brief.GeneratedAt).UTC().Format("Mon, 2 Jan 2006")
	b.WriteString(fmt.Sprintf("📋 <b>Daily Brief</b> · %s\n", date))
	b.WriteString(fmt.Sprintf("⏱ %.1f min · load %.2f · %s mode\n", res.Brief.TotalReadTime, res.Brief.EmotionalLoad, res.Brief.Mode))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	count := 0

	for _, g := range res.Groups {
		if count >= max {
			break
		}
		count++
		b.WriteString(formatGroup(g, count))
	}

	for _, a := range res.Ungrouped {
		if count >= max {
			break
		}
		count++
		b.WriteString(formatArticle(a, count))
	}

	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString(fmt.Sprintf("📚 %d of %d candidates selected", res.Brief.ArticleCount, res.Brief.CandidateCount))

	return b.String()
}

func formatGroup(g model.StoryGroup, number int) string {
	var b strings.Builder

	emoji := registerEmoji[g.Register]
	if emoji == "" {
		emoji = "📰"
	}

	rep := g.Representative
	b.WriteString(fmt.Sprintf("%s <b>%d.</b> <a href=\"%s\">%s</a>\n", emoji, number, rep.Link, g.Headline))
	if label := classify.DomainLabels[g.Domain]; label != "" {
		b.WriteString(fmt.Sprintf("<i>%s · %d outlets</i>\n", label, g.ArticleCount))
	} else {
		b.WriteString(fmt.Sprintf("<i>%d outlets</i>\n", g.ArticleCount))
	}

	if rep.Summary != "" {
		b.WriteString(trimText(rep.Summary, 300))
		b.WriteString("\n")
	}

	names := make([]string, 0, len(g.Sources))
	for _, s := range g.Sources {
		names = append(names, s.SourceName)
	}
	b.WriteString(fmt.Sprintf("🗞 %s\n\n", strings.Join(names, ", ")))

	return b.String()
}

func formatArticle(a pipeline.ArticleView, number int) string {
	var b strings.Builder

	emoji := registerEmoji[a.Register]
	if emoji == "" {
		emoji = "📰"
	}

	b.WriteString(fmt.Sprintf("%s <b>%d.</b> <a href=\"%s\">%s</a>\n", emoji, number, a.Link, a.Title))
	if label := classify.DomainLabels[a.Domain]; label != "" {
		b.WriteString(fmt.Sprintf("<i>%s · %s · %.1f min</i>\n", label, a.SourceName, a.ReadTimeMin))
	} else {
		b.WriteString(fmt.Sprintf("<i>%s · %.1f min</i>\n", a.SourceName, a.ReadTimeMin))
	}

	if a.Summary != "" {
		b.WriteString(trimText(a.Summary, 300))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// trimText cuts at the last full sentence under the limit.
func trimText(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}

	cut := text[:limit]
	if i := strings.LastIndex(cut, "."); i > 0 {
		return cut[:i+1]
	}
	return cut + "..."
}
