// Package filter screens parsed articles for spam, clickbait, and quality
// problems before any further processing.
//
// Every match carries a severity: reject drops the article, flag keeps it
// with the reason attached. Rejections are never a silent drop: all three
// result lists are retained for audit.
package filter

import (
	"regexp"
	"strings"

	"newsbrief/internal/logger"
	"newsbrief/internal/model"
)

type Severity string

const (
	SeverityReject Severity = "reject"
	SeverityFlag   Severity = "flag"
)

// Issue is one matched problem on an article.
type Issue struct {
	Reason   string
	Severity Severity
}

// Verdict records why an article was rejected or flagged.
type Verdict struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	SourceID string   `json:"sourceId"`
	Reasons  []string `json:"reasons"`
}

// Result keeps all three outcome lists for transparency.
type Result struct {
	Kept     []model.ArticleRecord
	Rejected []Verdict
	Flagged  []Verdict
}

type pattern struct {
	re       *regexp.Regexp
	reason   string
	severity Severity
}

// Clickbait title patterns: excessive hype, manufactured urgency.
var clickbaitPatterns = []pattern{
	{regexp.MustCompile(`(?i)you won'?t believe`), "clickbait: manufactured shock", SeverityReject},
	{regexp.MustCompile(`(?i)shocking\s*(truth|reason|fact|secret)`), "clickbait: shock bait", SeverityReject},
	{regexp.MustCompile(`(?i)\d+\s*(reason|thing|way|secret|trick|hack)s?\s*(you|that|why|to)`), "clickbait: listicle bait", SeverityFlag},
	{regexp.MustCompile(`(?i)this\s*(one\s*)?(weird|simple|strange)\s*(trick|hack)`), "clickbait: trick bait", SeverityReject},
	{regexp.MustCompile(`(?i)what happens next`), "clickbait: manufactured suspense", SeverityFlag},
	{regexp.MustCompile(`(?i)doctors?\s*(hate|don'?t want)`), "clickbait: authority bait", SeverityReject},
	{regexp.MustCompile(`(?i)is\s*dead`), "clickbait: death bait", SeverityFlag},
}

// Promotional/spam patterns, matched against title + summary.
var spamPatterns = []pattern{
	{regexp.MustCompile(`(?i)\b(buy now|order now|limited time|act now|don'?t miss)\b`), "spam: promotional", SeverityReject},
	{regexp.MustCompile(`(?i)\b(free shipping|discount code|promo code|coupon)\b`), "spam: commercial", SeverityReject},
	{regexp.MustCompile(`(?i)\b(affiliate|sponsored content|paid partnership)\b`), "spam: affiliate", SeverityFlag},
	{regexp.MustCompile(`(?i)\b(subscribe now|sign up free|join now)\b`), "spam: acquisition", SeverityFlag},
	{regexp.MustCompile(`(?i)\$\d+[,.]?\d*\s*(off|savings?|deal)`), "spam: deal promotion", SeverityReject},
}

// Suspicious URL patterns.
var urlPatterns = []pattern{
	{regexp.MustCompile(`(?i)bit\.ly|tinyurl|t\.co|goo\.gl|ow\.ly`), "url: link shortener", SeverityFlag},
	{regexp.MustCompile(`(?i)\.(xyz|top|click|work|loan|racing|date|download|stream|gdn|accountant)/`), "url: suspicious TLD", SeverityReject},
	{regexp.MustCompile(`(?i)[?&](utm_|ref=|aff=|partner=)`), "url: tracking parameters", SeverityFlag},
}

// Articles splits the input into kept, rejected, and flagged sets.
// An article with any reject match is excluded and logged with its reasons;
// flag-only matches keep the article with ContentFlags attached.
func Articles(articles []model.ArticleRecord) Result {
	var res Result

	for _, a := range articles {
		issues := Check(&a)

		var rejects, flags []string
		for _, issue := range issues {
			if issue.Severity == SeverityReject {
				rejects = append(rejects, issue.Reason)
			} else {
				flags = append(flags, issue.Reason)
			}
		}

		if len(rejects) > 0 {
			logger.Debug("article rejected", "title", a.Title, "reasons", strings.Join(rejects, ", "))
			res.Rejected = append(res.Rejected, Verdict{ID: a.ID, Title: a.Title, SourceID: a.SourceID, Reasons: rejects})
			continue
		}

		if len(flags) > 0 {
			a.ContentFlags = flags
			res.Flagged = append(res.Flagged, Verdict{ID: a.ID, Title: a.Title, SourceID: a.SourceID, Reasons: flags})
		}
		res.Kept = append(res.Kept, a)
	}

	return res
}

// Check evaluates one article against all four pattern families.
func Check(a *model.ArticleRecord) []Issue {
	var issues []Issue

	for _, p := range clickbaitPatterns {
		if p.re.MatchString(a.Title) {
			issues = append(issues, Issue{Reason: p.reason, Severity: p.severity})
		}
	}

	text := a.Title + " " + a.Summary
	for _, p := range spamPatterns {
		if p.re.MatchString(text) {
			issues = append(issues, Issue{Reason: p.reason, Severity: p.severity})
		}
	}

	issues = append(issues, qualityIssues(a)...)

	for _, p := range urlPatterns {
		if p.re.MatchString(a.Link) {
			issues = append(issues, Issue{Reason: p.reason, Severity: p.severity})
		}
	}

	return issues
}

// qualityIssues applies the structural heuristics: excessive capitalization,
// too-short titles, stub bodies, keyword stuffing.
func qualityIssues(a *model.ArticleRecord) []Issue {
	var issues []Issue

	if alpha := onlyLetters(a.Title); len(alpha) >= 10 {
		upper := 0
		for _, r := range alpha {
			if r >= 'A' && r <= 'Z' {
				upper++
			}
		}
		if float64(upper)/float64(len(alpha)) > 0.5 {
			issues = append(issues, Issue{Reason: "quality: excessive caps", Severity: SeverityFlag})
		}
	}

	if len(strings.TrimSpace(a.Title)) < 8 {
		issues = append(issues, Issue{Reason: "quality: title too short", Severity: SeverityReject})
	}

	if len(strings.TrimSpace(a.Summary+a.Content)) < 20 {
		issues = append(issues, Issue{Reason: "quality: stub article", Severity: SeverityFlag})
	}

	counts := map[string]int{}
	for _, w := range strings.Fields(strings.ToLower(a.Title)) {
		if len(w) > 3 {
			counts[w]++
			if counts[w] > 4 {
				issues = append(issues, Issue{Reason: "quality: keyword stuffing", Severity: SeverityReject})
				break
			}
		}
	}

	return issues
}

func onlyLetters(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			out = append(out, r)
		}
	}
	return out
}
