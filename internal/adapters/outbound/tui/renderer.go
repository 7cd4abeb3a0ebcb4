package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/credence/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	orange  = lipgloss.Color("#FB923C")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	flagStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAnalysis formats one analysis result for terminal output.
func RenderAnalysis(a *domain.Analysis) string {
	var b strings.Builder

	// ── Header ──
	color := scoreColor(a.Score)
	title := headerStyle.Render("credence")
	subtitle := dimStyle.Render("Credibility Score")
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d / 100", a.Score))
	verdictStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(verdictText(a.Verdict))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdictStyled))
	b.WriteString("\n\n")

	// ── Summary ──
	fmt.Fprintf(&b, "  %s %s  %s\n", labelStyle.Render(padRight("Score", 14)), coloredBar(a.Score, 20), dimStyle.Render(a.Interpretation.Label))
	fmt.Fprintf(&b, "  %s %s  %s\n", labelStyle.Render(padRight("Confidence", 14)), coloredBar(a.ConfidenceLevel, 20), dimStyle.Render(fmt.Sprintf("%d%%", a.ConfidenceLevel)))
	if a.Interpretation.Description != "" {
		b.WriteString("  " + faintStyle.Render(a.Interpretation.Description) + "\n")
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	if a.Explanation != "" {
		b.WriteString("  " + titleStyle.Render("Assessment") + "\n")
		b.WriteString("    " + dimStyle.Render(a.Explanation) + "\n\n")
	}

	renderList(&b, "Reasoning", a.Reasoning, infoStyle.Render("•"))
	renderList(&b, "Red flags", a.Flags, flagStyle.Render("!"))

	// ── Sources ──
	if len(a.Sources) > 0 {
		b.WriteString("  " + titleStyle.Render("Related coverage") + "\n")
		for _, s := range a.Sources {
			fmt.Fprintf(&b, "    %s %s  %s\n", passStyle.Render("●"), s.Name, faintStyle.Render(s.URL))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  " + dimStyle.Render("No related coverage found.") + "\n\n")
	}

	if a.ContentHash != "" {
		b.WriteString("  " + faintStyle.Render("hash "+a.ContentHash) + "\n")
	}

	return b.String()
}

func renderList(b *strings.Builder, title string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "    %s %s\n", bullet, dimStyle.Render(item))
	}
	b.WriteString("\n")
}

// RenderConsensus formats the settled verdict and the live score for one
// news item.
func RenderConsensus(aiScore int, votes domain.VoteCounts, c domain.ConsensusResult, d domain.DynamicScoreResult) string {
	var b strings.Builder

	status := warnStyle.Render("open")
	if c.IsFinalized {
		status = passStyle.Render("finalized")
	}

	title := headerStyle.Render("Consensus")
	verdict := lipgloss.NewStyle().Bold(true).Foreground(consensusColor(c.Verdict)).Render(strings.ToUpper(c.Verdict.String()))
	final := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(c.FinalScore)).Render(fmt.Sprintf("%d / 100", c.FinalScore))
	b.WriteString(boxStyle.Render(title + "\n\n" + final + "  " + verdict + "  " + status))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s  %d\n", labelStyle.Render(padRight("AI score", 14)), coloredBar(aiScore, 20), aiScore)
	fmt.Fprintf(&b, "  %s %s  %d\n", labelStyle.Render(padRight("Community", 14)), coloredBar(d.CommunityScore, 20), d.CommunityScore)
	fmt.Fprintf(&b, "  %s %s  %d%%\n", labelStyle.Render(padRight("Confidence", 14)), coloredBar(c.Confidence, 20), c.Confidence)

	b.WriteString("\n  " + separatorLine + "\n\n")

	fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
		passStyle.Render(fmt.Sprintf("%d real", votes.Real)),
		failStyle.Render(fmt.Sprintf("%d fake", votes.Fake)),
		warnStyle.Render(fmt.Sprintf("%d uncertain", votes.Uncertain)),
		dimStyle.Render(fmt.Sprintf("(%d total)", votes.Total)),
	)

	fmt.Fprintf(&b, "\n  %s %s  %s\n",
		labelStyle.Render(padRight("Live score", 14)),
		lipgloss.NewStyle().Bold(true).Foreground(scoreColor(d.DynamicScore)).Render(fmt.Sprintf("%d", d.DynamicScore)),
		lipgloss.NewStyle().Foreground(ConfidenceColor(d.Confidence)).Render(d.Confidence.Label()),
	)
	fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("AI weight %.0f%% · votes %.0f%%", d.AIWeight*100, d.VoteWeight*100)))

	return b.String()
}

// RenderReputation formats a one-line domain reputation.
func RenderReputation(rawURL string, r domain.DomainReputation) string {
	tier := lipgloss.NewStyle().Bold(true).Foreground(tierColor(r.Tier)).Render(string(r.Tier))
	return fmt.Sprintf("  %s  %s %d  %s\n    %s\n",
		titleStyle.Render(rawURL), coloredBar(r.Score, 20), r.Score, tier, dimStyle.Render(r.Notes))
}

// RenderNews formats a registered news item header.
func RenderNews(rec *domain.NewsRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", faintStyle.Render(fmt.Sprintf("#%d", rec.ID)), titleStyle.Render(rec.Title))
	if rec.SourceURL != "" {
		b.WriteString("    " + dimStyle.Render(rec.SourceURL) + "\n")
	}
	if !rec.Timestamp.IsZero() {
		b.WriteString("    " + faintStyle.Render(rec.Timestamp.Format("2006-01-02 15:04")) + "\n")
	}
	return b.String()
}

// RenderClaims lists extracted claims with their verdicts.
func RenderClaims(claims []domain.Claim) string {
	if len(claims) == 0 {
		return "  " + dimStyle.Render("No factual claims extracted.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Claims") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")
	for _, c := range claims {
		fmt.Fprintf(&b, "  %s %s %s\n", claimIcon(c.Verdict), c.Claim, faintStyle.Render("["+c.Importance+"]"))
		if c.Explanation != "" {
			b.WriteString("      " + dimStyle.Render(c.Explanation) + "\n")
		}
	}
	return b.String()
}

// RenderPatterns lists which misinformation patterns were detected.
func RenderPatterns(p *domain.PatternReport) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Misinformation patterns") + "\n\n")

	checks := []struct {
		name string
		hit  bool
	}{
		{"sensationalism", p.Sensationalism},
		{"emotional language", p.EmotionalLanguage},
		{"lack of sources", p.LackOfSources},
		{"clickbait", p.Clickbait},
		{"biased language", p.BiasedLanguage},
	}
	for _, c := range checks {
		if c.hit {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), c.name)
		} else {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("○"), dimStyle.Render(c.name))
		}
	}
	b.WriteString("\n")
	renderList(&b, "Logical fallacies", p.LogicalFallacies, flagStyle.Render("!"))
	renderList(&b, "Manipulative tactics", p.ManipulativeTactics, flagStyle.Render("!"))
	if p.Notes != "" {
		b.WriteString("\n    " + faintStyle.Render(p.Notes) + "\n")
	}
	return b.String()
}

// RenderHistory formats analysis history for terminal output.
func RenderHistory(entries []domain.AnalysisEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No analysis history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		rev := e.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if rev == "" {
			rev = "·······"
		}

		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%3d/100", e.Score))

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(day),
			faintStyle.Render(rev),
			scoreStyled,
			padRight(verdictText(e.Verdict), 11),
			e.Title,
		)
	}

	return b.String()
}

// ConfidenceColor is the terminal color of a live-score confidence label.
func ConfidenceColor(c domain.ConfidenceLabel) lipgloss.Color {
	switch c {
	case domain.ConfidenceHigh:
		return success
	case domain.ConfidenceMedium:
		return warning
	default:
		return dim
	}
}

func verdictText(v domain.AnalysisVerdict) string {
	switch v {
	case domain.AnalysisLikelyReal:
		return "likely real"
	case domain.AnalysisLikelyFake:
		return "likely fake"
	default:
		return "uncertain"
	}
}

func claimIcon(verdict string) string {
	switch strings.ToLower(verdict) {
	case "true":
		return passStyle.Render("✓")
	case "false":
		return failStyle.Render("✗")
	default:
		return warnStyle.Render("?")
	}
}

func consensusColor(v domain.Verdict) lipgloss.Color {
	switch v {
	case domain.VerdictReal:
		return success
	case domain.VerdictFake:
		return danger
	case domain.VerdictUncertain:
		return warning
	default:
		return dim
	}
}

func tierColor(t domain.Tier) lipgloss.Color {
	switch t {
	case domain.TierHighlyTrusted:
		return success
	case domain.TierTrusted:
		return lime
	case domain.TierQuestionable:
		return danger
	default:
		return warning
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

// scoreColor follows the credibility bands: 85, 70, 55, 40.
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 85:
		return success
	case score >= 70:
		return lime
	case score >= 55:
		return warning
	case score >= 40:
		return orange
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
