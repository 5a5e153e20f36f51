package generator

import "fmt"

// 文案标题，下标为 ID-1。
var Titles = [4]string{
	"Hook with Social Proof",
	"Problem-Solution Focus",
	"Benefit-Driven",
	"FOMO & Urgency",
}

// Compose fills the four fixed templates for sel. It never fails: missing or
// unknown option values fall back to each table's default entry.
func Compose(sel Selections) []Variation {
	brand := sel.BrandName
	contents := [4]string{
		fmt.Sprintf("🚀 **%s is changing the game!**\n\n%s\n\nReady to level up? Join thousands who've already made the switch! \n\n👆 Click here to get started with %s today!",
			brand, PlatformContent(sel.Platform, 1), brand),
		fmt.Sprintf("💡 **Tired of [common problem]?**\n\n%s solves this with %s\n\n%s",
			brand, PlatformContent(sel.Platform, 2), LanguageCTA(sel.Language)),
		fmt.Sprintf("✨ **Transform your [relevant area] in just minutes!**\n\nWith %s, you can:\n%s\n\n%s",
			brand, PlatformContent(sel.Platform, 3), ToneEnding(sel.Tone)),
		fmt.Sprintf("🔥 **Limited time: %s exclusive access!**\n\n%s\n\nDon't miss out - spaces are filling fast! %s",
			brand, PlatformContent(sel.Platform, 4), AudienceCTA(sel.Audience)),
	}

	out := make([]Variation, 0, len(contents))
	for i, content := range contents {
		out = append(out, Variation{
			ID:       i + 1,
			Title:    Titles[i],
			Content:  content,
			Platform: sel.Platform,
		})
	}
	return out
}
