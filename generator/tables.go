package generator

const (
	defaultPlatform = "Instagram"
	defaultLanguage = "English"
	defaultTone     = "Friendly"
	defaultAudience = "Followers"
)

// 只覆盖三个平台，其余平台读取 Instagram 的文案。
var platformContents = map[string][4]string{
	"WhatsApp": {
		"Share this message with 3 friends who need to see this! 📱",
		"Perfect for our WhatsApp community - quick, effective, and personal.",
		"• Save time ⏰\n• Boost results 📈\n• Feel confident 💪",
		"Your friends are asking about this. Here's why it works:",
	},
	"Instagram": {
		"Double-tap if you agree! Stories highlight coming soon 📸",
		"This is the Instagram hack everyone's talking about.",
		"🎯 Instantly improve your feed\n📱 Easy to use\n✨ Professional results",
		"Tag 3 friends who need this in their life! Limited spots available.",
	},
	"Facebook": {
		"Share this post to help your network succeed! 👥",
		"This Facebook-exclusive tip is exactly what you've been missing.",
		"✓ Proven results\n✓ Community support\n✓ Easy implementation",
		"Join the conversation - your thoughts matter! Comment below 👇",
	},
}

var languageCTAs = map[string]string{
	"Hindi":    "अभी शुरू करें! यहाँ क्लिक करें 👆",
	"Hinglish": "Bas ek click mein start karo! Kya wait kar rahe ho? 🚀",
	"English":  "Start your journey now - click the link! 🔗",
	"Spanish":  "¡Comienza ahora mismo! Haz clic aquí 👆",
	"French":   "Commencez maintenant! Cliquez ici 👆",
}

var toneEndings = map[string]string{
	"Friendly":     "Can't wait to see your success story! 🌟",
	"Professional": "Ready to take the next step in your journey?",
	"Quirky":       "Time to join the cool kids club! 😎 (Yes, we have cookies)",
	"Humorous":     "Warning: Side effects may include excessive success and happiness 😄",
	"Casual":       "Trust me, you'll thank yourself later! 🙌",
	"Formal":       "We invite you to experience the difference.",
}

var audienceCTAs = map[string]string{
	"Friends":     "You know I wouldn't share this if it wasn't amazing!",
	"Family":      "This is perfect for our family goals!",
	"Students":    "Student discount available - check it out!",
	"Peers":       "Let's grow together - join me!",
	"Followers":   "As promised, here's the exclusive access link!",
	"Affiliaters": "Ready to earn? This converts like crazy!",
	"Customers":   "Valued customer exclusive - just for you!",
}

// PlatformContent returns the platform line for a variation (1-4).
// Unknown platforms use the Instagram lines; an index outside 1-4 yields "".
func PlatformContent(platform string, variationID int) string {
	if variationID < 1 || variationID > 4 {
		return ""
	}
	lines, ok := platformContents[platform]
	if !ok {
		lines = platformContents[defaultPlatform]
	}
	return lines[variationID-1]
}

// LanguageCTA 返回语言对应的行动号召，未知语言用 English。
func LanguageCTA(language string) string {
	if cta, ok := languageCTAs[language]; ok {
		return cta
	}
	return languageCTAs[defaultLanguage]
}

// ToneEnding 返回语气对应的结尾，未知语气用 Friendly。
func ToneEnding(tone string) string {
	if ending, ok := toneEndings[tone]; ok {
		return ending
	}
	return toneEndings[defaultTone]
}

// AudienceCTA 返回受众对应的行内号召，未知受众用 Followers。
func AudienceCTA(audience string) string {
	if cta, ok := audienceCTAs[audience]; ok {
		return cta
	}
	return audienceCTAs[defaultAudience]
}

// Fallbacks lists the tables ("platform", "language", "tone", "audience")
// whose default entry Compose will use for sel.
func Fallbacks(sel Selections) []string {
	var out []string
	if _, ok := platformContents[sel.Platform]; !ok {
		out = append(out, "platform")
	}
	if _, ok := languageCTAs[sel.Language]; !ok {
		out = append(out, "language")
	}
	if _, ok := toneEndings[sel.Tone]; !ok {
		out = append(out, "tone")
	}
	if _, ok := audienceCTAs[sel.Audience]; !ok {
		out = append(out, "audience")
	}
	return out
}
