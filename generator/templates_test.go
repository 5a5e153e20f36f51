package generator

import (
	"reflect"
	"strings"
	"testing"
)

func TestPlatformContentPopulatedPlatforms(t *testing.T) {
	for _, platform := range []string{"WhatsApp", "Instagram", "Facebook"} {
		want := platformContents[platform]
		for i := 1; i <= 4; i++ {
			if got := PlatformContent(platform, i); got != want[i-1] {
				t.Fatalf("%s[%d]: got %q, want %q", platform, i, got, want[i-1])
			}
		}
	}
}

func TestPlatformContentFallsBackToInstagram(t *testing.T) {
	for _, platform := range []string{"Telegram", "YouTube", "Twitter", "LinkedIn", "", "Myspace"} {
		for i := 1; i <= 4; i++ {
			if got, want := PlatformContent(platform, i), PlatformContent("Instagram", i); got != want {
				t.Fatalf("%q[%d]: got %q, want instagram line %q", platform, i, got, want)
			}
		}
	}
}

func TestPlatformContentOutOfRange(t *testing.T) {
	if got := PlatformContent("WhatsApp", 0); got != "" {
		t.Fatalf("expected empty string for index 0, got %q", got)
	}
	if got := PlatformContent("WhatsApp", 5); got != "" {
		t.Fatalf("expected empty string for index 5, got %q", got)
	}
}

func TestLookupsFallBack(t *testing.T) {
	cases := []struct {
		name   string
		lookup func(string) string
		known  map[string]string
		def    string
	}{
		{"language", LanguageCTA, languageCTAs, "Start your journey now - click the link! 🔗"},
		{"tone", ToneEnding, toneEndings, "Can't wait to see your success story! 🌟"},
		{"audience", AudienceCTA, audienceCTAs, "As promised, here's the exclusive access link!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for key, want := range tc.known {
				if got := tc.lookup(key); got != want {
					t.Fatalf("%s: got %q, want %q", key, got, want)
				}
			}
			for _, key := range []string{"", "Klingon", "friendly"} {
				if got := tc.lookup(key); got != tc.def {
					t.Fatalf("%q: got %q, want default %q", key, got, tc.def)
				}
			}
		})
	}
}

func TestTablesCoverEveryOption(t *testing.T) {
	for _, l := range Languages {
		if _, ok := languageCTAs[l]; !ok {
			t.Fatalf("language %s has no CTA", l)
		}
	}
	for _, tone := range Tones {
		if _, ok := toneEndings[tone]; !ok {
			t.Fatalf("tone %s has no ending", tone)
		}
	}
	for _, a := range Audiences {
		if _, ok := audienceCTAs[a]; !ok {
			t.Fatalf("audience %s has no CTA", a)
		}
	}
}

func TestComposeAlwaysFourVariations(t *testing.T) {
	inputs := []Selections{
		{BrandName: "Acme", Platform: "WhatsApp"},
		{BrandName: "Acme", Platform: "LinkedIn", Audience: "Peers", Language: "French", Tone: "Formal"},
		{BrandName: "x", Platform: "unknown", Audience: "?", Language: "?", Tone: "?"},
	}
	for _, sel := range inputs {
		got := Compose(sel)
		if len(got) != 4 {
			t.Fatalf("expected 4 variations, got %d", len(got))
		}
		for i, v := range got {
			if v.ID != i+1 {
				t.Fatalf("expected id %d, got %d", i+1, v.ID)
			}
			if v.Title != Titles[i] {
				t.Fatalf("expected title %q, got %q", Titles[i], v.Title)
			}
			if v.Platform != sel.Platform {
				t.Fatalf("expected platform echo %q, got %q", sel.Platform, v.Platform)
			}
			if !strings.Contains(v.Content, sel.BrandName) {
				t.Fatalf("variation %d does not mention brand", v.ID)
			}
		}
	}
}

func TestComposeHinglishWhatsApp(t *testing.T) {
	got := Compose(Selections{
		BrandName: "Acme",
		Platform:  "WhatsApp",
		Audience:  "Students",
		Language:  "Hinglish",
		Tone:      "Humorous",
	})

	want := "Acme solves this with Perfect for our WhatsApp community - quick, effective, and personal.\n\nBas ek click mein start karo! Kya wait kar rahe ho? 🚀"
	if !strings.Contains(got[1].Content, want) {
		t.Fatalf("variation 2 content:\n%s", got[1].Content)
	}
	if !strings.HasSuffix(got[2].Content, "Warning: Side effects may include excessive success and happiness 😄") {
		t.Fatalf("variation 3 should end with the humorous line:\n%s", got[2].Content)
	}
	if !strings.HasSuffix(got[3].Content, "spaces are filling fast! Student discount available - check it out!") {
		t.Fatalf("variation 4 should end with the student CTA:\n%s", got[3].Content)
	}
}

func TestComposeExactHook(t *testing.T) {
	got := Compose(Selections{BrandName: "Acme", Platform: "Facebook"})[0].Content
	want := "🚀 **Acme is changing the game!**\n\n" +
		"Share this post to help your network succeed! 👥\n\n" +
		"Ready to level up? Join thousands who've already made the switch! \n\n" +
		"👆 Click here to get started with Acme today!"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestComposeIgnoresCustomPrompt(t *testing.T) {
	base := Selections{BrandName: "Acme", Platform: "Instagram", Tone: "Quirky"}
	withPrompt := base
	withPrompt.CustomPrompt = "mention the summer sale"
	if !reflect.DeepEqual(Compose(base), Compose(withPrompt)) {
		t.Fatalf("custom prompt changed the output")
	}
}

func TestFallbacks(t *testing.T) {
	got := Fallbacks(Selections{BrandName: "Acme", Platform: "YouTube", Language: "Hindi", Audience: "Family"})
	want := []string{"platform", "tone"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := Fallbacks(Selections{Platform: "WhatsApp", Language: "English", Tone: "Casual", Audience: "Peers"}); len(got) != 0 {
		t.Fatalf("expected no fallbacks, got %v", got)
	}
}
