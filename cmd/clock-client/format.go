package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/minhyannv/ai-language-go/pkg/language"
)

var rule = strings.Repeat("━", 40)

func printWelcome(out io.Writer) {
	_, _ = color.New(color.FgCyan, color.Bold).Fprintln(out, "🕐 Welcome to the Azure AI Clock Assistant! 🌍")
	_, _ = fmt.Fprintln(out, "Ask me about time, dates, or days. Type 'quit' to exit.")
	_, _ = fmt.Fprintln(out, "Examples: 'What time is it?', 'What time in Tokyo?', 'What day is Friday?'")
}

func printAnalysis(out io.Writer, res language.ConversationResult) {
	p := res.Prediction
	_, _ = color.New(color.Bold).Fprintln(out, "\n🎯 Analysis Results:")
	_, _ = fmt.Fprintln(out, rule)
	_, _ = fmt.Fprintf(out, "🧠 Top Intent: %s\n", color.New(color.FgGreen).Sprint(p.TopIntent))
	if top, ok := p.TopCandidate(); ok {
		_, _ = fmt.Fprintf(out, "📂 Category: %s\n", top.Category)
		_, _ = fmt.Fprintf(out, "💯 Confidence: %.2f\n", top.Confidence)
	}
	_, _ = fmt.Fprintln(out)

	if len(p.Entities) > 0 {
		_, _ = fmt.Fprintln(out, "🏷️  Entities Found:")
		for _, e := range p.Entities {
			_, _ = fmt.Fprintf(out, "   📋 Category: %s\n", e.Category)
			_, _ = fmt.Fprintf(out, "   📝 Text: %s\n", e.Text)
			_, _ = fmt.Fprintf(out, "   💯 Confidence: %.2f\n", e.Confidence)
		}
		_, _ = fmt.Fprintln(out)
	} else {
		_, _ = fmt.Fprintln(out, "🔍 No entities found")
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintf(out, "❓ Your Question: '%s'\n", res.Query)
	_, _ = fmt.Fprintln(out, rule)
}

func printFallback(out io.Writer) {
	_, _ = color.New(color.FgYellow).Fprintln(out, "\n❌ Sorry, I didn't understand that.")
	_, _ = fmt.Fprintln(out, "💡 Try asking me for:")
	_, _ = fmt.Fprintln(out, `   🕒 Time: "What time is it?" or "What time in London?"`)
	_, _ = fmt.Fprintln(out, `   📅 Day: "What day is 12/25/2024?"`)
	_, _ = fmt.Fprintln(out, `   🗓️  Date: "What's the date next Monday?"`)
}
