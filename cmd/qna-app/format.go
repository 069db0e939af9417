package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/minhyannv/ai-language-go/pkg/language"
)

func printWelcome(out io.Writer) {
	_, _ = color.New(color.FgGreen).Fprintln(out, "✅ Azure QnA service is ready. Type your question or type 'quit' to exit.")
}

// printAnswers prints the top ranked answer only.
func printAnswers(out io.Writer, res language.AnswersResult) {
	top, ok := res.Top()
	if !ok {
		_, _ = color.New(color.FgYellow).Fprintln(out, "❌ No answer found.")
		return
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "🧠 Answer: %s\n", color.New(color.Bold).Sprint(top.Answer))
	if top.Span != nil && top.Span.Text != "" {
		_, _ = fmt.Fprintf(out, "✂️  Short Answer: %s (%.2f)\n", top.Span.Text, top.Span.Confidence)
	}
	_, _ = fmt.Fprintf(out, "💯 Confidence Score: %.2f\n", top.Confidence)
}
