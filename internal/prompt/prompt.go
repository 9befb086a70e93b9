// Package prompt builds the chat prompts sent to the LLM when rewriting a
// LaTeX section.
package prompt

import (
	"fmt"
	"strings"
)

// RewriteSystemPrompt captures the instructions sent to the configured LLM
// for every rewrite request. Update this text centrally so every call
// stays in sync.
const RewriteSystemPrompt = `You are an expert academic editor revising a section of a LaTeX paper.

Rules:

- Improve clarity, concision, and flow while preserving the technical meaning exactly.

- Keep every LaTeX command, environment, label, citation, and math expression intact unless the instruction explicitly asks otherwise.

- Do not add, remove, or reorder \cite, \ref, and \label commands.

- Preserve the comment lines (%) and the overall paragraph structure unless a change is clearly an improvement.

- Respond ONLY with the revised LaTeX source of the section. No preamble, no explanation, no Markdown fences.`

// Request describes one rewrite prompt.
type Request struct {
	// SectionText is the raw LaTeX source to revise.
	SectionText string
	// Instruction optionally focuses the rewrite (e.g. "tighten the
	// opening paragraph"). Empty means a general clarity pass.
	Instruction string
}

// Build assembles the user prompt for a rewrite request.
func Build(req Request) (string, error) {
	text := strings.TrimRight(req.SectionText, "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("prompt: section text is empty")
	}

	var b strings.Builder
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		b.WriteString("Revise the following section for clarity and concision.\n")
	} else {
		b.WriteString("Revise the following section. Focus: ")
		b.WriteString(instruction)
		b.WriteString("\n")
	}
	b.WriteString("\nSection source:\n\n")
	b.WriteString(text)
	b.WriteString("\n")
	return b.String(), nil
}
