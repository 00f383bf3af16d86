// Package agent implements a small interactive AI assistant that answers
// questions about the user's portfolio, with the current reports as
// grounding context.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a portfolio analyst persona.
type Analyst struct {
	config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// NewAnalyst creates the analyst. The rendered portfolio reports are part
// of the system instruction, so the model knows the user's actual
// holdings and figures without any tool calls.
func NewAnalyst(reports string) *Analyst {
	instruction := `
	You are a portfolio analyst for a single private investor.
	Below are the investor's current reports: holdings with prices and
	returns, dividends collected, and the dividend-adjusted cost basis.
	Answer questions about these figures and explain the metrics when
	asked. Do not invent holdings or prices that are not in the reports,
	and say so when a figure is undefined.

	` + reports

	return &Analyst{
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

// Start creates the Gemini chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session with the analyst. Initial
// prompts are consumed before reading from r.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Welcome to ivt assist. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
