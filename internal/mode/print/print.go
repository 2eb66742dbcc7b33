// ABOUTME: Non-interactive one-shot mode with text and JSON formatters
// ABOUTME: Resolves a single utterance, applies the resulting action to the store, prints, exits

package print

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanyabot/tanya-go/internal/engine"
	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/qna"
)

// Config configures one-shot execution.
type Config struct {
	OutputFormat string    // "text" (default) or "json"
	Out          io.Writer // defaults to stdout
}

// Deps provides dependencies for print mode.
type Deps struct {
	Store     *qna.Store
	Algorithm match.Algorithm
}

// Run resolves one utterance with default configuration.
func Run(deps Deps, utterance string) error {
	return RunWithConfig(Config{OutputFormat: "text"}, deps, utterance)
}

// RunWithConfig resolves one utterance, applies any storage action, and
// writes the outcome in the configured format.
func RunWithConfig(cfg Config, deps Deps, utterance string) error {
	if utterance == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		utterance = strings.TrimSpace(string(data))
	}

	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}

	records, err := deps.Store.Load()
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}

	result := engine.Resolve(utterance, records, deps.Algorithm)

	if err := deps.Store.Apply(result.Action, result.Record); err != nil {
		return fmt.Errorf("applying %s: %w", result.Action, err)
	}

	switch cfg.OutputFormat {
	case "json":
		return writeJSON(cfg.Out, utterance, result)
	default:
		_, err := fmt.Fprintln(cfg.Out, result.DisplayText)
		return err
	}
}

// jsonOutput is the single object emitted by -output json.
type jsonOutput struct {
	Utterance string `json:"utterance"`
	Action    string `json:"action"`
	Question  string `json:"question,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Display   string `json:"display"`
}

func writeJSON(w io.Writer, utterance string, result engine.Result) error {
	out := jsonOutput{
		Utterance: utterance,
		Action:    result.Action.String(),
		Question:  result.Record.Question,
		Answer:    result.Record.Answer,
		Display:   result.DisplayText,
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
