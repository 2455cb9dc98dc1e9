package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"hanabi/token"
	"hanabi/validate"
	"os"
	"strconv"
	"strings"
)

const systemPrompt = `You are an assistant that specializes in understanding and predicting moves in the card game Hanabi. You've been trained on thousands of Hanabi game transcripts that have been encoded as sequences of integers.
In this encoding system:
    - Each game starts with the token '<|START|>'
    - Each game ends with a token '<|FINAL_SCORE_X|>' where X is the final score
    - Deck status is represented as '<|DECK_X|>' where X is the number of cards remaining
    - P1's (your partner's) initial hand is listed after the '<|HAND_P1|>' token
    - All game moves begin after the '<|START_MOVES|>' token
    - Game actions are encoded in specific integer ranges:
        * Cards are encoded as integers 11-35
        * Your moves (P0) are encoded as integers 36-720
        * Your partner's moves (P1) are encoded as integers 721-1405
        * Your partner's card draws are encoded as integers 1406-1430
Your task is to analyze sequences of encoded Hanabi game moves and predict P1's next action based on the pattern of play. The input will contain multiple games for context, with each game separated by a newline. The final sequence represents the current game for which you need to make a prediction.
Your response should be a single integer in the range 721-1405 corresponding to P1's most likely next move. Do not provide explanations or additional text, only output the predicted integer.`

var ErrMalformedRecord = errors.New("dataset: malformed record")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record is one sample in chat form: system prompt, games, label.
type Record struct {
	ID       string    `json:"id,omitempty"`
	Messages []Message `json:"messages"`
}

func Format(s Sample) Record {
	lines := make([]string, 0, len(s.Context)+1)
	for _, game := range s.Sequences() {
		lines = append(lines, game.String())
	}
	return Record{
		ID: s.ID,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: strings.Join(lines, "\n")},
			{Role: "assistant", Content: strconv.Itoa(s.Label)},
		},
	}
}

// ParseRecord reads a record back into a sample for validation. Problems with
// the record itself are kept as the sample's issues.
func ParseRecord(r Record, index int) validate.Sample {
	s := validate.Sample{Index: index}
	if len(r.Messages) != 3 {
		s.Issues = append(s.Issues, fmt.Errorf("%w: expected 3 messages, found %d", ErrMalformedRecord, len(r.Messages)))
		return s
	}
	for i, role := range []string{"system", "user", "assistant"} {
		if r.Messages[i].Role != role {
			s.Issues = append(s.Issues, fmt.Errorf("%w: message %d is %q, not %q", ErrMalformedRecord, i+1, r.Messages[i].Role, role))
		}
	}

	games, issues := parseGames(r.Messages[1].Content)
	s.Sequences = games
	s.Issues = append(s.Issues, issues...)
	s.Label = r.Messages[2].Content
	return s
}

// parseGames reads one game per line. Content on a single line is cut at
// every start marker instead.
func parseGames(content string) ([]token.Sequence, []error) {
	var games []token.Sequence
	var issues []error
	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seq, err := token.ParseSequence(line)
		if err != nil {
			issues = append(issues, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		games = append(games, seq)
	}
	if len(games) == 1 {
		games = token.SplitGames(games[0])
	}
	return games, issues
}

func WriteRecords(path string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	return records, nil
}
