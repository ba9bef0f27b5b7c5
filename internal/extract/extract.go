// Package extract locates a JSON object inside free-form model output.
//
// Strategies run in order and the first one that yields an object wins. No
// schema checks happen here; callers normalize the fields they expect.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
)

// ErrNoObject is returned when no strategy could produce a JSON object.
var ErrNoObject = errors.New("extract: could not parse model output as a JSON object")

// Strategy names reported in Result.
const (
	StrategyDirect   = "direct"
	StrategyEmbedded = "embedded"
)

// Result is a successfully extracted object and the strategy that found it.
type Result struct {
	Object   map[string]any
	Strategy string
}

// Strategy turns raw text into a candidate JSON object.
type Strategy struct {
	Name  string
	Parse func(raw string) (map[string]any, error)
}

// Greedy: first '{' through the last '}'. Several top-level objects in one
// reply end up in the same candidate and fail to parse.
var embeddedObject = regexp.MustCompile(`(?s)\{.*\}`)

// DefaultChain is the strategy order used by Extract.
var DefaultChain = []Strategy{
	{Name: StrategyDirect, Parse: parseObject},
	{Name: StrategyEmbedded, Parse: parseEmbedded},
}

// Extract runs DefaultChain over raw.
func Extract(raw string) (Result, error) {
	return Run(DefaultChain, raw)
}

// Run tries each strategy in order and returns the first object found.
func Run(chain []Strategy, raw string) (Result, error) {
	for _, s := range chain {
		obj, err := s.Parse(raw)
		if err != nil {
			continue
		}
		return Result{Object: obj, Strategy: s.Name}, nil
	}
	return Result{}, ErrNoObject
}

func parseObject(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, err
	}
	// "null" decodes into a nil map without error.
	if obj == nil {
		return nil, ErrNoObject
	}
	return obj, nil
}

func parseEmbedded(text string) (map[string]any, error) {
	block := embeddedObject.FindString(text)
	if block == "" {
		return nil, ErrNoObject
	}
	return parseObject(block)
}
