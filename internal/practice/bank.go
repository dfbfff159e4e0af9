package practice

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Difficulty level bounds. Levels partition the bank into pools.
const (
	MinLevel = 1
	MaxLevel = 3
)

//go:embed questions.json
var builtinBankJSON []byte

// Question is one entry in the bank. The bank is read-only at runtime.
type Question struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
	Level  int    `json:"level"`
}

// Bank is a fixed question collection partitioned by difficulty level.
// Every level in [MinLevel, MaxLevel] has a non-empty pool.
type Bank struct {
	pools map[int][]Question
}

// bankFile is the on-disk / on-wire shape of a bank.
type bankFile struct {
	Questions []Question `json:"questions"`
}

// LoadBank parses and validates a bank from JSON. The data must pass the
// bank schema and yield a non-empty pool for every level.
func LoadBank(data []byte) (*Bank, error) {
	if err := validateBankJSON(data); err != nil {
		return nil, err
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	pools := make(map[int][]Question)
	for _, q := range f.Questions {
		pools[q.Level] = append(pools[q.Level], q)
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if len(pools[level]) == 0 {
			return nil, fmt.Errorf("bank has no questions for level %d", level)
		}
	}

	return &Bank{pools: pools}, nil
}

// BuiltinBank returns the bank embedded in the binary. The embedded data
// is validated at init time, so a bad build fails fast.
func BuiltinBank() *Bank {
	return builtinBank
}

var builtinBank = func() *Bank {
	b, err := LoadBank(builtinBankJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank invalid: %v", err))
	}
	return b
}()

// Pool returns the questions for a level. The returned slice must not be
// modified.
func (b *Bank) Pool(level int) []Question {
	return b.pools[level]
}

// Question maps a wrapping cursor into the level's pool. The cursor may be
// any non-negative value; it is reduced modulo the pool size.
func (b *Bank) Question(level, cursor int) Question {
	pool := b.pools[level]
	return pool[cursor%len(pool)]
}

// Size returns the total number of questions across all pools.
func (b *Bank) Size() int {
	n := 0
	for _, pool := range b.pools {
		n += len(pool)
	}
	return n
}

// bankSchemaJSON is the JSON Schema every bank must satisfy, embedded and
// shared with the LLM bank generator's structured output request.
const bankSchemaJSON = `{
	"type": "object",
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 3,
			"items": {
				"type": "object",
				"properties": {
					"prompt": { "type": "string", "minLength": 1 },
					"answer": { "type": "string", "minLength": 1 },
					"level":  { "type": "integer", "minimum": 1, "maximum": 3 }
				},
				"required": ["prompt", "answer", "level"]
			}
		}
	},
	"required": ["questions"]
}`

var compiledBankSchema = func() *jsonschema.Schema {
	var def any
	if err := json.Unmarshal([]byte(bankSchemaJSON), &def); err != nil {
		panic(fmt.Sprintf("bank schema is not valid JSON: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-bank.json", def); err != nil {
		panic(fmt.Sprintf("add bank schema resource: %v", err))
	}
	s, err := c.Compile("schema://question-bank.json")
	if err != nil {
		panic(fmt.Sprintf("compile bank schema: %v", err))
	}
	return s
}()

// validateBankJSON checks raw bank JSON against the bank schema.
func validateBankJSON(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("bank is not valid JSON: %w", err)
	}
	if err := compiledBankSchema.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation: %w", err)
	}
	return nil
}
