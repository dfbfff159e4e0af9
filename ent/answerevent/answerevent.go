// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldExpectedAnswer holds the string denoting the expected_answer field in the database.
	FieldExpectedAnswer = "expected_answer"
	// FieldGivenAnswer holds the string denoting the given_answer field in the database.
	FieldGivenAnswer = "given_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimedOut holds the string denoting the timed_out field in the database.
	FieldTimedOut = "timed_out"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldExperience holds the string denoting the experience field in the database.
	FieldExperience = "experience"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLevel,
	FieldPrompt,
	FieldExpectedAnswer,
	FieldGivenAnswer,
	FieldCorrect,
	FieldTimedOut,
	FieldTimeMs,
	FieldStreak,
	FieldExperience,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	ExpectedAnswerValidator func(string) error
	// DefaultGivenAnswer holds the default value on creation for the "given_answer" field.
	DefaultGivenAnswer string
	// DefaultTimedOut holds the default value on creation for the "timed_out" field.
	DefaultTimedOut bool
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultExperience holds the default value on creation for the "experience" field.
	DefaultExperience int
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByExpectedAnswer orders the results by the expected_answer field.
func ByExpectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAnswer, opts...).ToFunc()
}

// ByGivenAnswer orders the results by the given_answer field.
func ByGivenAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimedOut orders the results by the timed_out field.
func ByTimedOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimedOut, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByExperience orders the results by the experience field.
func ByExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperience, opts...).ToFunc()
}
