package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/later/internal/model"
)

// JSON-backed persistence. Whole-file reads and writes, human-readable.
// Loads are checked against items.schema.json before decoding.

//go:embed items.schema.json
var itemsSchema []byte

const schemaURL = "https://later.local/schema/items.json"

// Op names the persistence step that failed.
type Op string

const (
	OpRead   Op = "read"
	OpDecode Op = "decode"
	OpWrite  Op = "write"
)

var (
	ErrRead   = errors.New("read failure")
	ErrDecode = errors.New("decode failure")
	ErrWrite  = errors.New("write failure")
)

// Error carries the failed step and the file path.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch e.Op {
	case OpRead:
		return target == ErrRead
	case OpDecode:
		return target == ErrDecode
	case OpWrite:
		return target == ErrWrite
	}
	return false
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(itemsSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return c.Compile(schemaURL)
})

// Load reads path and decodes it into items. A missing file is a read error.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: OpRead, Path: path, Err: fmt.Errorf("read file: %w", err)}
	}
	items, err := Decode(b)
	if err != nil {
		return nil, &Error{Op: OpDecode, Path: path, Err: err}
	}
	return items, nil
}

// Decode validates b against the items schema and unmarshals it.
// Input must be valid UTF-8.
func Decode(b []byte) ([]model.Item, error) {
	if !utf8.Valid(b) {
		return nil, errors.New("invalid UTF-8")
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	items := []model.Item{}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Encode renders items as pretty-printed JSON. A nil slice encodes as [].
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Save writes items to path, replacing the file.
func Save(path string, items []model.Item) error {
	b, err := Encode(items)
	if err != nil {
		return &Error{Op: OpWrite, Path: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &Error{Op: OpWrite, Path: path, Err: fmt.Errorf("write file: %w", err)}
	}
	return nil
}
