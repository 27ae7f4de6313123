package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ExportData is the backup document produced by Export. A nil section in
// an imported document leaves the corresponding record untouched.
type ExportData struct {
	Profile    *Profile              `json:"profile,omitempty"`
	History    []TestRecord          `json:"history,omitempty"`
	Schedule   []ScheduleItem        `json:"schedule,omitempty"`
	Quests     map[string]QuestState `json:"quests,omitempty"`
	Settings   *Settings             `json:"settings,omitempty"`
	ExportDate string                `json:"exportDate"`
}

// exportSchema constrains the top-level shape of an import document.
// Section internals are left to the JSON decoder; the schema's job is to
// reject documents that are not a backup at all before any write happens.
var exportSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"profile":    map[string]any{"type": "object"},
		"history":    map[string]any{"type": "array"},
		"schedule":   map[string]any{"type": "array"},
		"quests":     map[string]any{"type": "object"},
		"settings":   map[string]any{"type": "object"},
		"exportDate": map[string]any{"type": "string"},
	},
	"anyOf": []any{
		map[string]any{"required": []any{"profile"}},
		map[string]any{"required": []any{"history"}},
		map[string]any{"required": []any{"schedule"}},
		map[string]any{"required": []any{"quests"}},
		map[string]any{"required": []any{"settings"}},
	},
}

var (
	compiledExportSchema *jsonschema.Schema
	compileExportOnce    sync.Once
	compileExportErr     error
)

func exportSchemaCompiled() (*jsonschema.Schema, error) {
	compileExportOnce.Do(func() {
		// The jsonschema compiler expects a parsed JSON value, so round-trip
		// the definition through encoding/json.
		raw, err := json.Marshal(exportSchema)
		if err != nil {
			compileExportErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileExportErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://ubtprep-export.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileExportErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledExportSchema, compileExportErr = c.Compile(url)
	})
	return compiledExportSchema, compileExportErr
}

// Export serializes the profile, history, schedule, quest progress and
// settings into a single JSON blob.
func (s *Store) Export() ([]byte, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	history, err := s.History()
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	schedule, err := s.Schedule()
	if err != nil {
		return nil, fmt.Errorf("export schedule: %w", err)
	}
	quests, err := s.QuestProgress()
	if err != nil {
		return nil, fmt.Errorf("export quests: %w", err)
	}
	settings, err := s.Settings()
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	data := ExportData{
		Profile:    &profile,
		History:    history,
		Schedule:   schedule,
		Quests:     quests,
		Settings:   &settings,
		ExportDate: time.Now().Format(time.RFC3339),
	}
	return json.MarshalIndent(data, "", "  ")
}

// Import validates blob and replaces each top-level section it contains,
// leaving absent sections untouched. A malformed blob mutates nothing;
// atomicity is per top-level key, not across keys.
func (s *Store) Import(blob []byte) error {
	var instance any
	if err := json.Unmarshal(blob, &instance); err != nil {
		return fmt.Errorf("import: invalid JSON: %w", err)
	}

	schema, err := exportSchemaCompiled()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("import: not a valid backup: %w", err)
	}

	var data ExportData
	if err := json.Unmarshal(blob, &data); err != nil {
		return fmt.Errorf("import: decode backup: %w", err)
	}

	if data.Profile != nil {
		if err := s.Set(KeyProfile, data.Profile); err != nil {
			return err
		}
	}
	if data.History != nil {
		if err := s.Set(KeyHistory, data.History); err != nil {
			return err
		}
	}
	if data.Schedule != nil {
		if err := s.Set(KeySchedule, data.Schedule); err != nil {
			return err
		}
	}
	if data.Quests != nil {
		if err := s.Set(KeyQuestProgress, data.Quests); err != nil {
			return err
		}
	}
	if data.Settings != nil {
		if err := s.Set(KeySettings, data.Settings); err != nil {
			return err
		}
	}
	return nil
}
