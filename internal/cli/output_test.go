package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Output Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, result map[string]any)
	}{
		{
			name: "struct with ID",
			data: mockDataWithID{ID: "p1", Name: "Test"},
			validate: func(t *testing.T, result map[string]any) {
				dataMap := result["data"].(map[string]any)
				if dataMap["Name"] != "Test" {
					t.Errorf("Expected data.Name to be 'Test', got %v", dataMap["Name"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]any) {
				if result["data"] != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", result["data"])
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]any) {
				if result["data"] != nil {
					t.Errorf("Expected data to be nil, got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newFormatter(true, false)
			if err := formatter.Success(tt.data, "ignored"); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out.String())
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	formatter, out, _ := newFormatter(false, true)
	if err := formatter.Success(mockDataWithID{ID: "p9"}, "created"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.String() != "p9\n" {
		t.Errorf("Expected 'p9\\n', got %q", out.String())
	}

	// Data without an id prints nothing in quiet mode
	out.Reset()
	_ = formatter.Success("no id", "created")
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	formatter, out, _ := newFormatter(false, false)
	_ = formatter.Success(nil, "Project created")
	if !strings.Contains(out.String(), "✓ Project created") {
		t.Errorf("Expected success line, got %q", out.String())
	}
}

// ============================================================================
// Error Output Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter, out, errOut := newFormatter(true, false)
	if err := formatter.ErrorWithSuggestion("PROJECT_NOT_FOUND", "project not found", "list them"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors go to stdout, got stderr %q", errOut.String())
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "PROJECT_NOT_FOUND" {
		t.Errorf("Expected code PROJECT_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "list them" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter, out, errOut := newFormatter(false, false)
	_ = formatter.Error("INTERNAL_ERROR", "boom")

	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("Expected message on stderr, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Error("Expected no suggestion line")
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	formatter, _, _ := newFormatter(false, false)
	cause := errors.New("nope")

	err := formatter.Fail(ExitNotFound, "PROJECT_NOT_FOUND", cause)
	if ExitCode(err) != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, ExitCode(err))
	}
	if !errors.Is(err, cause) {
		t.Error("Expected the cause to be preserved")
	}
}

func TestFormatterFor(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddOutputFlags(cmd)
	if err := cmd.Flags().Parse([]string{"--json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)

	f := FormatterFor(cmd)
	if !f.JSON || f.Quiet {
		t.Errorf("Expected JSON mode only, got %+v", f)
	}
	if f.Out != &out {
		t.Error("Expected the command's stdout")
	}
}
