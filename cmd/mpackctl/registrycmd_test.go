package main

import (
	"strings"
	"testing"

	"github.com/joshuapare/mpack"
)

const testSchema = `[
  {"name": "Point", "fields": [
    {"name": "x", "type": "int"},
    {"name": "y", "type": "int"},
    {"name": "label", "type": "string", "optional": true}
  ]}
]`

func TestRunRegistryListAndDescribe(t *testing.T) {
	t.Cleanup(func() { mpack.UnregisterClass("Point") })

	schemaPath = writeTempFile(t, []byte(testSchema))

	out, err := captureOutput(t, runRegistryList)
	if err != nil {
		t.Fatalf("runRegistryList: %v", err)
	}
	if !strings.Contains(out, "Point") {
		t.Errorf("expected Point in list output, got: %s", out)
	}

	out, err = captureOutput(t, func() error {
		return runRegistryDescribe("Point")
	})
	if err != nil {
		t.Fatalf("runRegistryDescribe: %v", err)
	}
	if !strings.Contains(out, "label: string optional") {
		t.Errorf("expected optional label field in describe output, got: %s", out)
	}
}

func TestRunRegistryDescribeMissingSchema(t *testing.T) {
	schemaPath = ""
	_, err := captureOutput(t, func() error {
		return runRegistryDescribe("Point")
	})
	if err == nil {
		t.Fatal("expected error when --schema is not set")
	}
}
