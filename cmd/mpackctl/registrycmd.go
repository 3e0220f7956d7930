package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mpack"
	"github.com/joshuapare/mpack/record"
)

var schemaPath string

// schemaField and schemaClass mirror the --schema JSON document shape
// documented in SPEC_FULL.md §6.3: a JSON array of
// {name, fields:[{name,type,optional,nested}]}.
type schemaField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
	Nested   string `json:"nested"`
}

type schemaClass struct {
	Name   string        `json:"name"`
	Fields []schemaField `json:"fields"`
}

func init() {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect a class registry loaded from a schema file",
	}
	registryCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Path to a schema JSON file (required)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the classes defined by --schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryList()
		},
	}
	describeCmd := &cobra.Command{
		Use:   "describe <class>",
		Short: "Describe one class defined by --schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryDescribe(args[0])
		},
	}

	registryCmd.AddCommand(listCmd, describeCmd)
	rootCmd.AddCommand(registryCmd)
}

func loadSchema() error {
	if schemaPath == "" {
		return fmt.Errorf("--schema is required")
	}
	raw, err := readInput(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	var classes []schemaClass
	if err := json.Unmarshal(raw, &classes); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	for _, c := range classes {
		fields := make([]record.Field, len(c.Fields))
		for i, f := range c.Fields {
			ft, err := parseFieldType(f.Type)
			if err != nil {
				return fmt.Errorf("class %s field %s: %w", c.Name, f.Name, err)
			}
			fields[i] = record.Field{
				Name:           f.Name,
				DeclaredType:   ft,
				Optional:       f.Optional,
				NestedTypeName: f.Nested,
			}
		}
		mpack.UnregisterClass(c.Name) // re-loading the same --schema file is idempotent
		if err := mpack.RegisterClass(c.Name, fields); err != nil {
			return fmt.Errorf("register class %s: %w", c.Name, err)
		}
	}
	return nil
}

func parseFieldType(s string) (record.FieldType, error) {
	switch s {
	case "null":
		return record.FieldNull, nil
	case "bool":
		return record.FieldBool, nil
	case "int":
		return record.FieldInt, nil
	case "float":
		return record.FieldFloat, nil
	case "string":
		return record.FieldString, nil
	case "binary":
		return record.FieldBinary, nil
	case "array":
		return record.FieldArray, nil
	case "map":
		return record.FieldMap, nil
	case "class":
		return record.FieldClass, nil
	default:
		return 0, fmt.Errorf("unknown field type %q", s)
	}
}

func runRegistryList() error {
	if err := loadSchema(); err != nil {
		return err
	}
	for _, name := range mpack.RegisteredClassNames() {
		fmt.Println(name)
	}
	return nil
}

func runRegistryDescribe(class string) error {
	if err := loadSchema(); err != nil {
		return err
	}
	c, ok := mpack.GetClassMetadata(class)
	if !ok {
		return fmt.Errorf("class %q is not defined in %s", class, schemaPath)
	}
	fmt.Printf("%s\n", c.Name)
	for _, f := range c.Fields {
		optional := ""
		if f.Optional {
			optional = " optional"
		}
		nested := ""
		if f.NestedTypeName != "" {
			nested = fmt.Sprintf(" -> %s", f.NestedTypeName)
		}
		fmt.Printf("  %s: %s%s%s\n", f.Name, f.DeclaredType, optional, nested)
	}
	return nil
}
