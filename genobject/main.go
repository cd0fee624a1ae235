// Copyright 2019 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command genobject generates Go struct definitions for gateway
// objects by running inspect calls against a company.  With no
// arguments it lists the available object names.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bitbucket.org/gotamer/cases"
	"github.com/spf13/cobra"

	intacct "github.com/fylein/intacct-go"
)

var dataTypeMap = map[string]string{
	"Pt_FieldDateTime":     "intacct.Datetime",
	"Pt_FieldDummy":        "string",
	"Pt_FieldRelationship": "string",
	"Pt_FieldInt":          "intacct.Int",
	"Pt_FieldString":       "string",
	"Pt_FieldText":         "string",
	"Pt_FieldBoolean":      "intacct.Bool",
	"Pt_FieldDate":         "intacct.Date",
	"Pt_FieldDouble":       "intacct.Float64",
}

var nameReplacer = strings.NewReplacer(
	"_", "", "(", "", ")", "", "%", "", "-", "", "/", "", ".", "_", "'", "", ",", "")

func main() {
	var configFile string
	cmd := &cobra.Command{
		Use:   "genobject [OBJECTNAME...]",
		Short: "generate Go structs from gateway object definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := clientFromFile(ctx, configFile)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", configFile, err)
			}
			if len(args) == 0 {
				return listObjects(ctx, cmd.OutOrStdout(), client)
			}
			return writeStructs(ctx, cmd.OutOrStdout(), client, args)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "json or yaml file containing the client definition")
	cmd.MarkFlagRequired("config")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func clientFromFile(ctx context.Context, fn string) (*intacct.Client, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	if ext := filepath.Ext(fn); ext == ".yaml" || ext == ".yml" {
		return intacct.ClientFromConfigYAML(ctx, bytes.NewReader(b))
	}
	return intacct.ClientFromConfigJSON(ctx, bytes.NewReader(b))
}

func listObjects(ctx context.Context, w io.Writer, client *intacct.Client) error {
	result, err := client.NewAPI("inspect").Exec(ctx, intacct.ObjectList())
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	names, err := result.Map("data").ReadArray("type")
	if err != nil {
		return fmt.Errorf("decode inspect listing: %w", err)
	}
	fmt.Fprintln(w, "Objects:")
	for _, nm := range names {
		fmt.Fprintf(w, "%s: %s\n", nm.String("@typename"), nm.String(""))
	}
	return nil
}

func writeStructs(ctx context.Context, w io.Writer, client *intacct.Client, objNames []string) error {
	for _, objName := range objNames {
		result, err := client.NewAPI(objName).Exec(ctx, intacct.ObjectFields(objName, true))
		if err != nil {
			return fmt.Errorf("inspect %s: %w", objName, err)
		}
		if err := writeStruct(w, result.Map("data").Map("Type")); err != nil {
			return err
		}
	}
	return nil
}

func writeStruct(w io.Writer, objType intacct.ResultMap) error {
	name := objType.String("@Name")
	if name == "" {
		return fmt.Errorf("inspect result missing object name")
	}
	fields, err := objType.ReadArray("Fields/Field")
	if err != nil {
		return fmt.Errorf("%s: decode field list: %w", name, err)
	}
	seen := map[string]bool{}
	fmt.Fprintf(w, "// %s\ntype %s struct {\n", name, structName(name))
	for _, f := range fields {
		fldName := fieldName(f)
		if fldName == "" || seen[fldName] {
			continue
		}
		seen[fldName] = true
		ty, ok := dataTypeMap[f.String("dataName")]
		if !ok {
			ty = "interface{}"
		}
		fmt.Fprintf(w, "\t%s %s `xml:\"%s,omitempty\"`%s\n",
			fldName, ty, f.String("Name"), comment(f))
	}
	fmt.Fprintf(w, "\tCustomFields []intacct.CustomField `xml:\",any\"`\n}\n\n")
	return nil
}

func structName(nm string) string {
	return cases.Camel(strings.ToLower(nameReplacer.Replace(nm)))
}

func fieldName(f intacct.ResultMap) string {
	lbl := f.String("DisplayLabel")
	if lbl == "" {
		lbl = strings.ToLower(f.String("Name"))
	}
	lbl = nameReplacer.Replace(lbl)
	if lbl == "" {
		return ""
	}
	if lbl[0] >= '0' && lbl[0] <= '9' {
		lbl = "F" + lbl
	}
	return cases.Camel(lbl)
}

func comment(f intacct.ResultMap) string {
	var parts []string
	if f.Bool("isReadOnly") {
		parts = append(parts, "Read Only")
	}
	if f.Bool("isRequired") {
		parts = append(parts, "Required")
	}
	if rel := f.String("relatedObject"); rel != "" {
		parts = append(parts, rel+": "+f.String("relationship"))
	}
	if len(parts) == 0 {
		return ""
	}
	return " // " + strings.Join(parts, " ")
}
