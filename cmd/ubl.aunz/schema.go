package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	ubl "github.com/macroservices/ubl.aunz"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of build requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(requestSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshalling schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func requestSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&ubl.Request{})
	s.Title = "Invoice build request"
	return s
}
