package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/grom/naming"
)

func newInflectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inflect",
		Short: "Convert between class names and property names",
	}
	cmd.AddCommand(
		inflectCmd("class [plural_property_name]", "Convert an underscored plural to a CamelCase class name", naming.ClassName),
		inflectCmd("property [ClassName]", "Convert a class name to an underscored singular property name", naming.PropertyName),
		inflectCmd("plural [ClassName]", "Convert a class name to an underscored plural property name", naming.PluralPropertyName),
	)
	return cmd
}

func inflectCmd(use, short string, fn func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fn(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
