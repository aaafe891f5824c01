package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/grom/resource"
)

// owner roots association URLs given on the command line.
type owner struct {
	class, id string
}

func (o owner) ClassName() string { return o.class }
func (o owner) ID() string        { return o.id }

func newURLCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Build REST resource URLs against the configured endpoint",
	}

	base := &cobra.Command{
		Use:   "base [ClassName] [id]",
		Short: "URL of a collection, or of one member when an id is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.printURL(cmd, func(b *resource.Builder) (string, error) {
				return b.Base(args[0], args[1:]...)
			})
		},
	}

	all := &cobra.Command{
		Use:   "all [ClassName] [segment...]",
		Short: "URL of a collection qualified by extra path segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.printURL(cmd, func(b *resource.Builder) (string, error) {
				return b.All(args[0], args[1:]...)
			})
		},
	}

	var (
		single   bool
		optional string
	)
	association := &cobra.Command{
		Use:   "association [OwnerClassName] [owner_id] [AssociatedClassName]",
		Short: "Turtle URL of an association rooted at an owner",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ro []resource.Option
			if single {
				ro = append(ro, resource.Single())
			}
			if optional != "" {
				ro = append(ro, resource.Optional(optional))
			}
			return opts.printURL(cmd, func(b *resource.Builder) (string, error) {
				return b.Association(owner{class: args[0], id: args[1]}, args[2], ro...)
			})
		},
	}
	association.Flags().BoolVar(&single, "single", false, "Use the singular association name")
	association.Flags().StringVar(&optional, "optional", "", "Extra path segment, e.g. current")

	cmd.AddCommand(base, all, association)
	return cmd
}

func (o *rootOptions) printURL(cmd *cobra.Command, build func(*resource.Builder) (string, error)) error {
	c, err := o.loadConfig()
	if err != nil {
		return err
	}
	url, err := build(c.Builder())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
	return err
}
