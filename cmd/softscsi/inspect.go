package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect IMAGE",
		Short: "Open a disk image and print its identity and geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			disk, err := opts.openDisk(args[0])
			if err != nil {
				return err
			}

			id := disk.Identity()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "path:       %s\n", disk.Path())
			fmt.Fprintf(w, "type:       %s\n", disk.Kind())
			fmt.Fprintf(w, "lun:        %d\n", disk.LUN())
			fmt.Fprintf(w, "vendor:     %s\n", id.Vendor)
			fmt.Fprintf(w, "product:    %s\n", id.Product)
			fmt.Fprintf(w, "revision:   %s\n", id.Revision)
			fmt.Fprintf(w, "sectors:    %d x %d bytes\n", disk.BlockCount(), disk.SectorSize())
			fmt.Fprintf(w, "protected:  %t\n", disk.WriteProtected())
			return nil
		},
	}
}
