package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ardnew/softscsi/scsi"
)

func newModeSelectCmd(opts *options) *cobra.Command {
	var (
		lun uint8
		pf  bool
		ten bool
	)

	cmd := &cobra.Command{
		Use:   "modeselect IMAGE PARAMS",
		Short: "Send MODE SELECT with the parameter list in PARAMS",
		Long: "Send MODE SELECT to a disk image. PARAMS is a binary file holding the\n" +
			"mode parameter header, one block descriptor and any mode pages.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read parameter list: %w", err)
			}

			opcode := uint8(scsi.OpModeSelect6)
			limit := 0xFF
			if ten {
				opcode = scsi.OpModeSelect10
				limit = 0xFFFF
			}
			if len(params) > limit {
				return fmt.Errorf("parameter list of %d bytes exceeds %d", len(params), limit)
			}

			disk, err := opts.openDisk(args[0])
			if err != nil {
				return err
			}

			var raw [scsi.CDBSize10]byte
			n := scsi.ModeSelectCDB{
				Opcode:              opcode,
				PF:                  pf,
				LUN:                 lun,
				ParameterListLength: uint16(len(params)),
			}.MarshalTo(raw[:])

			cdb, err := scsi.ParseModeSelectCDB(raw[:n])
			if err != nil {
				return err
			}

			res := disk.ApplyModeParameters(cdb, params[:cdb.ParameterListLength])

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cdb:    % X\n", raw[:n])
			fmt.Fprintf(w, "status: %s\n", res.Status)
			if !res.OK() {
				writeSense(w, disk)
				return fmt.Errorf("mode select: %w", res.Err())
			}
			return nil
		},
	}

	addLUNFlag(cmd.Flags(), &lun)
	cmd.Flags().BoolVar(&pf, "pf", true, "set the page format bit")
	cmd.Flags().BoolVar(&ten, "ten", false, "use MODE SELECT(10)")

	return cmd
}
