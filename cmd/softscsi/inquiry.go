package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ardnew/softscsi/device/hd"
	"github.com/ardnew/softscsi/scsi"
)

func newInquiryCmd(opts *options) *cobra.Command {
	var (
		lun   uint8
		alloc uint8
		evpd  bool
	)

	cmd := &cobra.Command{
		Use:   "inquiry IMAGE",
		Short: "Send INQUIRY to a disk image and dump the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			disk, err := opts.openDisk(args[0])
			if err != nil {
				return err
			}

			var raw [scsi.CDBSize6]byte
			scsi.InquiryCDB{
				EVPD:             evpd,
				LUN:              lun,
				AllocationLength: uint16(alloc),
			}.MarshalTo(raw[:])

			cdb, err := scsi.ParseInquiryCDB(raw[:])
			if err != nil {
				return err
			}

			buf := make([]byte, 256)
			res := disk.Identify(cdb, buf)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cdb:    % X\n", raw[:])
			fmt.Fprintf(w, "status: %s\n", res.Status)
			if !res.OK() {
				writeSense(w, disk)
				return fmt.Errorf("inquiry: %w", res.Err())
			}
			fmt.Fprintf(w, "length: %d\n", res.Length)
			fmt.Fprint(w, hex.Dump(buf[:res.Length]))
			return nil
		},
	}

	addLUNFlag(cmd.Flags(), &lun)
	cmd.Flags().Uint8Var(&alloc, "alloc", scsi.InquiryStandardSize, "allocation length")
	cmd.Flags().BoolVar(&evpd, "evpd", false, "request vital product data")

	return cmd
}

// writeSense dumps the sense data for the disk's last status.
func writeSense(w io.Writer, disk *hd.Disk) {
	sense := make([]byte, scsi.SenseFixedSize)
	if n := disk.SenseData(sense); n > 0 {
		fmt.Fprintf(w, "sense:  % X\n", sense[:n])
	}
}
