package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ardnew/softscsi/config"
	"github.com/ardnew/softscsi/device/hd"
	"github.com/ardnew/softscsi/pkg"
)

// options holds the persistent flags and the configuration they select.
type options struct {
	configPath string
	verbose    bool
	json       bool

	conf *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "softscsi",
		Short: "Emulated SCSI hard disk command core",
		Long: "The softscsi tool opens a disk image the way an emulated SCSI hard disk does\n" +
			"and answers INQUIRY and MODE SELECT against it.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&opts.json, "json", false, "log in JSON format")

	rootCmd.AddCommand(
		newInspectCmd(opts),
		newInquiryCmd(opts),
		newModeSelectCmd(opts),
	)

	return rootCmd
}

// load reads the configuration and sets up logging on the command's
// error stream.
func (o *options) load(cmd *cobra.Command) error {
	conf, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.verbose {
		conf.Log.Level = "debug"
	}
	if o.json {
		conf.Log.Format = "json"
	}

	pkg.SetLogOutput(cmd.ErrOrStderr())
	if err := conf.Apply(); err != nil {
		return err
	}

	o.conf = conf
	return nil
}

// openDisk creates a disk from the configuration and opens image.
func (o *options) openDisk(image string) (*hd.Disk, error) {
	disk := hd.New(o.conf.DiskOptions()...)
	if err := disk.Open(image); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", image, err)
	}
	pkg.LogDebug(pkg.ComponentCLI, "image opened",
		"image", image,
		"blocks", disk.BlockCount())
	return disk, nil
}

// addLUNFlag registers the --lun flag addressing a logical unit in the CDB.
func addLUNFlag(flags *pflag.FlagSet, lun *uint8) {
	flags.Uint8Var(lun, "lun", 0, "logical unit addressed by the CDB (0-7)")
}
