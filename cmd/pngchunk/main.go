package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/woozymasta/pngchunk"
)

type options struct {
	compress bool
	output   string
	human    bool
	verbose  bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "pngchunk",
		Short:         "Hide, read and remove messages in PNG chunks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print chunk details to stderr")

	// encode command
	encodeCmd := &cobra.Command{
		Use:   "encode <FILE> <TYPE> <MESSAGE>",
		Short: "Append a chunk carrying MESSAGE",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, args[0], args[1], args[2])
		},
	}
	encodeCmd.Flags().BoolVar(&opts.compress, "compress", false, "Store the message LZ4 compressed")
	encodeCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this path instead of FILE")

	// decode command
	decodeCmd := &cobra.Command{
		Use:   "decode <FILE> <TYPE>",
		Short: "Print the message of the first chunk of TYPE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], args[1])
		},
	}

	// remove command
	removeCmd := &cobra.Command{
		Use:   "remove <FILE> <TYPE>",
		Short: "Remove the first chunk of TYPE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, opts, args[0], args[1])
		},
	}
	removeCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this path instead of FILE")

	// print command
	printCmd := &cobra.Command{
		Use:   "print <FILE>",
		Short: "List every chunk in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, opts, args[0])
		},
	}
	printCmd.Flags().BoolVar(&opts.human, "human", false, "Show one line per chunk with human readable sizes")

	rootCmd.AddCommand(encodeCmd, decodeCmd, removeCmd, printCmd)
	return rootCmd
}

func runEncode(cmd *cobra.Command, opts *options, path, typ, message string) error {
	in, err := pngchunk.ReadBytes(path)
	if err != nil {
		return err
	}

	out, err := pngchunk.EncodeMessage(in, typ, message, &pngchunk.EncodeOptions{Compress: opts.compress})
	if err != nil {
		return err
	}

	dst := outputPath(opts, path)
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "appended %s chunk, %d -> %d bytes, written to %s\n", typ, len(in), len(out), dst)
	}

	return pngchunk.WriteBytes(dst, out)
}

func runDecode(cmd *cobra.Command, path, typ string) error {
	in, err := pngchunk.ReadBytes(path)
	if err != nil {
		return err
	}

	message, err := pngchunk.DecodeMessage(in, typ)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

func runRemove(cmd *cobra.Command, opts *options, path, typ string) error {
	in, err := pngchunk.ReadBytes(path)
	if err != nil {
		return err
	}

	out, err := pngchunk.RemoveMessage(in, typ)
	if err != nil {
		return err
	}

	dst := outputPath(opts, path)
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "removed %s chunk, %d -> %d bytes, written to %s\n", typ, len(in), len(out), dst)
	}

	return pngchunk.WriteBytes(dst, out)
}

func runPrint(cmd *cobra.Command, opts *options, path string) error {
	png, err := pngchunk.ReadFile(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, c := range png.Chunks() {
		if opts.human {
			fmt.Fprintf(w, "%3d  %s  %10s  crc=%08x\n", i, c.Type(), humanize.IBytes(uint64(c.Len())), c.CRC())
		} else {
			fmt.Fprintln(w, c)
		}
		if opts.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", c.Type(), c.Type().Describe())
		}
	}

	return nil
}

func outputPath(opts *options, path string) string {
	if opts.output != "" {
		return opts.output
	}

	return path
}
