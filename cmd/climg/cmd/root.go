/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/climg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options holds the parsed command line flags
type options struct {
	verbose     bool
	width       string
	height      string
	noTrueColor bool
	showInfo    bool
	engine      string
	dither      bool
}

// sizer reports the terminal size to the renderer
var sizer climg.TerminalSizer = climg.StdoutSizer{}

func init() {
	log.SetHandler(clihander.Default)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "climg <path>",
		Short: "Display PNG and JPEG images in your terminal.",
		Long: `Display PNG and JPEG images in your terminal using Unicode half blocks.

Sizes accept a number of character cells ("40") or a percentage of the
terminal ("50%"). By default the image is fit to the whole terminal.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.width, "width", "w", "", "Image width in cells or percent of the terminal (e.g. 40, 50%)")
	flags.StringVarP(&opts.height, "height", "h", "", "Image height in lines or percent of the terminal (e.g. 20, 50%)")
	flags.BoolVarP(&opts.noTrueColor, "no-truecolor", "t", false, "Use 256 colors instead of 24-bit true color")
	flags.BoolVarP(&opts.showInfo, "info", "i", false, "Print terminal, render and image sizes before the image")
	flags.StringVar(&opts.engine, "engine", climg.Halfblocks.String(), "Rendering engine (halfblocks, mosaic)")
	flags.BoolVar(&opts.dither, "dither", false, "Dither colors (256-color mode or mosaic engine)")
	// -h is taken by --height so help gets no shorthand
	flags.Bool("help", false, "Help for climg")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := validatePath(path); err != nil {
		return err
	}

	protocol, err := climg.ParseProtocol(opts.engine)
	if err != nil {
		return err
	}

	// Arguments are valid; from here on failures are not usage errors
	cmd.SilenceUsage = true

	img, err := climg.Open(path)
	if err != nil {
		return err
	}

	w, h, err := img.Bounds()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"path":      path,
		"size":      fmt.Sprintf("%dx%d", w, h),
		"engine":    protocol,
		"truecolor": !opts.noTrueColor,
	}).Debug("Rendering image")

	return img.
		Width(climg.SizeSpec(opts.width)).
		Height(climg.SizeSpec(opts.height)).
		TrueColor(!opts.noTrueColor).
		Info(opts.showInfo).
		Dither(opts.dither).
		Protocol(protocol).
		Sizer(sizer).
		Fprint(cmd.OutOrStdout())
}

// validatePath checks that path names an existing file with a supported extension
func validatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	_, err = climg.FormatFromPath(path)
	return err
}

// filterUnknownFlags drops flags the command does not define, warning about
// each one, so they never reach cobra's parser
func filterUnknownFlags(cmd *cobra.Command, args []string) []string {
	lookup := func(name string) *pflag.Flag {
		if f := cmd.Flags().Lookup(name); f != nil {
			return f
		}
		return cmd.PersistentFlags().Lookup(name)
	}
	shorthand := func(c string) *pflag.Flag {
		if f := cmd.Flags().ShorthandLookup(c); f != nil {
			return f
		}
		return cmd.PersistentFlags().ShorthandLookup(c)
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(kept, args[i:]...)

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := lookup(name)
			if f == nil {
				log.Warnf("Ignoring unknown flag %s", arg)
				continue
			}
			kept = append(kept, arg)
			if !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			var sb strings.Builder
			consumesNext := false
			for j := 1; j < len(arg); j++ {
				c := arg[j : j+1]
				f := shorthand(c)
				if f == nil {
					log.Warnf("Ignoring unknown flag -%s", c)
					continue
				}
				sb.WriteString(c)
				if f.NoOptDefVal == "" {
					// the rest of the argument, or the next one, is the value
					if rest := arg[j+1:]; rest != "" {
						sb.WriteString(rest)
					} else {
						consumesNext = true
					}
					break
				}
			}
			if sb.Len() == 0 {
				continue
			}
			kept = append(kept, "-"+sb.String())
			if consumesNext && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}

		default:
			kept = append(kept, arg)
		}
	}
	return kept
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetArgs(filterUnknownFlags(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
