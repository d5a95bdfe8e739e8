/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var fileCmd = &cobra.Command{
	Use:   "file FILE [FILE...]",
	Short: "dump file contents",
	Long: `
Read each FILE and write its hex dump.  When more than one FILE is given each
dump is preceded by a 'FILE:' header line.  With --json the output is a list
of dump objects.
`,
	Aliases: []string{"cat"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := dumpFiles(cmd.OutOrStdout(), args)
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(fileCmd)
}

func dumpFiles(w io.Writer, filenames []string) error {
	results := []DumpResult{}
	for i, filename := range filenames {
		if ViperGetBool("verbose") {
			log.Printf("reading %s\n", filename)
		}
		data, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrap(err, "failed reading file")
		}
		result, h, err := dumpBytes(filename, data)
		if err != nil {
			return err
		}
		if OutputJSON {
			results = append(results, result)
			continue
		}
		if i > 0 {
			_, err = fmt.Fprintln(w)
			if err != nil {
				return err
			}
		}
		err = writeText(w, filename, h, len(filenames) > 1)
		if err != nil {
			return err
		}
	}
	if OutputJSON {
		_, err := fmt.Fprintln(w, FormatJSON(results))
		return err
	}
	return nil
}
