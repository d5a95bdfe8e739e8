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

	"github.com/pkg/errors"
	"github.com/rstms/hexdump/hexdump"
)

type DumpResult struct {
	Name         string   `json:"name"`
	Length       int      `json:"length"`
	Width        int      `json:"width"`
	BytesPerLine int      `json:"bytes_per_line"`
	Lines        []string `json:"lines"`
}

func NewDumpResult(name string, h *hexdump.Hexdump) DumpResult {
	lines := h.Lines()
	if lines == nil {
		lines = []string{}
	}
	return DumpResult{
		Name:         name,
		Length:       h.Length(),
		Width:        h.LineWidth(),
		BytesPerLine: h.BytesPerLine(),
		Lines:        lines,
	}
}

func dumpBytes(name string, data []byte) (DumpResult, *hexdump.Hexdump, error) {
	h, err := hexdump.ConfiguredDump(data)
	if err != nil {
		return DumpResult{}, nil, errors.Wrap(err, name)
	}
	if ViperGetBool("debug") {
		log.Printf("%s: %d of %d bytes rendered\n", name, h.Length(), len(data))
	}
	return NewDumpResult(name, h), h, nil
}

// writeText writes the dump followed by a newline, optionally preceded by a
// NAME: header line
func writeText(w io.Writer, name string, h *hexdump.Hexdump, header bool) error {
	if header {
		_, err := fmt.Fprintf(w, "%s:\n", name)
		if err != nil {
			return err
		}
	}
	if h.Length() == 0 {
		return nil
	}
	_, err := h.WriteTo(w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func writeDump(w io.Writer, name string, data []byte) error {
	result, h, err := dumpBytes(name, data)
	if err != nil {
		return err
	}
	if OutputJSON {
		_, err = fmt.Fprintln(w, FormatJSON(&result))
		return err
	}
	return writeText(w, name, h, false)
}
