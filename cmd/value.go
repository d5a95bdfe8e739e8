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
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rstms/hexdump/hexdump"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value TYPE VALUE",
	Short: "dump the bytes of a typed number",
	Long: `
Write the hex dump of the in-memory representation of VALUE encoded as TYPE.
Bytes are little endian unless --big-endian is set.  --offset and --limit
select a window of the encoded bytes.

TYPE is one of:

u8 u16 u32 u64 ---- unsigned integers
i8 i16 i32 i64 ---- signed integers
f32 f64 ----------- IEEE 754 floating point
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := dumpValue(cmd.OutOrStdout(), args[0], args[1])
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
	OptionSwitch(valueCmd, "big-endian", "b", "encode VALUE most significant byte first")
}

func ParseValue(typeName, text string) (any, error) {
	var v any
	var err error
	switch typeName {
	case "u8", "u16", "u32", "u64":
		var u uint64
		bits, _ := strconv.Atoi(typeName[1:])
		u, err = strconv.ParseUint(text, 0, bits)
		switch bits {
		case 8:
			v = uint8(u)
		case 16:
			v = uint16(u)
		case 32:
			v = uint32(u)
		default:
			v = u
		}
	case "i8", "i16", "i32", "i64":
		var i int64
		bits, _ := strconv.Atoi(typeName[1:])
		i, err = strconv.ParseInt(text, 0, bits)
		switch bits {
		case 8:
			v = int8(i)
		case 16:
			v = int16(i)
		case 32:
			v = int32(i)
		default:
			v = i
		}
	case "f32":
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = float32(f)
	case "f64":
		v, err = strconv.ParseFloat(text, 64)
	default:
		return nil, errors.Wrapf(hexdump.ErrInvalidArgument, "unknown type '%s'", typeName)
	}
	if err != nil {
		return nil, errors.Wrapf(hexdump.ErrInvalidArgument, "failed parsing %s value '%s': %v", typeName, text, err)
	}
	return v, nil
}

func dumpValue(w io.Writer, typeName, text string) error {
	v, err := ParseValue(typeName, text)
	if err != nil {
		return err
	}
	var order binary.ByteOrder = binary.LittleEndian
	if ViperGetBool("big_endian") {
		order = binary.BigEndian
	}
	data, err := hexdump.EncodeValue(v, order)
	if err != nil {
		return err
	}
	result, h, err := dumpBytes(typeName+":"+text, data)
	if err != nil {
		return err
	}
	if OutputJSON {
		_, err = fmt.Fprintln(w, FormatJSON(&result))
		return err
	}
	return writeText(w, text, h, false)
}
