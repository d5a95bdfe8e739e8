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
	"encoding/json"
	"strings"

	"github.com/rstms/hexdump/hexdump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func optionKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

type optionBinding struct {
	cmd  *cobra.Command
	name string
}

var optionBindings []optionBinding

func bindOption(cmd *cobra.Command, name string) {
	optionBindings = append(optionBindings, optionBinding{cmd: cmd, name: name})
}

// bind each flag to its prefixed viper key and to HEXDUMP_<NAME> in the environment
func bindOptions() {
	for _, option := range optionBindings {
		key := hexdump.ViperKey(optionKey(option.name))
		err := viper.BindPFlag(key, option.cmd.PersistentFlags().Lookup(option.name))
		cobra.CheckErr(err)
		err = viper.BindEnv(key, strings.ToUpper("hexdump_"+optionKey(option.name)))
		cobra.CheckErr(err)
	}
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	if flag == "" {
		cmd.PersistentFlags().String(name, defaultValue, description)
	} else {
		cmd.PersistentFlags().StringP(name, flag, defaultValue, description)
	}
	bindOption(cmd, name)
}

func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	if flag == "" {
		cmd.PersistentFlags().Bool(name, false, description)
	} else {
		cmd.PersistentFlags().BoolP(name, flag, false, description)
	}
	bindOption(cmd, name)
}

func OptionInt(cmd *cobra.Command, name, flag string, defaultValue int, description string) {
	if flag == "" {
		cmd.PersistentFlags().Int(name, defaultValue, description)
	} else {
		cmd.PersistentFlags().IntP(name, flag, defaultValue, description)
	}
	bindOption(cmd, name)
}

func ViperGetString(key string) string {
	return hexdump.ViperGetString(key)
}

func ViperGetBool(key string) bool {
	return hexdump.ViperGetBool(key)
}

func ViperGetInt(key string) int {
	return hexdump.ViperGetInt(key)
}

func FormatJSON(v any) string {
	formatted, err := json.MarshalIndent(v, "", "  ")
	cobra.CheckErr(err)
	return string(formatted)
}
