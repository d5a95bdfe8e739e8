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
	"log"
	"os"
	"path/filepath"

	"github.com/rstms/hexdump/hexdump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var OutputJSON bool
var OutputText bool

var logFile *os.File

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "hexdump",
	Short:   "render binary data as a hex dump",
	Long: `
Render bytes as fixed width lines of hexadecimal byte values followed by
their printable ASCII characters.  Non-printable bytes are shown as '.'

Each byte uses 4 columns, so a line of --width columns holds width/4 bytes.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = false
		OutputText = true
		if ViperGetBool("json") && !ViperGetBool("text") {
			OutputJSON = true
			OutputText = false
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			log.SetOutput(os.Stderr)
			err := logFile.Close()
			logFile = nil
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")
	OptionSwitch(rootCmd, "json", "", "format output as JSON")
	OptionSwitch(rootCmd, "text", "", "format output as text (default)")
	OptionInt(rootCmd, "width", "w", hexdump.DefaultLineWidth, "maximum output line width")
	OptionInt(rootCmd, "offset", "", 0, "skip OFFSET input bytes")
	OptionInt(rootCmd, "limit", "n", -1, "dump at most LIMIT bytes (negative for all)")
}

func InitConfig() {
	bindOptions()
	cfgFile = viper.GetString(hexdump.ViperKey("config"))
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hexdump"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			cobra.CheckErr(err)
		}
	}

	filename := ViperGetString("logfile")
	if filename != "" {
		logFile, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		cobra.CheckErr(err)
		log.SetOutput(logFile)
	}

	err = hexdump.ViperInit(rootCmd.Name())
	cobra.CheckErr(err)

	if ViperGetBool("verbose") && viper.ConfigFileUsed() != "" {
		log.Printf("config: %s\n", viper.ConfigFileUsed())
	}
}
