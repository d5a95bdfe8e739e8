package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rstms/hexdump/hexdump"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func initTestConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)
	OutputJSON = false
	OutputText = true
}

func run(t *testing.T, stdin string, args ...string) string {
	initTestConfig(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()
	err := rootCmd.Execute()
	require.Nil(t, err)
	return out.String()
}

func writeTestFile(t *testing.T, name string, data []byte) string {
	filename := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(filename, data, 0600)
	require.Nil(t, err)
	return filename
}

func TestStringCommand(t *testing.T) {
	out := run(t, "", "string", "--width", "12", "ABCDE")
	require.Equal(t, "41 42 43 ABC\n44 45    DE\n", out)

	out = run(t, "", "string", "-w", "8", "A", "B")
	require.Equal(t, "41 20 A.\n42    B\n", out)
}

func TestStringCommandDefaultWidth(t *testing.T) {
	out := run(t, "", "string", "ABC")
	require.Equal(t, "41 42 43 "+strings.Repeat(" ", 17*3)+"ABC\n", out)
}

func TestStdinCommand(t *testing.T) {
	out := run(t, "\x00A", "stdin", "--width", "8")
	require.Equal(t, "00 41 .A\n", out)

	out = run(t, "", "stdin")
	require.Equal(t, "", out)
}

func TestStdinWindow(t *testing.T) {
	out := run(t, "xxABCDEyy", "stdin", "--width", "12", "--offset", "2", "--limit", "5")
	require.Equal(t, "41 42 43 ABC\n44 45    DE\n", out)
}

func TestFileCommand(t *testing.T) {
	filename := writeTestFile(t, "data.bin", []byte("ABCDE"))
	out := run(t, "", "file", "-w", "12", filename)
	require.Equal(t, "41 42 43 ABC\n44 45    DE\n", out)
}

func TestFileCommandMultiple(t *testing.T) {
	first := writeTestFile(t, "first.bin", []byte("AB"))
	second := writeTestFile(t, "second.bin", []byte{0x00})
	out := run(t, "", "file", "-w", "8", first, second)
	require.Equal(t, first+":\n41 42 AB\n\n"+second+":\n00    .\n", out)
}

func TestFileCommandJSON(t *testing.T) {
	filename := writeTestFile(t, "data.bin", []byte("ABCDE"))
	empty := writeTestFile(t, "empty.bin", nil)
	out := run(t, "", "file", "--json", "-w", "12", filename, empty)

	var results []DumpResult
	err := json.Unmarshal([]byte(out), &results)
	require.Nil(t, err)
	require.Len(t, results, 2)
	require.Equal(t, DumpResult{
		Name:         filename,
		Length:       5,
		Width:        12,
		BytesPerLine: 3,
		Lines:        []string{"41 42 43 ABC", "44 45    DE"},
	}, results[0])
	require.Equal(t, 0, results[1].Length)
	require.Equal(t, []string{}, results[1].Lines)
}

func TestValueCommand(t *testing.T) {
	out := run(t, "", "value", "-w", "16", "u32", "0x41424344")
	require.Equal(t, "44 43 42 41 DCBA\n", out)

	out = run(t, "", "value", "-w", "16", "--big-endian", "u32", "0x41424344")
	require.Equal(t, "41 42 43 44 ABCD\n", out)

	out = run(t, "", "value", "-w", "8", "-b", "--", "i16", "-2")
	require.Equal(t, "ff fe ..\n", out)
}

func TestValueCommandWindow(t *testing.T) {
	out := run(t, "", "value", "-w", "16", "--offset", "2", "--limit", "1", "u32", "0x41424344")
	require.Equal(t, "42          B\n", out)

	out = run(t, "", "value", "-w", "16", "-b", "--offset", "1", "u32", "0x41424344")
	require.Equal(t, "42 43 44    BCD\n", out)
}

func TestValueCommandJSON(t *testing.T) {
	out := run(t, "", "value", "--json", "-w", "4", "u8", "65")
	var result DumpResult
	err := json.Unmarshal([]byte(out), &result)
	require.Nil(t, err)
	require.Equal(t, "u8:65", result.Name)
	require.Equal(t, []string{"41 A"}, result.Lines)
}

func TestConfigFile(t *testing.T) {
	config := writeTestFile(t, "config.yaml", []byte("hexdump:\n  width: 12\n"))
	out := run(t, "", "string", "--config", config, "ABCDE")
	require.Equal(t, "41 42 43 ABC\n44 45    DE\n", out)

	// flags override the config file
	out = run(t, "", "string", "--config", config, "-w", "8", "AB")
	require.Equal(t, "41 42 AB\n", out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HEXDUMP_WIDTH", "8")
	out := run(t, "", "string", "ABC")
	require.Equal(t, "41 42 AB\n43    C\n", out)
}

func TestLogfile(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "hexdump.log")
	out := run(t, "", "string", "--logfile", logfile, "--verbose", "-w", "8", "AB")
	require.Equal(t, "41 42 AB\n", out)
	data, err := os.ReadFile(logfile)
	require.Nil(t, err)
	require.Contains(t, string(data), "dumping 2 bytes, width=8")
}

func TestDumpFilesMissing(t *testing.T) {
	initTestConfig(t)
	err := hexdump.ViperInit("hexdump")
	require.Nil(t, err)
	var out bytes.Buffer
	err = dumpFiles(&out, []string{filepath.Join(t.TempDir(), "missing")})
	require.NotNil(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Empty(t, out.String())
}

func TestDumpInvalidWidth(t *testing.T) {
	initTestConfig(t)
	err := hexdump.ViperInit("hexdump")
	require.Nil(t, err)
	hexdump.ViperSet("width", 3)
	var out bytes.Buffer
	err = dumpReader(&out, "stdin", strings.NewReader("data"))
	require.True(t, errors.Is(err, hexdump.ErrInvalidConfiguration))
	require.Empty(t, out.String())

	// no bytes means no error
	err = dumpReader(&out, "stdin", strings.NewReader(""))
	require.Nil(t, err)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("u16", "0x0102")
	require.Nil(t, err)
	require.Equal(t, uint16(0x0102), v)

	v, err = ParseValue("i8", "-1")
	require.Nil(t, err)
	require.Equal(t, int8(-1), v)

	v, err = ParseValue("f64", "1.5")
	require.Nil(t, err)
	require.Equal(t, float64(1.5), v)

	_, err = ParseValue("u8", "256")
	require.True(t, errors.Is(err, hexdump.ErrInvalidArgument))

	_, err = ParseValue("u128", "1")
	require.True(t, errors.Is(err, hexdump.ErrInvalidArgument))
}
