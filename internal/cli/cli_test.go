package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-artifex/internal/config"
	"github.com/ironsheep/image-artifex/internal/imaging"
)

func writeSource(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, imaging.Encode(f, img, imaging.FormatPNG, imaging.DefaultQuality))
	return path
}

// execute runs the root command with args and returns stdout and the logs.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvHTTPAddr, config.EnvRoot} {
		t.Setenv(k, "")
	}

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is filtered at info level")

	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		out        string
		wantFormat imaging.Format
		wantWidth  int
		wantHeight int
	}{
		{"resize", []string{"resize", "{src}", "30", "30"}, "out.png", imaging.FormatPNG, 30, 30},
		{"resize derives height", []string{"resize", "{src}", "20"}, "out.png", imaging.FormatPNG, 20, 10},
		{"cut to jpeg", []string{"cut", "{src}", "16", "16"}, "out.jpg", imaging.FormatJPEG, 16, 16},
		{"thumb to webp", []string{"thumb", "{src}", "60", "20"}, "out.webp", imaging.FormatWEBP, 60, 20},
		{"crop to gif", []string{"crop", "{src}", "8", "--x", "4", "--y", "2"}, "out.gif", imaging.FormatGIF, 8, 8},
		{"reduce", []string{"reduce", "{src}", "10", "10"}, "out.png", imaging.FormatPNG, 10, 5},
		{"rotate", []string{"rotate", "{src}", "90", "--bg", "#000000"}, "out.png", imaging.FormatPNG, 20, 40},
		{"opacity", []string{"opacity", "{src}", "50"}, "out.png", imaging.FormatPNG, 40, 20},
		{"unknown extension keeps the source format", []string{"cut", "{src}", "5", "5"}, "out.img", imaging.FormatPNG, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeSource(t, 40, 20, color.NRGBA{255, 255, 255, 255})
			out := filepath.Join(t.TempDir(), tt.out)

			args := make([]string, 0, len(tt.args)+2)
			for _, a := range tt.args {
				args = append(args, strings.ReplaceAll(a, "{src}", src))
			}
			args = append(args, "--out", out)

			_, logs, err := execute(t, "", args...)
			require.NoError(t, err, logs)
			assert.Contains(t, logs, "Wrote")

			info, err := imaging.Probe(out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, info.Format)
			assert.Equal(t, tt.wantWidth, info.Width)
			assert.Equal(t, tt.wantHeight, info.Height)
		})
	}
}

func TestWatermarkCommand(t *testing.T) {
	src := writeSource(t, 40, 40, color.NRGBA{255, 255, 255, 255})
	mark := writeSource(t, 10, 10, color.NRGBA{255, 0, 0, 255})
	out := filepath.Join(t.TempDir(), "marked.png")

	_, logs, err := execute(t, "", "watermark", src, mark, "--position", "top-left", "--opacity", "100", "--out", out)
	require.NoError(t, err, logs)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := imaging.Decode(f, imaging.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, color.NRGBAModel.Convert(img.At(0, 0)))
}

func TestTransform_Stdout(t *testing.T) {
	src := writeSource(t, 40, 20, color.NRGBA{0, 0, 255, 255})

	stdout, _, err := execute(t, "", "cut", src, "10", "10", "--out", "-")
	require.NoError(t, err)

	img, err := imaging.Decode(strings.NewReader(stdout), imaging.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestTransform_Errors(t *testing.T) {
	src := writeSource(t, 10, 10, color.NRGBA{255, 255, 255, 255})
	out := filepath.Join(t.TempDir(), "out.png")

	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"resize", src, "10"}},
		{"bad width", []string{"resize", src, "wide", "--out", out}},
		{"bad degrees", []string{"rotate", src, "ninety", "--out", out}},
		{"bad background", []string{"thumb", src, "10", "--bg", "mauve-ish", "--out", out}},
		{"empty size", []string{"cut", src, "0", "0", "--out", out}},
		{"missing source", []string{"cut", filepath.Join(t.TempDir(), "none.png"), "10", "--out", out}},
		{"unwritable output", []string{"cut", src, "5", "--out", filepath.Join(t.TempDir(), "no", "dir.png")}},
		{"too few args", []string{"thumb", src, "--out", out}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestTransform_EmptySizeIsReported(t *testing.T) {
	src := writeSource(t, 10, 10, color.NRGBA{255, 255, 255, 255})
	_, _, err := execute(t, "", "resize", src, "0", "--out", filepath.Join(t.TempDir(), "out.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resize")
	assert.Contains(t, err.Error(), "empty size")
}

func TestInspectCommand(t *testing.T) {
	src := writeSource(t, 40, 20, color.NRGBA{255, 255, 255, 255})

	stdout, _, err := execute(t, "", "inspect", src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "png (image/png)")
	assert.Contains(t, stdout, "40x20")
	assert.Contains(t, stdout, "#FFFFFF")
	assert.Contains(t, stdout, "thumb:   fit")

	stdout, _, err = execute(t, "", "inspect", "--json", src)
	require.NoError(t, err)

	var report struct {
		Width      int `json:"width"`
		Background struct {
			Edges []struct {
				Defined bool `json:"defined"`
			} `json:"edges"`
		} `json:"background"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 40, report.Width)
	require.Len(t, report.Background.Edges, 4)
	assert.True(t, report.Background.Edges[0].Defined)
}

func TestConfigFlag(t *testing.T) {
	src := writeSource(t, 40, 20, color.NRGBA{255, 255, 255, 255})
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[render]\nquality = 500\n"), 0o644))
	_, _, err := execute(t, "", "--config", bad, "inspect", src)
	assert.ErrorIs(t, err, config.ErrInvalid)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("log_level = \"debug\"\n[render]\nbackground = \"#000000\"\n"), 0o644))
	out := filepath.Join(dir, "out.png")
	_, logs, err := execute(t, "", "--config", good, "resize", src, "40", "40", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "configuration loaded")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := imaging.Decode(f, imaging.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, color.NRGBAModel.Convert(img.At(0, 0)), "configured background pads")
}

func TestMCPCommand(t *testing.T) {
	stdout, _, err := execute(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n", "mcp")
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{}}`, strings.TrimSpace(stdout))
}

func TestNewHTTPHandler(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	h, err := c.newHTTPHandler(t.TempDir())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListen_StopsOnCancel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.listen(ctx, "127.0.0.1:0", http.NotFoundHandler())
	assert.ErrorIs(t, err, context.Canceled)
}
