package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/climg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a 2x2 image with a red top row and a blue bottom row
func writePNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 255})

	path := filepath.Join(dir, "square.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	saved := sizer
	sizer = climg.FixedSize{Width: 80, Height: 24}
	t.Cleanup(func() { sizer = saved })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(filterUnknownFlags(cmd, args))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir)

	cell := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀"

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "Fixed size",
			args: []string{"-w", "2", "-h", "1", path},
			want: []string{cell + cell + "\x1b[0m\n"},
		},
		{
			name: "256 colors",
			args: []string{"-t", "--width=2", "--height", "1", path},
			want: []string{"\x1b[38;5;196m\x1b[48;5;21m▀"},
		},
		{
			name: "Info header",
			args: []string{"-i", "-w", "2", "-h", "1", path},
			want: []string{
				"Terminal size: 80x24 characters\n",
				"Render size: 2x1 characters\n",
				"Render size: 2x2 pixels\n",
				"Original size: 2x2 pixels\n",
			},
		},
		{
			name:    "Unknown flags are ignored",
			args:    []string{"--bogus", "-xw", "2", "-h", "1", path},
			want:    []string{cell + cell + "\x1b[0m\n"},
			notWant: []string{"Usage:"},
		},
		{
			name: "Mosaic engine",
			args: []string{"--engine", "mosaic", "-w", "2", "-h", "1", path},
			want: []string{"\x1b["},
		},
		{
			name: "Help",
			args: []string{"--help"},
			want: []string{"Usage:", "--no-truecolor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestUnknownFlagWarnings(t *testing.T) {
	var logs bytes.Buffer
	log.SetHandler(clihander.New(&logs))
	t.Cleanup(func() { log.SetHandler(clihander.Default) })

	path := writePNG(t, t.TempDir())

	out, err := execute(t, "--bogus", "--color=always", "-xw", "2", "-h", "1", path)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "Ignoring unknown flag --bogus")
	assert.Contains(t, logs.String(), "Ignoring unknown flag --color=always")
	assert.Contains(t, logs.String(), "Ignoring unknown flag -x")
	assert.NotContains(t, out, "Ignoring unknown flag")
	assert.Contains(t, out, "▀")
}

func TestRootCommandErrors(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir)

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o644))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))

	tests := []struct {
		name      string
		args      []string
		wantErr   string
		wantUsage bool
	}{
		{name: "No path", args: nil, wantErr: "accepts 1 arg", wantUsage: true},
		{name: "Missing file", args: []string{filepath.Join(dir, "nope.png")}, wantErr: "file not found", wantUsage: true},
		{name: "Directory", args: []string{dir}, wantErr: "is a directory", wantUsage: true},
		{name: "Unsupported extension", args: []string{text}, wantErr: climg.ErrUnsupportedFormat.Error(), wantUsage: true},
		{name: "Unknown engine", args: []string{"--engine", "kitty", path}, wantErr: climg.ErrUnsupportedProtocol.Error(), wantUsage: true},
		{name: "Corrupt image", args: []string{corrupt}, wantErr: climg.ErrDecode.Error()},
		{name: "Invalid width", args: []string{"-w", "wide", path}, wantErr: climg.ErrInvalidSize.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.wantUsage, strings.Contains(out, "Usage:"))
		})
	}
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir)

	assert.NoError(t, validatePath(path))
	assert.ErrorContains(t, validatePath(filepath.Join(dir, "gone.jpg")), "file not found")
	assert.ErrorContains(t, validatePath(dir), "is a directory")
}

func TestFilterUnknownFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "Known flags", args: []string{"-w", "40", "-i", "a.png"}, want: []string{"-w", "40", "-i", "a.png"}},
		{name: "Unknown long flag", args: []string{"--bogus", "a.png"}, want: []string{"a.png"}},
		{name: "Unknown long flag with value", args: []string{"--width=40", "--foo=1", "a.png"}, want: []string{"--width=40", "a.png"}},
		{name: "Long value flag consumes next", args: []string{"--height", "50%", "a.png"}, want: []string{"--height", "50%", "a.png"}},
		{name: "Bool flag does not consume", args: []string{"--info", "a.png"}, want: []string{"--info", "a.png"}},
		{name: "Unknown short in cluster", args: []string{"-ix", "a.png"}, want: []string{"-i", "a.png"}},
		{name: "Attached short value", args: []string{"-tw40", "a.png"}, want: []string{"-tw40", "a.png"}},
		{name: "Only unknown shorts", args: []string{"-qz", "a.png"}, want: []string{"a.png"}},
		{name: "Terminator", args: []string{"a.png", "--", "--bogus"}, want: []string{"a.png", "--", "--bogus"}},
		{name: "Lone dash", args: []string{"-"}, want: []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterUnknownFlags(newRootCmd(), tt.args))
		})
	}
}
